package decompose

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/okessler/taskforge/internal/blueprint"
)

func TestBuildDevelopment(t *testing.T) {
	reg := blueprint.DefaultRegistry()

	g, err := Build(reg, "Implement user authentication system", "OAuth2 with refresh tokens", blueprint.CategoryDevelopment)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if g.Len() != 5 {
		t.Fatalf("expected 5 tasks, got %d", g.Len())
	}

	wantIDs := []string{"design_0001", "implement_0001", "test_0001", "integrate_0001", "document_0001"}
	for i, node := range g.Nodes() {
		if node.ID != wantIDs[i] {
			t.Errorf("node[%d].ID = %q, want %q", i, node.ID, wantIDs[i])
		}
	}

	design, _ := g.Node("design_0001")
	if design.Title != "Design: Implement user authentication system" {
		t.Errorf("title interpolation failed: %q", design.Title)
	}
	if !strings.Contains(design.Description, "Issue context: OAuth2 with refresh tokens") {
		t.Errorf("description should carry the issue context: %q", design.Description)
	}
	if design.Category != blueprint.CategoryDevelopment {
		t.Errorf("category = %q, want development", design.Category)
	}
	if design.PhaseSlug != "design" {
		t.Errorf("phase slug = %q, want design", design.PhaseSlug)
	}

	implement, _ := g.Node("implement_0001")
	if !reflect.DeepEqual(implement.DependsOn, []string{"design_0001"}) {
		t.Errorf("implement DependsOn = %v, want [design_0001]", implement.DependsOn)
	}
}

func TestBuildWithoutDescription(t *testing.T) {
	reg := blueprint.DefaultRegistry()

	g, err := Build(reg, "Ship it", "", blueprint.CategoryDevelopment)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, node := range g.Nodes() {
		if strings.Contains(node.Description, "Issue context:") {
			t.Errorf("%s: no context suffix expected without a description: %q", node.ID, node.Description)
		}
	}
}

func TestBuildEmptyTitle(t *testing.T) {
	reg := blueprint.DefaultRegistry()

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := Build(reg, title, "", blueprint.CategoryDevelopment)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("Build(%q) error = %v, want ErrEmptyTitle", title, err)
		}
	}
}

func TestBuildUnknownCategory(t *testing.T) {
	reg := blueprint.DefaultRegistry()

	_, err := Build(reg, "Some issue", "", "gardening")
	if !errors.Is(err, blueprint.ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestBuildTrimsInputs(t *testing.T) {
	reg := blueprint.DefaultRegistry()

	g, err := Build(reg, "  Fix flaky login  ", "  intermittent 401s  ", blueprint.CategoryDevelopment)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	design, _ := g.Node("design_0001")
	if design.Title != "Design: Fix flaky login" {
		t.Errorf("title not trimmed: %q", design.Title)
	}
	if !strings.HasSuffix(design.Description, "Issue context: intermittent 401s") {
		t.Errorf("description not trimmed: %q", design.Description)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	reg := blueprint.DefaultRegistry()

	for _, category := range reg.Categories() {
		first, err := Build(reg, "Stabilize checkout flow", "spiky p99", category)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", category, err)
		}
		second, err := Build(reg, "Stabilize checkout flow", "spiky p99", category)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", category, err)
		}

		if !reflect.DeepEqual(first.Nodes(), second.Nodes()) {
			t.Errorf("%s: repeated builds must produce identical nodes", category)
		}
		if !reflect.DeepEqual(first.TopologicalOrder(), second.TopologicalOrder()) {
			t.Errorf("%s: repeated builds must produce identical order", category)
		}
	}
}

func TestBuildForwardSlugReference(t *testing.T) {
	// A phase may depend on a phase declared after it.
	reg := blueprint.NewRegistry()
	err := reg.Register(&blueprint.Blueprint{
		Category: "custom",
		Phases: []blueprint.PhaseSpec{
			{Slug: "late", Title: "Late", Effort: 1, DependsOn: []string{"early"}},
			{Slug: "early", Title: "Early", Effort: 1},
		},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	g, err := Build(reg, "Anything", "", "custom")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	late, _ := g.Node("late_0001")
	if !reflect.DeepEqual(late.DependsOn, []string{"early_0001"}) {
		t.Errorf("late DependsOn = %v, want [early_0001]", late.DependsOn)
	}
}
