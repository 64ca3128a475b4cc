package plan

import (
	"reflect"
	"testing"
)

func mustGraph(t *testing.T, nodes []*TaskNode) *TaskGraph {
	t.Helper()
	g, err := NewTaskGraph(nodes)
	if err != nil {
		t.Fatalf("NewTaskGraph failed: %v", err)
	}
	return g
}

func TestAnalyzeLinearChain(t *testing.T) {
	g := mustGraph(t, []*TaskNode{
		node("design", 3),
		node("implement", 5, "design"),
		node("test", 3, "implement"),
		node("integrate", 2, "test"),
		node("document", 1, "integrate"),
	})

	a := Analyze(g)

	if a.TotalEffort != 14 {
		t.Errorf("TotalEffort = %d, want 14", a.TotalEffort)
	}
	if a.ProjectFinish != 14 {
		t.Errorf("ProjectFinish = %d, want 14", a.ProjectFinish)
	}

	wantStarts := map[string]int{
		"design": 0, "implement": 3, "test": 8, "integrate": 11, "document": 13,
	}
	for id, wantStart := range wantStarts {
		timing := a.Timings[id]
		if timing.EarliestStart != wantStart {
			t.Errorf("%s EarliestStart = %d, want %d", id, timing.EarliestStart, wantStart)
		}
		if timing.Slack != 0 {
			t.Errorf("%s Slack = %d, want 0 (linear chain)", id, timing.Slack)
		}
		if !timing.Critical {
			t.Errorf("%s should be critical", id)
		}
	}

	wantPath := []string{"design", "implement", "test", "integrate", "document"}
	if !reflect.DeepEqual(a.CriticalPath, wantPath) {
		t.Errorf("CriticalPath = %v, want %v", a.CriticalPath, wantPath)
	}
}

func TestAnalyzeParallelBranches(t *testing.T) {
	g := mustGraph(t, []*TaskNode{
		node("test-plan", 2),
		node("unit-tests", 3, "test-plan"),
		node("integration-tests", 5, "test-plan"),
		node("e2e-tests", 4, "test-plan"),
		node("execute-suite", 2, "unit-tests", "integration-tests", "e2e-tests"),
		node("test-report", 1, "execute-suite"),
	})

	a := Analyze(g)

	if a.TotalEffort != 17 {
		t.Errorf("TotalEffort = %d, want 17", a.TotalEffort)
	}
	// Longest chain: test-plan(2) + integration-tests(5) + execute-suite(2) + test-report(1).
	if a.ProjectFinish != 10 {
		t.Errorf("ProjectFinish = %d, want 10", a.ProjectFinish)
	}

	wantSlack := map[string]int{
		"test-plan":         0,
		"unit-tests":        2,
		"integration-tests": 0,
		"e2e-tests":         1,
		"execute-suite":     0,
		"test-report":       0,
	}
	for id, want := range wantSlack {
		timing := a.Timings[id]
		if timing.Slack != want {
			t.Errorf("%s Slack = %d, want %d", id, timing.Slack, want)
		}
		if timing.Critical != (want == 0) {
			t.Errorf("%s Critical = %v, want %v", id, timing.Critical, want == 0)
		}
		if timing.Slack < 0 {
			t.Errorf("%s has negative slack", id)
		}
	}

	// The parallel branches converge: execute-suite cannot start before the
	// slowest branch finishes.
	if got := a.Timings["execute-suite"].EarliestStart; got != 7 {
		t.Errorf("execute-suite EarliestStart = %d, want 7", got)
	}

	wantPath := []string{"test-plan", "integration-tests", "execute-suite", "test-report"}
	if !reflect.DeepEqual(a.CriticalPath, wantPath) {
		t.Errorf("CriticalPath = %v, want %v", a.CriticalPath, wantPath)
	}
}

func TestAnalyzeCriticalPathTieBreak(t *testing.T) {
	// Two equally long branches; the earlier-declared branch must win.
	g := mustGraph(t, []*TaskNode{
		node("start", 1),
		node("left", 2, "start"),
		node("right", 2, "start"),
		node("end", 1, "left", "right"),
	})

	a := Analyze(g)

	wantPath := []string{"start", "left", "end"}
	if !reflect.DeepEqual(a.CriticalPath, wantPath) {
		t.Errorf("CriticalPath = %v, want %v", a.CriticalPath, wantPath)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	build := func() *Analysis {
		g := mustGraph(t, []*TaskNode{
			node("a", 3),
			node("b", 4, "a"),
			node("c", 3, "a"),
			node("d", 2, "b", "c"),
		})
		return Analyze(g)
	}

	first, second := build(), build()
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated analysis of identical input must produce identical results")
	}
}

func TestAnalyzeCriticalPathEffortEqualsProjectFinish(t *testing.T) {
	g := mustGraph(t, []*TaskNode{
		node("a", 3),
		node("b", 4, "a"),
		node("c", 3, "a"),
		node("d", 2, "b", "c"),
	})

	a := Analyze(g)

	pathEffort := 0
	for _, id := range a.CriticalPath {
		n, ok := g.Node(id)
		if !ok {
			t.Fatalf("critical path references unknown node %q", id)
		}
		pathEffort += n.Effort
	}
	if pathEffort != a.ProjectFinish {
		t.Errorf("critical path effort %d != project finish %d", pathEffort, a.ProjectFinish)
	}
}
