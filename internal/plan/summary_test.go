package plan

import (
	"reflect"
	"testing"
)

func phaseNode(id, phase string, effort int, deps ...string) *TaskNode {
	n := node(id, effort, deps...)
	n.PhaseSlug = phase
	return n
}

func TestSummarize(t *testing.T) {
	g := mustGraph(t, []*TaskNode{
		phaseNode("plan_0001", "plan", 2),
		phaseNode("build_0001", "build", 5, "plan_0001"),
		phaseNode("verify_0001", "verify", 3, "build_0001"),
	})
	a := Analyze(g)

	s := Summarize(g, a)

	if s.NodeCount != 3 {
		t.Errorf("NodeCount = %d, want 3", s.NodeCount)
	}
	if s.TotalEffort != 10 {
		t.Errorf("TotalEffort = %d, want 10", s.TotalEffort)
	}
	if s.PhaseCount != 3 {
		t.Errorf("PhaseCount = %d, want 3", s.PhaseCount)
	}
	if s.ProjectFinish != 10 {
		t.Errorf("ProjectFinish = %d, want 10", s.ProjectFinish)
	}

	wantOrder := []PhaseGroup{
		{Phase: "plan", TaskIDs: []string{"plan_0001"}},
		{Phase: "build", TaskIDs: []string{"build_0001"}},
		{Phase: "verify", TaskIDs: []string{"verify_0001"}},
	}
	if !reflect.DeepEqual(s.ExecutionOrder, wantOrder) {
		t.Errorf("ExecutionOrder = %v, want %v", s.ExecutionOrder, wantOrder)
	}

	if len(s.CriticalPath) != 3 {
		t.Fatalf("expected 3 critical steps, got %d", len(s.CriticalPath))
	}
	for _, step := range s.CriticalPath {
		if step.Slack != 0 {
			t.Errorf("critical step %s has nonzero slack %d", step.TaskID, step.Slack)
		}
	}
}

func TestSummarizeGroupsByFirstAppearance(t *testing.T) {
	// Two tasks in the same phase, interleaved with another phase in the
	// topological order; the group keeps both ids in topological order.
	g := mustGraph(t, []*TaskNode{
		phaseNode("a_0001", "alpha", 1),
		phaseNode("b_0001", "beta", 1, "a_0001"),
		phaseNode("a_0002", "alpha", 1, "a_0001"),
		phaseNode("c_0001", "gamma", 1, "b_0001", "a_0002"),
	})
	a := Analyze(g)

	s := Summarize(g, a)

	if s.PhaseCount != 3 {
		t.Fatalf("PhaseCount = %d, want 3", s.PhaseCount)
	}
	wantOrder := []PhaseGroup{
		{Phase: "alpha", TaskIDs: []string{"a_0001", "a_0002"}},
		{Phase: "beta", TaskIDs: []string{"b_0001"}},
		{Phase: "gamma", TaskIDs: []string{"c_0001"}},
	}
	if !reflect.DeepEqual(s.ExecutionOrder, wantOrder) {
		t.Errorf("ExecutionOrder = %v, want %v", s.ExecutionOrder, wantOrder)
	}
}
