package plan

import (
	"errors"
	"reflect"
	"testing"
)

func node(id string, effort int, deps ...string) *TaskNode {
	return &TaskNode{
		ID:        id,
		Title:     id,
		Effort:    effort,
		DependsOn: deps,
	}
}

func TestNewTaskGraphEmpty(t *testing.T) {
	_, err := NewTaskGraph(nil)
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("expected ErrEmptyGraph, got %v", err)
	}
}

func TestNewTaskGraphLinear(t *testing.T) {
	g, err := NewTaskGraph([]*TaskNode{
		node("a", 1),
		node("b", 2, "a"),
		node("c", 3, "b"),
	})
	if err != nil {
		t.Fatalf("NewTaskGraph failed: %v", err)
	}

	if g.Len() != 3 {
		t.Errorf("Len = %d, want 3", g.Len())
	}

	want := []string{"a", "b", "c"}
	if got := g.TopologicalOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("TopologicalOrder = %v, want %v", got, want)
	}
}

func TestTopologicalOrderTieBreak(t *testing.T) {
	// b and c become ready simultaneously after a; insertion order decides.
	g, err := NewTaskGraph([]*TaskNode{
		node("a", 1),
		node("b", 2, "a"),
		node("c", 2, "a"),
		node("d", 1, "b", "c"),
	})
	if err != nil {
		t.Fatalf("NewTaskGraph failed: %v", err)
	}

	want := []string{"a", "b", "c", "d"}
	if got := g.TopologicalOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("TopologicalOrder = %v, want %v", got, want)
	}

	// Declaring c before b must flip the order deterministically.
	g2, err := NewTaskGraph([]*TaskNode{
		node("a", 1),
		node("c", 2, "a"),
		node("b", 2, "a"),
		node("d", 1, "b", "c"),
	})
	if err != nil {
		t.Fatalf("NewTaskGraph failed: %v", err)
	}

	want2 := []string{"a", "c", "b", "d"}
	if got := g2.TopologicalOrder(); !reflect.DeepEqual(got, want2) {
		t.Errorf("TopologicalOrder = %v, want %v", got, want2)
	}
}

func TestNewTaskGraphDuplicateID(t *testing.T) {
	_, err := NewTaskGraph([]*TaskNode{
		node("a", 1),
		node("a", 2),
	})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
}

func TestNewTaskGraphMissingDependency(t *testing.T) {
	_, err := NewTaskGraph([]*TaskNode{
		node("a", 1, "ghost"),
	})
	if err == nil {
		t.Fatal("expected error for missing dependency")
	}
}

func TestNewTaskGraphCycleWitness(t *testing.T) {
	_, err := NewTaskGraph([]*TaskNode{
		node("a", 1),
		node("b", 1, "a", "d"),
		node("c", 1, "b"),
		node("d", 1, "c"),
	})
	if err == nil {
		t.Fatal("expected cycle error")
	}

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %T: %v", err, err)
	}

	// The witness lists the unresolved nodes in insertion order.
	want := []string{"b", "c", "d"}
	if !reflect.DeepEqual(cycleErr.Remaining, want) {
		t.Errorf("Remaining = %v, want %v", cycleErr.Remaining, want)
	}
}

func TestAdjacencyQueries(t *testing.T) {
	g, err := NewTaskGraph([]*TaskNode{
		node("a", 1),
		node("b", 2, "a"),
		node("c", 2, "a"),
		node("d", 1, "b", "c"),
	})
	if err != nil {
		t.Fatalf("NewTaskGraph failed: %v", err)
	}

	if got := g.SuccessorsOf("a"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("SuccessorsOf(a) = %v", got)
	}
	if got := g.PredecessorsOf("d"); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("PredecessorsOf(d) = %v", got)
	}
	if got := g.SuccessorsOf("d"); len(got) != 0 {
		t.Errorf("SuccessorsOf(d) = %v, want empty", got)
	}
	if got := g.PredecessorsOf("ghost"); got != nil {
		t.Errorf("PredecessorsOf(ghost) = %v, want nil", got)
	}

	if _, ok := g.Node("b"); !ok {
		t.Error("Node(b) not found")
	}
	if _, ok := g.Node("ghost"); ok {
		t.Error("Node(ghost) unexpectedly found")
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	g, err := NewTaskGraph([]*TaskNode{node("a", 1)})
	if err != nil {
		t.Fatalf("NewTaskGraph failed: %v", err)
	}

	nodes := g.Nodes()
	nodes[0] = nil
	if fresh := g.Nodes(); fresh[0] == nil {
		t.Error("mutating the returned slice must not affect the graph")
	}
}
