package plan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyGraph is returned when a graph is constructed with no nodes.
var ErrEmptyGraph = errors.New("task graph has no nodes")

// CycleError reports a dependency cycle. Remaining holds the node ids left
// unresolved after topological elimination, in insertion order - the cycle
// witness.
type CycleError struct {
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle among tasks: %s", strings.Join(e.Remaining, ", "))
}

// TaskGraph is the full node set plus derived adjacency. Construction
// validates the graph; an invalid graph is never returned to callers.
// A built graph is immutable, so concurrent reads need no locking.
type TaskGraph struct {
	nodes      []*TaskNode // insertion order, the deterministic tie-break order
	byID       map[string]*TaskNode
	index      map[string]int      // node id -> insertion index
	successors map[string][]string // node id -> successor ids, insertion order
	topo       []string            // cached topological order
}

// NewTaskGraph validates the node set and builds the graph. Validation
// covers duplicate ids, unresolvable predecessors, cycles (Kahn's algorithm,
// with the unresolved node set as witness), and the presence of at least one
// source and one sink.
func NewTaskGraph(nodes []*TaskNode) (*TaskGraph, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	g := &TaskGraph{
		nodes:      nodes,
		byID:       make(map[string]*TaskNode, len(nodes)),
		index:      make(map[string]int, len(nodes)),
		successors: make(map[string][]string),
	}

	for i, node := range nodes {
		if _, exists := g.byID[node.ID]; exists {
			return nil, fmt.Errorf("duplicate task id %q", node.ID)
		}
		g.byID[node.ID] = node
		g.index[node.ID] = i
	}

	// Every referenced predecessor must exist; build the successor adjacency.
	for _, node := range nodes {
		for _, depID := range node.DependsOn {
			if _, exists := g.byID[depID]; !exists {
				return nil, fmt.Errorf("task %q depends on non-existent task %q", node.ID, depID)
			}
			g.successors[depID] = append(g.successors[depID], node.ID)
		}
	}

	order, err := g.kahnOrder()
	if err != nil {
		return nil, err
	}
	g.topo = order

	// An acyclic graph always has sources and sinks, but the invariant is
	// cheap to state explicitly and guards future construction paths.
	hasSource, hasSink := false, false
	for _, node := range nodes {
		if len(node.DependsOn) == 0 {
			hasSource = true
		}
		if len(g.successors[node.ID]) == 0 {
			hasSink = true
		}
	}
	if !hasSource || !hasSink {
		return nil, fmt.Errorf("task graph must have at least one source and one sink")
	}

	return g, nil
}

// kahnOrder computes a topological order by repeatedly removing zero
// in-degree nodes. The tie-break among simultaneously ready nodes is the
// insertion index, so the order is fully deterministic. If nodes remain
// after no zero in-degree node exists, they are returned as a CycleError.
func (g *TaskGraph) kahnOrder() ([]string, error) {
	indegree := make(map[string]int, len(g.nodes))
	for _, node := range g.nodes {
		indegree[node.ID] = len(node.DependsOn)
	}

	emitted := make(map[string]bool, len(g.nodes))
	order := make([]string, 0, len(g.nodes))

	for len(order) < len(g.nodes) {
		// First unemitted ready node in insertion order
		next := ""
		for _, node := range g.nodes {
			if !emitted[node.ID] && indegree[node.ID] == 0 {
				next = node.ID
				break
			}
		}
		if next == "" {
			break
		}

		emitted[next] = true
		order = append(order, next)
		for _, succID := range g.successors[next] {
			indegree[succID]--
		}
	}

	if len(order) != len(g.nodes) {
		var remaining []string
		for _, node := range g.nodes {
			if !emitted[node.ID] {
				remaining = append(remaining, node.ID)
			}
		}
		return nil, &CycleError{Remaining: remaining}
	}

	return order, nil
}

// Len returns the number of tasks in the graph.
func (g *TaskGraph) Len() int {
	return len(g.nodes)
}

// Nodes returns all tasks in insertion order. The slice is a copy; the nodes
// themselves are shared and must be treated as read-only.
func (g *TaskGraph) Nodes() []*TaskNode {
	return append([]*TaskNode(nil), g.nodes...)
}

// Node returns the task with the given id.
func (g *TaskGraph) Node(id string) (*TaskNode, bool) {
	node, ok := g.byID[id]
	return node, ok
}

// TopologicalOrder returns the deterministic linearization computed at
// construction time.
func (g *TaskGraph) TopologicalOrder() []string {
	return append([]string(nil), g.topo...)
}

// PredecessorsOf returns the direct predecessor ids of a task, empty if none.
func (g *TaskGraph) PredecessorsOf(id string) []string {
	node, ok := g.byID[id]
	if !ok {
		return nil
	}
	return append([]string(nil), node.DependsOn...)
}

// SuccessorsOf returns the direct successor ids of a task, empty if none.
func (g *TaskGraph) SuccessorsOf(id string) []string {
	return append([]string(nil), g.successors[id]...)
}

// indexOf returns the insertion index of a node, used as the deterministic
// tie-break during analysis.
func (g *TaskGraph) indexOf(id string) int {
	return g.index[id]
}
