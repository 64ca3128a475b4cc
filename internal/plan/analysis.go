package plan

// NodeTiming holds the per-task results of the critical-path computation.
// All values are in effort units, not wall-clock time.
type NodeTiming struct {
	EarliestStart  int
	EarliestFinish int
	LatestStart    int
	LatestFinish   int
	Slack          int
	Critical       bool // true iff Slack == 0
}

// Analysis is the immutable result of analyzing one task graph. A fresh
// value is produced on every call; nothing here is shared or mutated after.
type Analysis struct {
	Timings       map[string]NodeTiming
	CriticalPath  []string // source-to-sink chain of critical node ids
	ProjectFinish int      // max earliest finish over sink nodes
	TotalEffort   int      // sum of all node efforts, independent of shape
}

// Analyze runs a critical-path-method two-pass computation over the graph,
// using each task's effort as its duration. The graph must already be valid;
// passing an unvalidated graph is a programming error.
func Analyze(g *TaskGraph) *Analysis {
	order := g.TopologicalOrder()
	timings := make(map[string]NodeTiming, g.Len())

	// Forward pass: earliest start is the max earliest finish of predecessors.
	for _, id := range order {
		node, _ := g.Node(id)
		start := 0
		for _, predID := range node.DependsOn {
			if finish := timings[predID].EarliestFinish; finish > start {
				start = finish
			}
		}
		timings[id] = NodeTiming{
			EarliestStart:  start,
			EarliestFinish: start + node.Effort,
		}
	}

	// Project finish: max earliest finish over sinks.
	projectFinish := 0
	for _, node := range g.nodes {
		if len(g.successors[node.ID]) == 0 {
			if finish := timings[node.ID].EarliestFinish; finish > projectFinish {
				projectFinish = finish
			}
		}
	}

	// Backward pass: latest finish is the min latest start of successors.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		node, _ := g.Node(id)
		finish := projectFinish
		for _, succID := range g.successors[id] {
			if start := timings[succID].LatestStart; start < finish {
				finish = start
			}
		}

		t := timings[id]
		t.LatestFinish = finish
		t.LatestStart = finish - node.Effort
		t.Slack = t.LatestStart - t.EarliestStart
		t.Critical = t.Slack == 0
		timings[id] = t
	}

	totalEffort := 0
	for _, node := range g.nodes {
		totalEffort += node.Effort
	}

	return &Analysis{
		Timings:       timings,
		CriticalPath:  criticalPath(g, timings),
		ProjectFinish: projectFinish,
		TotalEffort:   totalEffort,
	}
}

// criticalPath walks one maximal chain of zero-slack tasks from a source to
// a sink. When several critical chains exist, the node with the smallest
// insertion index wins at the start and at every branching point, so the
// reported path is deterministic.
func criticalPath(g *TaskGraph, timings map[string]NodeTiming) []string {
	// Starting node: the critical source with the smallest insertion index.
	start := ""
	for _, node := range g.nodes {
		if len(node.DependsOn) == 0 && timings[node.ID].Critical {
			start = node.ID
			break
		}
	}
	if start == "" {
		return nil
	}

	path := []string{start}
	current := start
	for {
		// Next hop: the critical successor whose earliest start equals the
		// current task's earliest finish, i.e. the edge that carries the
		// project finish time.
		finish := timings[current].EarliestFinish
		next := ""
		for _, succID := range g.successors[current] {
			t := timings[succID]
			if !t.Critical || t.EarliestStart != finish {
				continue
			}
			if next == "" || g.indexOf(succID) < g.indexOf(next) {
				next = succID
			}
		}
		if next == "" {
			break
		}
		path = append(path, next)
		current = next
	}

	return path
}
