package plan

// PhaseGroup lists the task ids generated from one blueprint phase,
// preserving topological order within the group.
type PhaseGroup struct {
	Phase   string
	TaskIDs []string
}

// CriticalStep is one critical-path task with its slack annotated for
// visibility (always zero by definition, but reported explicitly).
type CriticalStep struct {
	TaskID string
	Slack  int
}

// Summary rolls up a graph and its analysis for presentation. It is a pure
// function of its inputs; renderers decide how to format it.
type Summary struct {
	NodeCount      int
	TotalEffort    int
	PhaseCount     int
	ProjectFinish  int
	ExecutionOrder []PhaseGroup   // groups ordered by first topological appearance
	CriticalPath   []CriticalStep // ids in path order
}

// Summarize merges a graph and its analysis into a Summary.
func Summarize(g *TaskGraph, a *Analysis) *Summary {
	s := &Summary{
		NodeCount:     g.Len(),
		TotalEffort:   a.TotalEffort,
		ProjectFinish: a.ProjectFinish,
	}

	// Group the topological order by originating phase. Groups appear in the
	// order their first task appears; ids inside a group stay in topological
	// order.
	groupIndex := make(map[string]int)
	for _, id := range g.TopologicalOrder() {
		node, _ := g.Node(id)
		idx, seen := groupIndex[node.PhaseSlug]
		if !seen {
			idx = len(s.ExecutionOrder)
			groupIndex[node.PhaseSlug] = idx
			s.ExecutionOrder = append(s.ExecutionOrder, PhaseGroup{Phase: node.PhaseSlug})
		}
		s.ExecutionOrder[idx].TaskIDs = append(s.ExecutionOrder[idx].TaskIDs, id)
	}
	s.PhaseCount = len(s.ExecutionOrder)

	for _, id := range a.CriticalPath {
		s.CriticalPath = append(s.CriticalPath, CriticalStep{
			TaskID: id,
			Slack:  a.Timings[id].Slack,
		})
	}

	return s
}
