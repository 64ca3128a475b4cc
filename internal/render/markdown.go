// Package render turns decomposition results into textual reports.
// The engine only exposes data; everything presentational lives here.
package render

import (
	"fmt"
	"strings"

	"github.com/okessler/taskforge/internal/runner"
)

// Markdown renders a full decomposition report as a Markdown document:
// per-task details, execution order, and the critical path.
func Markdown(res *runner.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Task breakdown: %s\n\n", strings.TrimSpace(res.Request.Title))
	fmt.Fprintf(&b, "- Category: %s\n", res.Request.Category)
	fmt.Fprintf(&b, "- Tasks: %d across %d phases\n", res.Summary.NodeCount, res.Summary.PhaseCount)
	fmt.Fprintf(&b, "- Total effort: %d points\n", res.Summary.TotalEffort)
	fmt.Fprintf(&b, "- Minimum completion time: %d points along the critical path\n", res.Summary.ProjectFinish)
	b.WriteString("\n")

	if desc := strings.TrimSpace(res.Request.Description); desc != "" {
		b.WriteString("## Issue\n\n")
		b.WriteString(desc)
		b.WriteString("\n\n")
	}

	b.WriteString("## Tasks\n\n")
	for _, node := range res.Graph.Nodes() {
		timing := res.Analysis.Timings[node.ID]

		fmt.Fprintf(&b, "### %s: %s\n\n", node.ID, node.Title)
		b.WriteString(node.Description)
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "- Effort: %d points\n", node.Effort)
		fmt.Fprintf(&b, "- Priority: %s\n", node.Priority)
		if len(node.Capabilities) > 0 {
			fmt.Fprintf(&b, "- Capabilities: %s\n", strings.Join(node.Capabilities, ", "))
		}
		if len(node.Labels) > 0 {
			fmt.Fprintf(&b, "- Labels: %s\n", strings.Join(node.Labels, ", "))
		}
		if len(node.DependsOn) > 0 {
			fmt.Fprintf(&b, "- Depends on: %s\n", strings.Join(node.DependsOn, ", "))
		} else {
			b.WriteString("- Depends on: nothing (entry point)\n")
		}
		fmt.Fprintf(&b, "- Schedule: start %d, finish %d, slack %d\n", timing.EarliestStart, timing.EarliestFinish, timing.Slack)
		if len(node.AcceptanceCriteria) > 0 {
			b.WriteString("- Acceptance criteria:\n")
			for _, criterion := range node.AcceptanceCriteria {
				fmt.Fprintf(&b, "  - %s\n", criterion)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## Execution order\n\n")
	for i, group := range res.Summary.ExecutionOrder {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, group.Phase, strings.Join(group.TaskIDs, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Critical path\n\n")
	b.WriteString("| Task | Slack |\n|------|-------|\n")
	for _, step := range res.Summary.CriticalPath {
		fmt.Fprintf(&b, "| %s | %d |\n", step.TaskID, step.Slack)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Critical path effort: %d points. Work off the critical path carries slack and can shift without delaying completion.\n", res.Summary.ProjectFinish)

	return b.String()
}
