package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okessler/taskforge/internal/runner"
)

// Terminal styles
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	styleCritical = lipgloss.NewStyle().
			Foreground(lipgloss.Color("red")).
			Bold(true)

	stylePhase = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Text renders a compact, styled terminal summary of a decomposition run.
func Text(res *runner.Result) string {
	var b strings.Builder

	b.WriteString(styleHeader.Render(fmt.Sprintf("%s (%s)", strings.TrimSpace(res.Request.Title), res.Request.Category)))
	b.WriteString("\n\n")

	critical := make(map[string]bool, len(res.Summary.CriticalPath))
	for _, step := range res.Summary.CriticalPath {
		critical[step.TaskID] = true
	}

	for _, group := range res.Summary.ExecutionOrder {
		b.WriteString(stylePhase.Render(group.Phase))
		b.WriteString("\n")
		for _, id := range group.TaskIDs {
			node, _ := res.Graph.Node(id)
			timing := res.Analysis.Timings[id]

			marker := " "
			if critical[id] {
				marker = styleCritical.Render("*")
			}
			fmt.Fprintf(&b, "  %s %s  %s\n", marker, id, node.Title)
			fmt.Fprintf(&b, "      %s\n", styleDim.Render(fmt.Sprintf(
				"%d pts, %s priority, start %d, slack %d",
				node.Effort, node.Priority, timing.EarliestStart, timing.Slack)))
		}
	}

	b.WriteString("\n")
	var path []string
	for _, step := range res.Summary.CriticalPath {
		path = append(path, step.TaskID)
	}
	b.WriteString(styleCritical.Render("critical path: "))
	b.WriteString(strings.Join(path, " -> "))
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf(
		"%d tasks, %d points total, %d points minimum completion time",
		res.Summary.NodeCount, res.Summary.TotalEffort, res.Summary.ProjectFinish)))
	b.WriteString("\n")

	return b.String()
}
