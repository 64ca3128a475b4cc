// Package decompose instantiates blueprint phases into concrete task graphs
// bound to a specific issue.
package decompose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/plan"
)

// ErrEmptyTitle is returned when the issue title is blank after trimming.
var ErrEmptyTitle = errors.New("issue title is empty")

// Build decomposes one issue into a validated task graph using the blueprint
// registered for category. The output is fully deterministic: identical
// inputs always produce identical node ids, field values, and edges. Build
// holds no state across calls.
func Build(reg *blueprint.Registry, title, description string, category blueprint.WorkCategory) (*plan.TaskGraph, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	description = strings.TrimSpace(description)

	bp, err := reg.Lookup(category)
	if err != nil {
		return nil, err
	}

	// Per-phase sequence counters start at 1. Each slug currently maps to
	// exactly one node, but the id scheme leaves room for multi-instance
	// phases without changing existing ids. Ids are assigned up front so
	// predecessor slugs resolve regardless of declaration order.
	sequence := make(map[string]int, len(bp.Phases))
	idBySlug := make(map[string]string, len(bp.Phases))
	for _, phase := range bp.Phases {
		sequence[phase.Slug]++
		idBySlug[phase.Slug] = fmt.Sprintf("%s_%04d", phase.Slug, sequence[phase.Slug])
	}

	nodes := make([]*plan.TaskNode, 0, len(bp.Phases))
	for _, phase := range bp.Phases {
		taskDescription := interpolate(phase.Description, title)
		if description != "" {
			taskDescription = taskDescription + "\n\nIssue context: " + description
		}

		dependsOn := make([]string, 0, len(phase.DependsOn))
		for _, depSlug := range phase.DependsOn {
			dependsOn = append(dependsOn, idBySlug[depSlug])
		}

		nodes = append(nodes, &plan.TaskNode{
			ID:                 idBySlug[phase.Slug],
			Title:              interpolate(phase.Title, title),
			Description:        taskDescription,
			Effort:             phase.Effort,
			Priority:           phase.Priority,
			Capabilities:       append([]string(nil), phase.Capabilities...),
			AcceptanceCriteria: append([]string(nil), phase.AcceptanceCriteria...),
			Labels:             append([]string(nil), phase.Labels...),
			DependsOn:          dependsOn,
			PhaseSlug:          phase.Slug,
			Category:           bp.Category,
		})
	}

	// Construction re-validates acyclicity defensively; a CycleError here
	// means a registered blueprint slipped past validation.
	return plan.NewTaskGraph(nodes)
}

// interpolate substitutes the issue title into a phase template.
func interpolate(template, title string) string {
	return strings.ReplaceAll(template, "{title}", title)
}
