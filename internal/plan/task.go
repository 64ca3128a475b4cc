package plan

import (
	"github.com/okessler/taskforge/internal/blueprint"
)

// TaskNode is one concrete sub-task produced by binding a blueprint phase to
// an issue. Nodes are immutable once built: the builder is the sole creator
// and the graph is the sole owner.
type TaskNode struct {
	ID                 string   // Deterministic: "{phaseSlug}_{sequence:04d}"
	Title              string
	Description        string
	Effort             int // Story points; the node's duration for analysis
	Priority           blueprint.Priority
	Capabilities       []string
	AcceptanceCriteria []string
	Labels             []string
	DependsOn          []string // Predecessor node ids

	// Provenance metadata
	PhaseSlug string
	Category  blueprint.WorkCategory
}
