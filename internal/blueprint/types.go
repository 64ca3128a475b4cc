package blueprint

import (
	"fmt"
)

// WorkCategory classifies a parent issue and selects a decomposition blueprint.
type WorkCategory string

// Built-in categories. The set is closed but extensible: registering a new
// blueprint adds a new category.
const (
	CategoryDevelopment   WorkCategory = "development"
	CategoryResearch      WorkCategory = "research"
	CategoryAnalysis      WorkCategory = "analysis"
	CategoryTesting       WorkCategory = "testing"
	CategoryDocumentation WorkCategory = "documentation"
	CategoryArchitecture  WorkCategory = "architecture"
)

// Priority is an ordinal priority tier for a phase and the tasks built from it.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// String returns the lowercase name of the priority tier.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// ParsePriority converts a priority name to its ordinal value.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "critical":
		return PriorityCritical, nil
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return 0, fmt.Errorf("unknown priority %q", s)
}

// PhaseSpec defines one step of a blueprint. The Title and Description fields
// are templates: every "{title}" occurrence is replaced with the issue title
// when the phase is instantiated into a task.
type PhaseSpec struct {
	Slug               string   // Stable identifier, unique within the blueprint
	Title              string   // Task title template
	Description        string   // Task description template
	Effort             int      // Default effort in story points (> 0)
	Priority           Priority // Default priority tier
	Capabilities       []string // Required capability tags
	AcceptanceCriteria []string // Acceptance criteria for the generated task
	Labels             []string // Suggested labels
	DependsOn          []string // Predecessor phase slugs within the same blueprint
}

// Blueprint is the ordered phase template for one work category.
// Phase order is significant: it is the deterministic tie-break used for
// node ids, topological order, and critical-path selection downstream.
type Blueprint struct {
	Category WorkCategory
	Phases   []PhaseSpec
}
