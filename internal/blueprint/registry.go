package blueprint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gammazero/toposort"
)

// ErrUnknownCategory is returned by Lookup for categories with no registered blueprint.
var ErrUnknownCategory = errors.New("unknown work category")

// InvalidBlueprintError reports a structural defect found at registration time.
// For shipped blueprints this is a fatal configuration error.
type InvalidBlueprintError struct {
	Category WorkCategory
	Reason   string
}

func (e *InvalidBlueprintError) Error() string {
	return fmt.Sprintf("invalid blueprint %q: %s", e.Category, e.Reason)
}

// Registry is a read-only catalog mapping work categories to blueprints.
// It is populated once at startup and passed by reference; it holds no
// mutable state after that, so concurrent lookups need no locking.
type Registry struct {
	blueprints map[WorkCategory]*Blueprint
	order      []WorkCategory // registration order, drives Categories and DefaultCategory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		blueprints: make(map[WorkCategory]*Blueprint),
	}
}

// Register validates and adds a blueprint. Validation runs once here, not per
// lookup: predecessor slugs must resolve within the blueprint, the phase
// dependencies must form a DAG, and the graph must have at least one source
// and one sink. Registering a duplicate category is an error.
func (r *Registry) Register(bp *Blueprint) error {
	if bp.Category == "" {
		return &InvalidBlueprintError{Category: bp.Category, Reason: "empty category"}
	}
	if _, exists := r.blueprints[bp.Category]; exists {
		return fmt.Errorf("category %q already registered", bp.Category)
	}
	if err := validate(bp); err != nil {
		return err
	}

	r.blueprints[bp.Category] = bp
	r.order = append(r.order, bp.Category)
	return nil
}

// Lookup returns the blueprint for a category, or ErrUnknownCategory.
func (r *Registry) Lookup(category WorkCategory) (*Blueprint, error) {
	bp, ok := r.blueprints[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return bp, nil
}

// Categories returns all registered categories in registration order.
func (r *Registry) Categories() []WorkCategory {
	return append([]WorkCategory(nil), r.order...)
}

// DefaultCategory returns the first registered category, the conventional
// default for callers that don't specify one. Empty if nothing is registered.
func (r *Registry) DefaultCategory() WorkCategory {
	if len(r.order) == 0 {
		return ""
	}
	return r.order[0]
}

// validate checks the structural invariants of a blueprint.
func validate(bp *Blueprint) error {
	if len(bp.Phases) == 0 {
		return &InvalidBlueprintError{Category: bp.Category, Reason: "no phases"}
	}

	// Unique, nonempty slugs with positive effort
	slugs := make(map[string]bool, len(bp.Phases))
	for _, phase := range bp.Phases {
		if phase.Slug == "" {
			return &InvalidBlueprintError{Category: bp.Category, Reason: "phase with empty slug"}
		}
		if slugs[phase.Slug] {
			return &InvalidBlueprintError{Category: bp.Category, Reason: fmt.Sprintf("duplicate phase slug %q", phase.Slug)}
		}
		slugs[phase.Slug] = true
		if phase.Effort <= 0 {
			return &InvalidBlueprintError{Category: bp.Category, Reason: fmt.Sprintf("phase %q has non-positive effort", phase.Slug)}
		}
	}

	// All predecessor references must resolve within the blueprint
	hasDependents := make(map[string]bool)
	for _, phase := range bp.Phases {
		for _, dep := range phase.DependsOn {
			if !slugs[dep] {
				return &InvalidBlueprintError{
					Category: bp.Category,
					Reason:   fmt.Sprintf("phase %q depends on unknown phase %q", phase.Slug, dep),
				}
			}
			if dep == phase.Slug {
				return &InvalidBlueprintError{
					Category: bp.Category,
					Reason:   fmt.Sprintf("phase %q depends on itself", phase.Slug),
				}
			}
			hasDependents[dep] = true
		}
	}

	// Cycle check via topological sort
	var edges []toposort.Edge
	for _, phase := range bp.Phases {
		if len(phase.DependsOn) == 0 {
			// Phase with no predecessors - edge from nil keeps it in the sort
			edges = append(edges, toposort.Edge{nil, phase.Slug})
		} else {
			for _, dep := range phase.DependsOn {
				edges = append(edges, toposort.Edge{dep, phase.Slug})
			}
		}
	}
	if _, err := toposort.Toposort(edges); err != nil {
		return &InvalidBlueprintError{Category: bp.Category, Reason: fmt.Sprintf("phase dependencies contain a cycle: %v", err)}
	}

	// At least one source and one sink
	sources := 0
	sinks := 0
	var allSlugs []string
	for _, phase := range bp.Phases {
		allSlugs = append(allSlugs, phase.Slug)
		if len(phase.DependsOn) == 0 {
			sources++
		}
		if !hasDependents[phase.Slug] {
			sinks++
		}
	}
	if sources == 0 {
		return &InvalidBlueprintError{
			Category: bp.Category,
			Reason:   fmt.Sprintf("no source phase among %s", strings.Join(allSlugs, ", ")),
		}
	}
	if sinks == 0 {
		return &InvalidBlueprintError{
			Category: bp.Category,
			Reason:   fmt.Sprintf("no sink phase among %s", strings.Join(allSlugs, ", ")),
		}
	}

	return nil
}
