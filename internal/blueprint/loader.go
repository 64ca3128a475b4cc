package blueprint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// blueprintFile is the on-disk YAML form of a custom blueprint.
type blueprintFile struct {
	Category string      `yaml:"category"`
	Phases   []phaseFile `yaml:"phases"`
}

type phaseFile struct {
	Slug               string   `yaml:"slug"`
	Title              string   `yaml:"title"`
	Description        string   `yaml:"description"`
	Effort             int      `yaml:"effort"`
	Priority           string   `yaml:"priority"`
	Capabilities       []string `yaml:"capabilities"`
	AcceptanceCriteria []string `yaml:"acceptance_criteria"`
	Labels             []string `yaml:"labels"`
	DependsOn          []string `yaml:"depends_on"`
}

// LoadFile parses a single YAML blueprint file. The result is not yet
// validated; Register performs the structural checks.
func LoadFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var file blueprintFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	bp := &Blueprint{Category: WorkCategory(file.Category)}
	for _, p := range file.Phases {
		priority := PriorityMedium
		if p.Priority != "" {
			parsed, err := ParsePriority(p.Priority)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: phase %q: %w", path, p.Slug, err)
			}
			priority = parsed
		}
		bp.Phases = append(bp.Phases, PhaseSpec{
			Slug:               p.Slug,
			Title:              p.Title,
			Description:        p.Description,
			Effort:             p.Effort,
			Priority:           priority,
			Capabilities:       p.Capabilities,
			AcceptanceCriteria: p.AcceptanceCriteria,
			Labels:             p.Labels,
			DependsOn:          p.DependsOn,
		})
	}
	return bp, nil
}

// LoadDir loads every .yaml/.yml blueprint in dir into the registry.
// Files are processed in lexical order so registration order (and therefore
// the default category) is stable. A missing directory is not an error.
func LoadDir(r *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading blueprint directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		bp, err := LoadFile(path)
		if err != nil {
			return err
		}
		if err := r.Register(bp); err != nil {
			return fmt.Errorf("registering blueprint from %s: %w", path, err)
		}
	}
	return nil
}
