package config

// Config is the top-level application configuration.
type Config struct {
	DefaultCategory  string   `json:"default_category,omitempty"`  // Overrides the registry's first category as CLI default
	DatabasePath     string   `json:"database_path,omitempty"`     // SQLite run-history location
	BlueprintDirs    []string `json:"blueprint_dirs,omitempty"`    // Directories scanned for custom YAML blueprints
	BatchConcurrency int      `json:"batch_concurrency,omitempty"` // Max concurrent decompositions in batch mode
}
