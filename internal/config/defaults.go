package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration.
// DefaultCategory is left empty so the registry's first category applies.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath:     defaultDatabasePath(),
		BatchConcurrency: 4,
	}
}

// defaultDatabasePath places the run history under ~/.taskforge.
// Falls back to a relative path if the home directory is unavailable.
func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".taskforge", "runs.db")
	}
	return filepath.Join(homeDir, ".taskforge", "runs.db")
}
