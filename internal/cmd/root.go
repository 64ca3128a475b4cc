// Package cmd implements the taskforge command-line interface.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/config"
)

var (
	// Shared state initialized by the root command before any subcommand runs
	cfg      *config.Config
	registry *blueprint.Registry

	// Global flags
	flagDatabase string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "taskforge",
	Short: "Decompose issues into dependency-ordered task plans",
	Long: `Taskforge breaks a single issue into a structured set of smaller tasks
connected by dependencies, then reports execution order, total effort,
and the critical path.

Examples:
  # Decompose a feature request with the default category
  taskforge decompose "Implement user authentication system" -d "OAuth2 + sessions"

  # Use a specific category and write a Markdown report
  taskforge decompose "Add payment module tests" -c testing -o report.md

  # Decompose a whole backlog concurrently
  taskforge batch backlog.yaml -o reports/`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadDefault()
		if err != nil {
			return err
		}
		if flagDatabase != "" {
			loaded.DatabasePath = flagDatabase
		}
		cfg = loaded

		registry = blueprint.DefaultRegistry()
		for _, dir := range cfg.BlueprintDirs {
			if err := blueprint.LoadDir(registry, dir); err != nil {
				return fmt.Errorf("loading custom blueprints: %w", err)
			}
		}
		return nil
	},
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// defaultCategory resolves the category to use when none is given:
// the configured default if set, otherwise the first registered category.
func defaultCategory() blueprint.WorkCategory {
	if cfg.DefaultCategory != "" {
		return blueprint.WorkCategory(cfg.DefaultCategory)
	}
	return registry.DefaultCategory()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "run history database path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log run lifecycle events")

	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}
