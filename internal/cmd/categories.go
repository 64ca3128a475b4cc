package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available work categories and their phases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def := defaultCategory()
		for _, category := range registry.Categories() {
			bp, err := registry.Lookup(category)
			if err != nil {
				return err
			}

			marker := ""
			if category == def {
				marker = " (default)"
			}

			var total int
			slugs := make([]string, 0, len(bp.Phases))
			for _, phase := range bp.Phases {
				total += phase.Effort
				slugs = append(slugs, phase.Slug)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", category, marker)
			fmt.Fprintf(cmd.OutOrStdout(), "  %d phases, %d points: %s\n", len(bp.Phases), total, strings.Join(slugs, " -> "))
		}
		return nil
	},
}
