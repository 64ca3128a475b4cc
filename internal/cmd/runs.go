package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/persistence"
	"github.com/okessler/taskforge/internal/plan"
	"github.com/okessler/taskforge/internal/render"
	"github.com/okessler/taskforge/internal/runner"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded decomposition runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := persistence.NewSQLiteStore(cmd.Context(), cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening run store: %w", err)
		}
		defer store.Close()

		infos, err := store.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
			return nil
		}

		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  [%s]  %d tasks, %d points  %s\n",
				info.CreatedAt.Format("2006-01-02 15:04"), info.ID, info.Category,
				info.NodeCount, info.TotalEffort, info.Title)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the full report for a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := persistence.NewSQLiteStore(cmd.Context(), cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening run store: %w", err)
		}
		defer store.Close()

		record, err := store.GetRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		graph, err := plan.NewTaskGraph(record.Nodes)
		if err != nil {
			return fmt.Errorf("rebuilding stored graph: %w", err)
		}

		res := &runner.Result{
			RunID: record.ID,
			Request: runner.Request{
				Title:       record.Title,
				Description: record.Description,
				Category:    blueprint.WorkCategory(record.Category),
			},
			Graph:    graph,
			Analysis: record.Analysis,
			Summary:  plan.Summarize(graph, record.Analysis),
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Markdown(res))
		return nil
	},
}

func init() {
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "l", 20, "max runs to list")
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
