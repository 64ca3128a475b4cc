package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/events"
	"github.com/okessler/taskforge/internal/persistence"
	"github.com/okessler/taskforge/internal/render"
	"github.com/okessler/taskforge/internal/runner"
)

const (
	formatMarkdown = "markdown"
	formatText     = "text"
)

var (
	decomposeDescription string
	decomposeCategory    string
	decomposeOutput      string
	decomposeFormat      string
	decomposeSave        bool
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <title>",
	Short: "Decompose a single issue into a task plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := defaultCategory()
		if decomposeCategory != "" {
			category = blueprint.WorkCategory(decomposeCategory)
		}

		var store persistence.Store
		if decomposeSave {
			var err error
			store, err = persistence.NewSQLiteStore(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("opening run store: %w", err)
			}
			defer store.Close()
		}

		bus, stopTrace := maybeTrace()
		defer stopTrace()

		r := runner.New(runner.Config{
			Registry: registry,
			Store:    store,
			Bus:      bus,
		})

		res, err := r.Run(cmd.Context(), runner.Request{
			Title:       args[0],
			Description: decomposeDescription,
			Category:    category,
		})
		if err != nil {
			return err
		}

		var report string
		switch decomposeFormat {
		case formatMarkdown:
			report = render.Markdown(res)
		case formatText:
			report = render.Text(res)
		default:
			return fmt.Errorf("unknown output format %q (want %s or %s)", decomposeFormat, formatMarkdown, formatText)
		}

		if decomposeOutput != "" {
			if err := os.WriteFile(decomposeOutput, []byte(report), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (run %s)\n", decomposeOutput, res.RunID)
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), report)
		return nil
	},
}

// maybeTrace wires a bus that logs lifecycle events when --verbose is set.
// The returned stop function drains the subscriber before the command exits.
func maybeTrace() (*events.Bus, func()) {
	if !flagVerbose {
		return nil, func() {}
	}

	bus := events.NewBus()
	ch := bus.Subscribe(64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range ch {
			log.Printf("%s run=%s", event.EventType(), event.RunID())
		}
	}()
	return bus, func() {
		bus.Close()
		<-done
	}
}

func init() {
	decomposeCmd.Flags().StringVarP(&decomposeDescription, "description", "d", "", "issue description for task context")
	decomposeCmd.Flags().StringVarP(&decomposeCategory, "category", "c", "", "work category (see 'taskforge categories')")
	decomposeCmd.Flags().StringVarP(&decomposeOutput, "output", "o", "", "write the report to a file instead of stdout")
	decomposeCmd.Flags().StringVar(&decomposeFormat, "format", formatMarkdown, "report format: markdown or text")
	decomposeCmd.Flags().BoolVar(&decomposeSave, "save", false, "record the run in the history database")
}
