package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/persistence"
	"github.com/okessler/taskforge/internal/render"
	"github.com/okessler/taskforge/internal/runner"
)

var (
	batchOutputDir   string
	batchConcurrency int
	batchSave        bool
)

// batchFile is the YAML shape of a backlog file.
type batchFile struct {
	Issues []batchIssue `yaml:"issues"`
}

type batchIssue struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <backlog.yaml>",
	Short: "Decompose a backlog of issues concurrently",
	Long: `Batch reads a YAML backlog and decomposes every issue concurrently.

The backlog file lists issues under a top-level "issues" key:

  issues:
    - title: Implement user authentication system
      description: OAuth2 with refresh tokens
      category: development
    - title: Evaluate caching strategies
      category: research

Issues without a category use the configured default. With -o, one
Markdown report is written per issue into the given directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs, err := loadBacklog(args[0])
		if err != nil {
			return err
		}
		if len(reqs) == 0 {
			return fmt.Errorf("backlog %s contains no issues", args[0])
		}

		var store persistence.Store
		if batchSave {
			store, err = persistence.NewSQLiteStore(cmd.Context(), cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("opening run store: %w", err)
			}
			defer store.Close()
		}

		bus, stopTrace := maybeTrace()
		defer stopTrace()

		concurrency := cfg.BatchConcurrency
		if batchConcurrency > 0 {
			concurrency = batchConcurrency
		}

		r := runner.New(runner.Config{
			Registry:         registry,
			Store:            store,
			Bus:              bus,
			ConcurrencyLimit: concurrency,
		})

		results, err := r.RunBatch(cmd.Context(), reqs)
		if err != nil {
			return err
		}

		if batchOutputDir != "" {
			if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			for i, res := range results {
				name := fmt.Sprintf("%03d-%s.md", i+1, slugify(res.Request.Title))
				path := filepath.Join(batchOutputDir, name)
				if err := os.WriteFile(path, []byte(render.Markdown(res)), 0o644); err != nil {
					return fmt.Errorf("writing report %s: %w", path, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d reports to %s\n", len(results), batchOutputDir)
			return nil
		}

		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Text(res))
		}
		return nil
	},
}

func loadBacklog(path string) ([]runner.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backlog: %w", err)
	}

	var file batchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing backlog %s: %w", path, err)
	}

	reqs := make([]runner.Request, 0, len(file.Issues))
	for _, issue := range file.Issues {
		category := defaultCategory()
		if issue.Category != "" {
			category = blueprint.WorkCategory(issue.Category)
		}
		reqs = append(reqs, runner.Request{
			Title:       issue.Title,
			Description: issue.Description,
			Category:    category,
		})
	}
	return reqs, nil
}

// slugify reduces a title to a safe file name fragment.
func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 48 {
		slug = slug[:48]
	}
	if slug == "" {
		slug = "issue"
	}
	return slug
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "output", "o", "", "directory to write one Markdown report per issue")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "n", 0, "max concurrent decompositions (overrides config)")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "record every run in the history database")
}
