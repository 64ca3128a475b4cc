// Package runner coordinates one decomposition invocation end to end:
// build, analyze, summarize, publish lifecycle events, and optionally
// persist the run.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okessler/taskforge/internal/blueprint"
	"github.com/okessler/taskforge/internal/decompose"
	"github.com/okessler/taskforge/internal/events"
	"github.com/okessler/taskforge/internal/persistence"
	"github.com/okessler/taskforge/internal/plan"
)

// Request is one issue to decompose.
type Request struct {
	Title       string
	Description string
	Category    blueprint.WorkCategory
}

// Result is the complete outcome of one decomposition run.
type Result struct {
	RunID    string
	Request  Request
	Graph    *plan.TaskGraph
	Analysis *plan.Analysis
	Summary  *plan.Summary
}

// Config configures a Runner.
type Config struct {
	Registry         *blueprint.Registry
	Store            persistence.Store // Optional; nil disables persistence
	Bus              *events.Bus       // Optional; nil disables event publishing
	Retry            RetryConfig       // Store write retry policy
	ConcurrencyLimit int               // Max concurrent runs in RunBatch (default 4)
}

// Runner executes decomposition runs. Each run is an independent pure
// computation; runs share only the read-only registry and the store, so
// RunBatch needs no coordination beyond bounding concurrency.
type Runner struct {
	cfg     Config
	breaker *storeBreaker
}

// New creates a Runner.
func New(cfg Config) *Runner {
	if cfg.ConcurrencyLimit <= 0 {
		cfg.ConcurrencyLimit = 4
	}
	if cfg.Retry == (RetryConfig{}) {
		cfg.Retry = DefaultRetryConfig()
	}

	return &Runner{
		cfg:     cfg,
		breaker: newStoreBreaker(),
	}
}

// Run executes a single decomposition run. Failures are deterministic
// functions of the input and are never retried; only store writes get the
// resilience treatment.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	runID := uuid.NewString()

	r.publish(events.RunStartedEvent{
		ID:        runID,
		Title:     req.Title,
		Category:  string(req.Category),
		Timestamp: time.Now(),
	})

	graph, err := decompose.Build(r.cfg.Registry, req.Title, req.Description, req.Category)
	if err != nil {
		r.publishFailure(runID, err)
		return nil, err
	}

	r.publish(events.GraphBuiltEvent{
		ID:        runID,
		TaskCount: graph.Len(),
		Timestamp: time.Now(),
	})

	analysis := plan.Analyze(graph)

	r.publish(events.AnalysisCompletedEvent{
		ID:            runID,
		TotalEffort:   analysis.TotalEffort,
		ProjectFinish: analysis.ProjectFinish,
		CriticalPath:  analysis.CriticalPath,
		Timestamp:     time.Now(),
	})

	result := &Result{
		RunID:    runID,
		Request:  req,
		Graph:    graph,
		Analysis: analysis,
		Summary:  plan.Summarize(graph, analysis),
	}

	if r.cfg.Store != nil {
		record := &persistence.RunRecord{
			ID:          runID,
			Title:       req.Title,
			Description: req.Description,
			Category:    string(req.Category),
			Nodes:       graph.Nodes(),
			Analysis:    analysis,
		}
		if err := r.saveWithRetry(ctx, record); err != nil {
			r.publishFailure(runID, err)
			return nil, fmt.Errorf("persisting run %s: %w", runID, err)
		}
		r.publish(events.RunSavedEvent{ID: runID, Timestamp: time.Now()})
	}

	return result, nil
}

// RunBatch decomposes many issues concurrently with bounded concurrency.
// Results are positionally aligned with the requests. The first failure
// cancels outstanding runs.
func (r *Runner) RunBatch(ctx context.Context, reqs []Request) ([]*Result, error) {
	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.ConcurrencyLimit)

	for i, req := range reqs {
		g.Go(func() error {
			result, err := r.Run(gctx, req)
			if err != nil {
				return fmt.Errorf("decomposing %q: %w", req.Title, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// publish sends an event if a bus is configured.
func (r *Runner) publish(event events.Event) {
	if r.cfg.Bus != nil {
		r.cfg.Bus.Publish(event)
	}
}

func (r *Runner) publishFailure(runID string, err error) {
	r.publish(events.RunFailedEvent{ID: runID, Err: err, Timestamp: time.Now()})
}
