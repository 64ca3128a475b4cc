package runner

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"

	"github.com/okessler/taskforge/internal/persistence"
)

// RetryConfig configures exponential backoff for store writes. Concurrent
// batch runs can hit SQLITE_BUSY; writes are retried with jittered backoff.
type RetryConfig struct {
	InitialInterval     time.Duration // Initial retry interval (default 50ms)
	MaxInterval         time.Duration // Maximum retry interval (default 2s)
	MaxElapsedTime      time.Duration // Maximum total retry time (default 30s)
	Multiplier          float64       // Backoff multiplier (default 2.0)
	RandomizationFactor float64       // Jitter factor (default 0.5)
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialInterval:     50 * time.Millisecond,
		MaxInterval:         2 * time.Second,
		MaxElapsedTime:      30 * time.Second,
		Multiplier:          2.0,
		RandomizationFactor: 0.5,
	}
}

// storeBreaker wraps store writes in a circuit breaker so a wedged database
// fails batch runs fast instead of burning the full retry budget per run.
type storeBreaker struct {
	cb *gobreaker.CircuitBreaker
}

func newStoreBreaker() *storeBreaker {
	return &storeBreaker{
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "run-store",
			MaxRequests: 2,                // Test requests allowed in half-open state
			Timeout:     15 * time.Second, // Stay open for 15s before testing recovery
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				log.Printf("Circuit breaker %q: %s -> %s", name, from, to)
			},
			IsSuccessful: func(err error) bool {
				// Don't count caller cancellation as a store failure
				if err == nil {
					return true
				}
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return true
				}
				return false
			},
		}),
	}
}

// saveWithRetry persists a run with exponential backoff retry and circuit
// breaker protection.
func (r *Runner) saveWithRetry(ctx context.Context, record *persistence.RunRecord) error {
	operation := func() error {
		// Fail fast if the caller is gone
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}

		_, err := r.breaker.cb.Execute(func() (interface{}, error) {
			return nil, r.cfg.Store.SaveRun(ctx, record)
		})
		if err != nil {
			// Circuit is open - don't retry
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.cfg.Retry.InitialInterval
	policy.MaxInterval = r.cfg.Retry.MaxInterval
	policy.MaxElapsedTime = r.cfg.Retry.MaxElapsedTime
	policy.Multiplier = r.cfg.Retry.Multiplier
	policy.RandomizationFactor = r.cfg.Retry.RandomizationFactor

	return backoff.Retry(operation, backoff.WithContext(policy, ctx))
}
