// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pdiddy/scholar-search/pkg/types"
)

const defaultPoolSize = 4

// Runner executes searches as deferred tasks on a worker pool. Submitting
// a search cancels every earlier one still in flight, and only the most
// recently submitted search can be applied: an earlier search that
// completes late reports ErrSuperseded.
type Runner struct {
	fn      SearchFunc
	pool    *ants.Pool
	latency time.Duration
	apply   func(Output)
	logger  *slog.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	latest *Output
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner) error

// WithLatency delays each search by d before it runs.
func WithLatency(d time.Duration) RunnerOption {
	return func(r *Runner) error {
		r.latency = max(d, 0)
		return nil
	}
}

// WithPoolSize sets the number of workers. Default is 4.
func WithPoolSize(size int) RunnerOption {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithApply registers fn to receive every applied Output. fn runs while
// the Runner's lock is held and must not call back into the Runner.
func WithApply(fn func(Output)) RunnerOption {
	return func(r *Runner) error {
		r.apply = fn
		return nil
	}
}

// WithRunnerLogger sets the logger. Default is slog.Default().
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner returns a Runner that executes fn.
func NewRunner(fn SearchFunc, opts ...RunnerOption) (*Runner, error) {
	if fn == nil {
		return nil, fmt.Errorf("search function required")
	}
	pool, err := ants.NewPool(defaultPoolSize)
	if err != nil {
		return nil, err
	}
	r := &Runner{fn: fn, pool: pool, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Release()
			return nil, err
		}
	}
	return r, nil
}

// Pending is a submitted search.
type Pending struct {
	done chan struct{}
	out  Output
	err  error
}

// Done is closed when the search has completed or been superseded.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the search finishes and returns its outcome.
func (p *Pending) Wait() (Output, error) {
	<-p.done
	return p.out, p.err
}

// Submit schedules a search and cancels any earlier one in flight.
func (r *Runner) Submit(ctx context.Context, query string, f types.Filters) *Pending {
	taskCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	r.seq++
	seq := r.seq
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	r.mu.Unlock()

	p := &Pending{done: make(chan struct{})}
	err := r.pool.Submit(func() {
		defer cancel()
		out, err := r.run(taskCtx, query, f)
		r.finish(p, seq, out, err)
	})
	if err != nil {
		cancel()
		p.err = fmt.Errorf("scheduling search: %w", err)
		close(p.done)
	}
	return p
}

func (r *Runner) run(ctx context.Context, query string, f types.Filters) (Output, error) {
	if r.latency > 0 {
		timer := time.NewTimer(r.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Output{}, ctx.Err()
		case <-timer.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	return r.fn(ctx, query, f)
}

func (r *Runner) finish(p *Pending, seq uint64, out Output, err error) {
	r.mu.Lock()
	stale := seq != r.seq
	if !stale && err == nil {
		r.latest = &out
		if r.apply != nil {
			r.apply(out)
		}
	}
	r.mu.Unlock()

	if stale {
		r.logger.Debug("discarding superseded search", "seq", seq)
		p.err = ErrSuperseded
	} else {
		p.out, p.err = out, err
	}
	close(p.done)
}

// Latest returns the most recently applied output.
func (r *Runner) Latest() (Output, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latest == nil {
		return Output{}, false
	}
	return *r.latest, true
}

// Release cancels any in-flight search and frees the worker pool.
func (r *Runner) Release() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()
	if r.pool != nil {
		r.pool.Release()
	}
}
