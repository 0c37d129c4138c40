package compare

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"
)

const defaultDispatchTimeout = 2 * time.Second

type task struct {
	output   string
	expected string
	result   chan bool
}

// Pool is a fixed-size worker pool for output comparison. It is a
// long-lived resource shared across judging runs; each run borrows
// workers transiently. The in-flight comparison count is capped at
// the worker count, which is what bounds the whole judging
// pipeline's concurrency.
type Pool struct {
	logger *slog.Logger

	tasks           chan task
	dispatchTimeout time.Duration
	wg              sync.WaitGroup

	closeOnce sync.Once
}

// NewPool starts a comparator pool with the given number of
// workers; size <= 0 uses hardware parallelism.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	// unbuffered: a dispatch only succeeds when a worker is free,
	// so in-flight comparisons never exceed the worker count
	p := &Pool{
		logger:          slog.Default().With("module", "compare"),
		tasks:           make(chan task),
		dispatchTimeout: defaultDispatchTimeout,
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	p.logger.Info("started comparator pool", "workers", size)
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for t := range p.tasks {
		t.result <- Equal(t.output, t.expected)
	}
}

// Compare dispatches one comparison to the pool and waits for its
// verdict. A dispatch that cannot be queued within the dispatch
// timeout is retried exactly once before surfacing a hard error.
// Context cancellation is never reported as a pool fault: the ctx
// error is returned as-is. A nil or never-started pool fails fast
// instead of queueing.
func (p *Pool) Compare(ctx context.Context, output string, expected string) (bool, error) {
	if p == nil || p.tasks == nil {
		return false, ErrPoolNotInitialized()
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	t := task{
		output:   output,
		expected: expected,
		result:   make(chan bool, 1),
	}

	if err := p.dispatch(ctx, t); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		p.logger.Warn("comparison dispatch failed, retrying once", "error", err)
		if err := p.dispatch(ctx, t); err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			return false, ErrDispatchFailed().SetDebug(err)
		}
	}

	select {
	case passed := <-t.result:
		return passed, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (p *Pool) dispatch(ctx context.Context, t task) error {
	timeout := p.dispatchTimeout
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case p.tasks <- t:
		return nil
	case <-timer.C:
		return context.DeadlineExceeded
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains the pool and stops all workers. Pending comparisons
// finish; new dispatches panic, so Close belongs at shutdown only.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
		p.wg.Wait()
	})
}
