package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs each task on its own goroutine, at most Workers at a time,
// using an errgroup as the barrier.
type Group struct {
	workers int
}

var _ Executor = (*Group)(nil)

// NewGroup returns a group executor limited to workers concurrent tasks.
// Non-positive limits are treated as 1.
func NewGroup(workers int) *Group {
	if workers < 1 {
		workers = 1
	}
	return &Group{workers: workers}
}

// Workers reports the concurrency limit.
func (g *Group) Workers() int { return g.workers }

// Name returns "group".
func (g *Group) Name() string { return "group" }

// Run executes tasks 0..n-1 and waits for all of them. The context passed to
// tasks is cancelled as soon as one task fails.
func (g *Group) Run(ctx context.Context, n int, task Task) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := 0; i < n; i++ {
		if egCtx.Err() != nil {
			break
		}
		idx := i
		eg.Go(func() error {
			return safeCall(egCtx, task, idx)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
