package parallel

import (
	"context"
	"sync"
)

// Pool is a fixed team of worker goroutines. Each Run starts the team, hands
// out task indices in order over a channel and waits for every worker.
type Pool struct {
	workers int
}

var _ Executor = (*Pool)(nil)

// NewPool returns a pool with the given team size. Non-positive sizes are
// treated as 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers reports the team size.
func (p *Pool) Workers() int { return p.workers }

// Name returns "pool".
func (p *Pool) Name() string { return "pool" }

// Run executes tasks 0..n-1. Once a task fails or ctx is cancelled, no new
// tasks are handed out; tasks already running are waited for.
func (p *Pool) Run(ctx context.Context, n int, task Task) error {
	if n <= 0 {
		return ctx.Err()
	}

	team := min(p.workers, n)
	indices := make(chan int)
	stopped := make(chan struct{})
	var (
		wg       sync.WaitGroup
		ec       ErrorCollector
		stopOnce sync.Once
	)
	stop := func() { stopOnce.Do(func() { close(stopped) }) }

	wg.Add(team)
	for range team {
		go func() {
			defer wg.Done()
			for i := range indices {
				if err := safeCall(ctx, task, i); err != nil {
					ec.SetError(err)
					stop()
				}
			}
		}()
	}

dispatch:
	for i := 0; i < n; i++ {
		select {
		case indices <- i:
		case <-stopped:
			break dispatch
		case <-ctx.Done():
			ec.SetError(ctx.Err())
			break dispatch
		}
	}
	close(indices)
	wg.Wait()
	return ec.Err()
}
