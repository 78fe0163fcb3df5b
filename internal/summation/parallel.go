package summation

import (
	"context"
	"time"

	apperrors "github.com/agbru/arraysum/internal/errors"
	"github.com/agbru/arraysum/internal/parallel"
)

// Parallel splits the index range into static chunks and runs them on an
// executor. The inputs are shared read-only between chunks.
type Parallel struct {
	exec parallel.Executor
	opts options
}

var _ Summer = (*Parallel)(nil)

// NewParallel returns a parallel summer dispatching to exec.
func NewParallel(exec parallel.Executor, opts ...Option) *Parallel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parallel{exec: exec, opts: o}
}

// Name returns "parallel".
func (p *Parallel) Name() string { return "parallel" }

// Chunks reports the configured chunk count.
func (p *Parallel) Chunks() int { return p.opts.chunks }

// Sum adds first and second chunk by chunk. It returns only after every chunk
// has completed; the measured duration spans partitioning, dispatch and the
// barrier.
func (p *Parallel) Sum(ctx context.Context, first, second []float64) (Result, error) {
	if err := checkLengths(p.Name(), first, second); err != nil {
		return Result{}, err
	}

	sum := make([]float64, len(first))
	kernel := p.opts.kernel

	start := time.Now()
	ranges := parallel.Partition(len(sum), p.opts.chunks)
	err := p.exec.Run(ctx, len(ranges), func(_ context.Context, i int) error {
		r := ranges[i]
		kernel(sum[r.Start:r.End], first[r.Start:r.End], second[r.Start:r.End])
		return nil
	})
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, apperrors.SummationError{Strategy: p.Name(), Cause: err}
	}

	return Result{Strategy: p.Name(), Sum: sum, Duration: elapsed}, nil
}
