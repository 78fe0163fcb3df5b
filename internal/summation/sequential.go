package summation

import (
	"context"
	"time"
)

// Sequential adds the sequences on the calling goroutine.
type Sequential struct {
	opts options
}

var _ Summer = (*Sequential)(nil)

// NewSequential returns a sequential summer.
func NewSequential(opts ...Option) *Sequential {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sequential{opts: o}
}

// Name returns "sequential".
func (s *Sequential) Name() string { return "sequential" }

// Sum adds first and second index by index. ctx is only checked before the
// loop starts; the loop itself is not interruptible.
func (s *Sequential) Sum(ctx context.Context, first, second []float64) (Result, error) {
	if err := checkLengths(s.Name(), first, second); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sum := make([]float64, len(first))
	start := time.Now()
	s.opts.kernel(sum, first, second)
	elapsed := time.Since(start)

	return Result{Strategy: s.Name(), Sum: sum, Duration: elapsed}, nil
}
