package summation

import (
	"context"
	"time"

	apperrors "github.com/agbru/arraysum/internal/errors"
)

// DefaultChunks is the chunk count used by Parallel when none is configured.
const DefaultChunks = 10

// Result is the output of one summation.
type Result struct {
	// Strategy is the name of the summer that produced the result.
	Strategy string
	// Sum holds first[i] + second[i] for every index.
	Sum []float64
	// Duration is the measured wall-clock time. It is never negative.
	Duration time.Duration
}

// Summer computes the element-wise sum of two equal-length sequences.
type Summer interface {
	// Name identifies the strategy ("sequential", "parallel").
	Name() string
	// Sum returns a freshly allocated sequence; the inputs are not modified.
	Sum(ctx context.Context, first, second []float64) (Result, error)
}

// Option configures a summer.
type Option func(*options)

type options struct {
	kernel Kernel
	chunks int
}

func defaultOptions() options {
	return options{kernel: ScalarAdd, chunks: DefaultChunks}
}

// WithKernel selects the addition kernel.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		if k != nil {
			o.kernel = k
		}
	}
}

// WithChunks sets the number of static chunks used by Parallel. Sequential
// ignores it. Values below 1 keep the default.
func WithChunks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunks = n
		}
	}
}

func checkLengths(strategy string, first, second []float64) error {
	if len(first) != len(second) {
		return apperrors.LengthMismatchError{Strategy: strategy, First: len(first), Second: len(second)}
	}
	return nil
}
