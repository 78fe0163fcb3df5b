package parallel

import "context"

// Inline runs every task sequentially on the calling goroutine. It satisfies
// the Executor barrier trivially and is useful as a single-threaded baseline.
type Inline struct{}

var _ Executor = Inline{}

// Workers always reports 1.
func (Inline) Workers() int { return 1 }

// Name returns "inline".
func (Inline) Name() string { return "inline" }

// Run executes tasks 0..n-1 in order, stopping at the first error.
func (Inline) Run(ctx context.Context, n int, task Task) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := safeCall(ctx, task, i); err != nil {
			return err
		}
	}
	return nil
}
