//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

package parallel

import (
	"context"
	"fmt"
)

// Task is one unit of work. index identifies the task within its batch.
type Task func(ctx context.Context, index int) error

// Executor runs tasks 0..n-1 and blocks until all of them have completed.
// The first non-nil task error is returned. Implementations must not return
// while any task is still running.
type Executor interface {
	// Run executes n tasks and waits for all of them.
	Run(ctx context.Context, n int, task Task) error
	// Workers reports how many tasks may run at the same time.
	Workers() int
	// Name identifies the implementation in reports and logs.
	Name() string
}

// safeCall runs task and converts a panic into an error so that a faulty
// task cannot take down the worker without releasing the barrier.
func safeCall(ctx context.Context, task Task, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %d panicked: %v", index, r)
		}
	}()
	return task(ctx, index)
}
