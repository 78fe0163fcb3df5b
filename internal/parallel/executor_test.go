package parallel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executors() []Executor {
	return []Executor{NewPool(4), NewGroup(4), Inline{}}
}

// TestExecutor_RunsEveryTaskOnce verifies that each index is executed exactly
// once and that Run does not return before all tasks are done.
func TestExecutor_RunsEveryTaskOnce(t *testing.T) {
	t.Parallel()
	for _, exec := range executors() {
		t.Run(exec.Name(), func(t *testing.T) {
			t.Parallel()
			const n = 100
			var counts [n]atomic.Int32
			err := exec.Run(context.Background(), n, func(_ context.Context, i int) error {
				time.Sleep(time.Microsecond)
				counts[i].Add(1)
				return nil
			})
			require.NoError(t, err)
			for i := range counts {
				assert.Equal(t, int32(1), counts[i].Load(), "task %d", i)
			}
		})
	}
}

// TestExecutor_Barrier verifies that slow tasks are waited for.
func TestExecutor_Barrier(t *testing.T) {
	t.Parallel()
	for _, exec := range executors() {
		t.Run(exec.Name(), func(t *testing.T) {
			t.Parallel()
			var done atomic.Int32
			err := exec.Run(context.Background(), 10, func(_ context.Context, i int) error {
				if i%3 == 0 {
					time.Sleep(5 * time.Millisecond)
				}
				done.Add(1)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, int32(10), done.Load())
		})
	}
}

func TestExecutor_ReturnsTaskError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	for _, exec := range executors() {
		t.Run(exec.Name(), func(t *testing.T) {
			t.Parallel()
			err := exec.Run(context.Background(), 20, func(_ context.Context, i int) error {
				if i == 5 {
					return boom
				}
				return nil
			})
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestExecutor_RecoversPanics(t *testing.T) {
	t.Parallel()
	for _, exec := range executors() {
		t.Run(exec.Name(), func(t *testing.T) {
			t.Parallel()
			err := exec.Run(context.Background(), 4, func(_ context.Context, i int) error {
				if i == 2 {
					panic("index out of range")
				}
				return nil
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "task 2 panicked")
		})
	}
}

func TestExecutor_CancelledContext(t *testing.T) {
	t.Parallel()
	for _, exec := range executors() {
		t.Run(exec.Name(), func(t *testing.T) {
			t.Parallel()
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			var ran atomic.Int32
			err := exec.Run(ctx, 1000, func(_ context.Context, _ int) error {
				ran.Add(1)
				return nil
			})
			assert.ErrorIs(t, err, context.Canceled)
			assert.Less(t, ran.Load(), int32(1000))
		})
	}
}

func TestExecutor_ZeroTasks(t *testing.T) {
	t.Parallel()
	for _, exec := range executors() {
		err := exec.Run(context.Background(), 0, func(context.Context, int) error {
			t.Error("task should not run")
			return nil
		})
		assert.NoError(t, err, exec.Name())
	}
}

// TestPool_BoundedConcurrency verifies that no more than Workers tasks run at once.
func TestPool_BoundedConcurrency(t *testing.T) {
	t.Parallel()
	for _, exec := range []Executor{NewPool(3), NewGroup(3)} {
		t.Run(exec.Name(), func(t *testing.T) {
			t.Parallel()
			var (
				mu      sync.Mutex
				current int
				peak    int
			)
			err := exec.Run(context.Background(), 30, func(_ context.Context, _ int) error {
				mu.Lock()
				current++
				peak = max(peak, current)
				mu.Unlock()
				time.Sleep(time.Millisecond)
				mu.Lock()
				current--
				mu.Unlock()
				return nil
			})
			require.NoError(t, err)
			assert.LessOrEqual(t, peak, 3)
		})
	}
}

func TestNewExecutors_ClampWorkers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, NewPool(0).Workers())
	assert.Equal(t, 1, NewGroup(-3).Workers())
	assert.Equal(t, 8, NewPool(8).Workers())
	assert.Equal(t, 1, Inline{}.Workers())
}

func TestPartition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n, chunks int
		wantLens  []int
	}{
		{100, 10, []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}},
		{10, 10, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{7, 3, []int{2, 2, 3}},
		{3, 10, []int{1, 1, 1}},
		{0, 10, nil},
		{10, 0, nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.chunks), func(t *testing.T) {
			t.Parallel()
			ranges := Partition(tt.n, tt.chunks)
			require.Len(t, ranges, len(tt.wantLens))
			next := 0
			for i, r := range ranges {
				assert.Equal(t, next, r.Start, "range %d must start where the previous ended", i)
				assert.Equal(t, tt.wantLens[i], r.Len(), "range %d", i)
				next = r.End
			}
			if len(ranges) > 0 {
				assert.Equal(t, tt.n, next, "ranges must cover [0, n)")
			}
		})
	}
}
