// Package summation implements element-wise addition of two sequences under
// two execution strategies and times each of them.
//
// Sequential visits indices 0..n-1 on the calling goroutine. Parallel splits
// the index range into a fixed number of contiguous chunks and hands them to
// a parallel.Executor; every chunk writes only its own sub-slice of the
// result, so no locking is involved. Both strategies allocate the result
// before the clock starts, so only the addition (and, for Parallel, dispatch
// and the completion barrier) is measured.
package summation
