// Package parallel provides the fork-join facility used by the parallel
// summer: an Executor runs a fixed number of independent tasks and returns
// only once every task has finished.
//
// Three implementations are available:
//
//   - Pool: a fixed team of worker goroutines pulling task indices from a
//     channel, the shape of a static parallel-for.
//   - Group: one goroutine per task, bounded by errgroup.SetLimit.
//   - Inline: runs tasks one after another on the calling goroutine.
package parallel
