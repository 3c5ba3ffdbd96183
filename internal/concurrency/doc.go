// Package concurrency
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core of the parfor library: the range-partitioning engine and the ambient
// worker pool it dispatches to. A range operation is planned (empty,
// sequential, or parallel), split into stride-aligned chunks, and the
// dispatched chunks are submitted fire-and-forget to the pool while the
// calling goroutine runs the inline chunk and then blocks on a completion
// latch. Cancellation is cooperative: workers poll a shared stop flag before
// every element and never block mid-chunk.
// See range.go, partition.go, dispatch.go for the engine and executor.go,
// task_ring.go for the pool.
package concurrency
