// File: internal/concurrency/dispatch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RunFor is the single engine implementation behind every typed front end.
// Parallel invocations dispatch workerCount-1 chunks fire-and-forget to the
// ambient executor, run the last chunk inline on the calling goroutine, and
// block on the completion latch. The call always joins its dispatched chunks
// before returning, including after an early stop discovered by a dispatched
// worker, so no callback can still be running once control returns.

package concurrency

import "github.com/momentics/parfor/api"

// RunFor executes fn once per element of the half-open range
// [start, stop) with the given signed step. fn returning true requests an
// early stop. A nil fn is a silent no-op.
func RunFor[T Index](exec api.Executor, start, stop, step T, cutoff, maxWorkers int, data any, fn StepFunc[T]) api.Outcome {
	if fn == nil {
		return api.Completed
	}
	p := planRange(start, stop, step, cutoff, maxWorkers)
	switch p.mode {
	case runEmpty:
		return api.Completed
	case runOnce:
		if fn(start, data) {
			return api.StoppedEarly
		}
		return api.Completed
	case runSequential:
		return runSequentialRange(start, stop, step, data, fn)
	default:
		return runParallelRange(exec, p, data, fn)
	}
}

// runSequentialRange visits the range on the calling goroutine, strictly in
// stride order.
func runSequentialRange[T Index](start, stop, step T, data any, fn StepFunc[T]) api.Outcome {
	if step > 0 {
		for idx := start; idx < stop; idx += step {
			if fn(idx, data) {
				return api.StoppedEarly
			}
		}
	} else {
		for idx := start; idx > stop; idx += step {
			if fn(idx, data) {
				return api.StoppedEarly
			}
		}
	}
	return api.Completed
}

func runParallelRange[T Index](exec api.Executor, p plan[T], data any, fn StepFunc[T]) api.Outcome {
	dispatched := p.workers - 1
	latch := newCompletionLatch(dispatched)
	flag := new(stopFlag)
	panics := new(panicBox)

	for j := 0; j < dispatched; j++ {
		lo := int64(j) * p.chunkSteps
		chunk := makePartition(p, lo, lo+p.chunkSteps, data, fn, flag, latch, panics)
		if exec.Submit(chunk.run) != nil {
			// pool unavailable, absorb the chunk on the calling goroutine
			chunk.run()
		}
	}

	inline := makePartition(p, int64(dispatched)*p.chunkSteps, p.totalSteps, data, fn, flag, latch, panics)
	inline.execute()
	latch.wait()

	if r := panics.value(); r != nil {
		panic(r)
	}
	if flag.handled.Load() {
		return api.StoppedEarly
	}
	return api.Completed
}
