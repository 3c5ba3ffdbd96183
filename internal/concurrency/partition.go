// File: internal/concurrency/partition.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// partition is the unit handed to one worker: a contiguous, stride-aligned
// sub-range plus the callback, stop flag, latch, and panic box of its
// invocation. Created fresh per call, owned by one worker, never reused.
// Partitioning happens in step-index space, so ascending and descending
// strides share the same math: chunk j covers step indices
// [j*chunkSteps, (j+1)*chunkSteps) and the inline chunk absorbs the
// remainder, guaranteeing it is at least as large as any dispatched chunk.

package concurrency

type partition[T Index] struct {
	first  T
	step   T
	steps  int64
	data   any
	fn     StepFunc[T]
	flag   *stopFlag
	latch  *completionLatch
	panics *panicBox
}

// makePartition builds the chunk covering step indices [lo, hi) of p.
func makePartition[T Index](p plan[T], lo, hi int64, data any, fn StepFunc[T], flag *stopFlag, latch *completionLatch, panics *panicBox) *partition[T] {
	return &partition[T]{
		first:  T(int64(p.start) + lo*int64(p.step)),
		step:   p.step,
		steps:  hi - lo,
		data:   data,
		fn:     fn,
		flag:   flag,
		latch:  latch,
		panics: panics,
	}
}

// run executes the chunk and always counts down the latch, even on panic.
func (c *partition[T]) run() {
	defer c.latch.done()
	c.execute()
}

// execute visits the sub-range in stride order, polling the stop flag before
// each element. A panicking callback is captured once and converted into a
// cooperative stop so sibling chunks wind down.
func (c *partition[T]) execute() {
	defer func() {
		if r := recover(); r != nil {
			c.panics.capture(r)
			c.flag.requested.Store(true)
		}
	}()
	idx := c.first
	for n := int64(0); n < c.steps; n++ {
		if c.flag.stopped() {
			return
		}
		if c.fn(idx, c.data) {
			c.flag.requestStop()
			return
		}
		idx = T(int64(idx) + int64(c.step))
	}
}
