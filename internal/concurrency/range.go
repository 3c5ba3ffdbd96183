// File: internal/concurrency/range.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range planning: a half-open range with signed stride is normalized into a
// direction-agnostic count of steps, then classified as empty, run-once,
// sequential, or parallel with a bounded worker count.

package concurrency

// Index is the set of integer domains the engine iterates over. The byte
// address domain is expressed as int64 element indices by the front ends.
type Index interface {
	~int32 | ~int64
}

// StepFunc visits one element. Returning true requests an early stop; plain
// action front ends adapt callbacks that never do.
type StepFunc[T Index] func(idx T, data any) bool

type runMode int

const (
	runEmpty runMode = iota
	runOnce // step == 0 with start == stop
	runSequential
	runParallel
)

// plan is the classified form of one range invocation.
type plan[T Index] struct {
	mode       runMode
	workers    int   // parallel only
	totalSteps int64 // elements visited, remainder included
	chunkSteps int64 // elements per dispatched chunk
	start      T
	stop       T
	step       T
}

// planRange normalizes (start, stop, step) and decides how to run it.
// cutoff has a floor of 2; maxWorkers <= 0 means the global ceiling.
// step == 0 is special-cased before any partitioning math: the callback runs
// once when start == stop and never otherwise.
func planRange[T Index](start, stop, step T, cutoff, maxWorkers int) plan[T] {
	p := plan[T]{start: start, stop: stop, step: step}
	if step == 0 {
		if start == stop {
			p.mode = runOnce
		} else {
			p.mode = runEmpty
		}
		return p
	}

	count := int64(stop) - int64(start)
	width := int64(step)
	if width < 0 {
		count = -count
		width = -width
	}
	if count <= 0 {
		p.mode = runEmpty
		return p
	}
	stepsCount := count / width
	if stepsCount <= 0 {
		p.mode = runEmpty
		return p
	}

	if cutoff < 2 {
		cutoff = 2
	}
	ceiling := ThreadCeiling()
	if maxWorkers <= 0 || maxWorkers > ceiling {
		maxWorkers = ceiling
	}
	available := maxWorkers
	if int64(available) > stepsCount {
		available = int(stepsCount)
	}
	if available <= 1 || stepsCount < int64(cutoff) {
		p.mode = runSequential
		return p
	}

	p.mode = runParallel
	p.workers = available
	p.totalSteps = (count + width - 1) / width
	// chunk size rounded down to a whole multiple of the stride, expressed
	// in step units; the remainder stays with the inline chunk
	p.chunkSteps = (count / int64(available)) / width
	return p
}
