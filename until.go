// File: until.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Interruptible front ends: the callback returns true to request an early
// stop. Workers poll the stop flag before each element, so a stop becomes
// visible within one polling interval; the call still joins every dispatched
// chunk before returning.

package parfor

import "github.com/momentics/parfor/internal/concurrency"

// Predicate32 visits one 32-bit index; returning true stops the loop.
type Predicate32 func(idx int32) bool

// Predicate64 visits one 64-bit index; returning true stops the loop.
type Predicate64 func(idx int64) bool

// DataPredicate32 is Predicate32 with the shared data parameter.
type DataPredicate32 func(idx int32, data any) bool

// DataPredicate64 is Predicate64 with the shared data parameter.
type DataPredicate64 func(idx int64, data any) bool

// For32Until runs fn per index until it returns true. The result is
// StoppedEarly the moment any invocation requests a stop, never a silent
// Completed. A nil fn is a no-op that reports Completed.
func For32Until(start, stop, step int32, cutoff, maxWorkers int, fn Predicate32) Outcome {
	if fn == nil {
		return Completed
	}
	return concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, nil,
		func(idx int32, _ any) bool { return fn(idx) })
}

// For64Until is For32Until over the 64-bit index domain.
func For64Until(start, stop, step int64, cutoff, maxWorkers int, fn Predicate64) Outcome {
	if fn == nil {
		return Completed
	}
	return concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, nil,
		func(idx int64, _ any) bool { return fn(idx) })
}

// For32DataUntil is For32Until with a caller-supplied parameter threaded to
// every invocation.
func For32DataUntil(start, stop, step int32, cutoff, maxWorkers int, data any, fn DataPredicate32) Outcome {
	if fn == nil {
		return Completed
	}
	return concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, data,
		concurrency.StepFunc[int32](fn))
}

// For64DataUntil is For64Until with a caller-supplied parameter threaded to
// every invocation.
func For64DataUntil(start, stop, step int64, cutoff, maxWorkers int, data any, fn DataPredicate64) Outcome {
	if fn == nil {
		return Completed
	}
	return concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, data,
		concurrency.StepFunc[int64](fn))
}
