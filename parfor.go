// File: parfor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Plain-action front ends over the 32-bit and 64-bit index domains. Every
// variant delegates to the one engine implementation in
// internal/concurrency; the fan-out here is limited to callback adaptation.

// Package parfor executes a callback once per element of a numeric or
// byte-stride range, sequentially when the range is small and split across a
// bounded pool of workers when it is large enough to amortize dispatch.
//
// All For* calls block until every chunk has finished. Ordering is
// guaranteed only within one chunk (strictly in stride order); no index may
// assume any other index outside its own chunk ran before or after it. The
// optional data parameter is handed to every invocation without
// synchronization; concurrent safety of its use is the caller's obligation.
//
// A callback that panics stops the invocation cooperatively: the first
// panic is captured, remaining chunks wind down, and the panic is re-raised
// on the calling goroutine after all chunks have been joined.
package parfor

import (
	"github.com/momentics/parfor/api"
	"github.com/momentics/parfor/internal/concurrency"
)

// Outcome reports how an interruptible call ended.
type Outcome = api.Outcome

const (
	// Completed means every index of the range was visited.
	Completed = api.Completed

	// StoppedEarly means some callback requested a stop; coverage may be
	// partial.
	StoppedEarly = api.StoppedEarly
)

// Action32 visits one 32-bit index.
type Action32 func(idx int32)

// Action64 visits one 64-bit index.
type Action64 func(idx int64)

// DataAction32 visits one 32-bit index with the shared data parameter.
type DataAction32 func(idx int32, data any)

// DataAction64 visits one 64-bit index with the shared data parameter.
type DataAction64 func(idx int64, data any)

// Ceiling returns the process-wide worker ceiling, fixed at startup. Per-call
// maxWorkers values can only lower it.
func Ceiling() int {
	return concurrency.ThreadCeiling()
}

// For32 runs fn once per index of [start, stop) with the given signed step.
// cutoff is the minimum step count worth parallelizing (floor of 2);
// maxWorkers <= 0 means no cap below the global ceiling. A nil fn is a
// silent no-op, as is step == 0 with start != stop; step == 0 with
// start == stop invokes fn exactly once.
func For32(start, stop, step int32, cutoff, maxWorkers int, fn Action32) {
	if fn == nil {
		return
	}
	concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, nil,
		func(idx int32, _ any) bool { fn(idx); return false })
}

// For64 is For32 over the 64-bit index domain.
func For64(start, stop, step int64, cutoff, maxWorkers int, fn Action64) {
	if fn == nil {
		return
	}
	concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, nil,
		func(idx int64, _ any) bool { fn(idx); return false })
}

// For32Data is For32 with a caller-supplied parameter threaded to every
// invocation, for callers that want to avoid capturing state in a closure.
func For32Data(start, stop, step int32, cutoff, maxWorkers int, data any, fn DataAction32) {
	if fn == nil {
		return
	}
	concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, data,
		func(idx int32, d any) bool { fn(idx, d); return false })
}

// For64Data is For64 with a caller-supplied parameter threaded to every
// invocation.
func For64Data(start, stop, step int64, cutoff, maxWorkers int, data any, fn DataAction64) {
	if fn == nil {
		return
	}
	concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, data,
		func(idx int64, d any) bool { fn(idx, d); return false })
}
