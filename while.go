// File: while.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Open-ended while loops over the ambient pool. Each worker consumes an
// unbounded stream of continue tokens: it evaluates the condition and, when
// it holds, runs one body iteration; a condition that fails requests a stop
// for everyone. Termination comes only from the condition or the body
// stopping the loop, never from the engine.

package parfor

import "github.com/momentics/parfor/internal/concurrency"

// While runs cond/body iterations concurrently on up to maxWorkers workers
// (maxWorkers <= 0 means the global ceiling) until cond returns false on any
// worker. A nil cond is a silent no-op; a nil body degrades to evaluating
// cond alone.
func While(cond func() bool, body func(), maxWorkers int) {
	if cond == nil {
		return
	}
	concurrency.RunWhile(concurrency.Default(), maxWorkers, nil, func(_ any) bool {
		if !cond() {
			return false
		}
		if body != nil {
			body()
		}
		return true
	})
}

// WhileData is While with a caller-supplied parameter threaded to the
// condition and the body.
func WhileData(data any, cond func(data any) bool, body func(data any), maxWorkers int) {
	if cond == nil {
		return
	}
	concurrency.RunWhile(concurrency.Default(), maxWorkers, data, func(d any) bool {
		if !cond(d) {
			return false
		}
		if body != nil {
			body(d)
		}
		return true
	})
}
