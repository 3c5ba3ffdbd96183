// File: internal/concurrency/whileloop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Open-ended while loops as parallel consumption of an unbounded token
// stream. Every worker pulls tokens forever; termination comes only from the
// body requesting a stop, never from the partitioner running dry. Workers
// are joined through the same latch as the bounded path.

package concurrency

import "github.com/momentics/parfor/api"

// BodyFunc evaluates the loop condition and, when it holds, runs one body
// iteration. Returning false requests that the whole loop stop.
type BodyFunc func(data any) bool

// RunWhile runs fn concurrently on up to maxWorkers workers until any
// invocation returns false. A nil fn is a silent no-op.
func RunWhile(exec api.Executor, maxWorkers int, data any, fn BodyFunc) {
	if fn == nil {
		return
	}
	workers := ThreadCeiling()
	if maxWorkers > 0 && maxWorkers < workers {
		workers = maxWorkers
	}
	if workers <= 1 {
		for fn(data) {
		}
		return
	}

	flag := new(stopFlag)
	panics := new(panicBox)
	latch := newCompletionLatch(workers - 1)
	for j := 0; j < workers-1; j++ {
		task := func() {
			defer latch.done()
			consumeTokens(flag, panics, data, fn)
		}
		if exec.Submit(task) != nil {
			task()
		}
	}
	consumeTokens(flag, panics, data, fn)
	latch.wait()

	if r := panics.value(); r != nil {
		panic(r)
	}
}

// consumeTokens is one worker's endless token loop.
func consumeTokens(flag *stopFlag, panics *panicBox, data any, fn BodyFunc) {
	defer func() {
		if r := recover(); r != nil {
			panics.capture(r)
			flag.requested.Store(true)
		}
	}()
	for !flag.stopped() {
		if !fn(data) {
			flag.requestStop()
			return
		}
	}
}
