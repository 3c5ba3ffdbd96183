// File: internal/concurrency/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lazily constructed process-wide default executor. The engine borrows this
// pool unless a caller supplies its own; it is never closed.

package concurrency

import "sync"

var (
	defaultMu   sync.Mutex
	defaultPool *Executor

	defaultWorkers int // 0 means ThreadCeiling()
	defaultPin     bool
)

// Default returns the ambient executor, constructing it on first use.
func Default() *Executor {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPool == nil {
		defaultPool = NewExecutor(defaultWorkers, defaultPin)
	}
	return defaultPool
}

// Configure sets the default pool parameters. It has no effect once the pool
// has been constructed; the boolean reports whether the values were applied.
// Worker counts above the global ceiling are clamped down.
func Configure(workers int, pin bool) bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultPool != nil {
		return false
	}
	if workers > ThreadCeiling() {
		workers = ThreadCeiling()
	}
	defaultWorkers = workers
	defaultPin = pin
	return true
}
