// File: api/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor contract for fire-and-forget task dispatch. The parallel range
// engine borrows an ambient executor through this interface; it never owns
// or shuts down the pool it dispatches to.

package api

// Executor abstracts an ambient pool of worker goroutines.
type Executor interface {
	// Submit schedules task for execution on some worker. The call never
	// blocks; ErrExecutorClosed is returned if the pool is shut down.
	Submit(task func()) error

	// NumWorkers returns the current number of active worker routines.
	NumWorkers() int
}
