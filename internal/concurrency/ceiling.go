// File: internal/concurrency/ceiling.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide worker ceiling, fixed once at startup. Callers may lower the
// effective concurrency per call via maxWorkers, never raise it.

package concurrency

import (
	"runtime"
	"sync"
)

var (
	ceilingOnce   sync.Once
	threadCeiling int
)

// ThreadCeiling returns the process-wide maximum worker count: twice the
// logical core count, or 1 on a single-core machine. Computed once, immutable.
func ThreadCeiling() int {
	ceilingOnce.Do(func() {
		n := runtime.NumCPU()
		if n <= 1 {
			threadCeiling = 1
		} else {
			threadCeiling = 2 * n
		}
	})
	return threadCeiling
}
