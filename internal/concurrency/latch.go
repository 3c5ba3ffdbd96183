// File: internal/concurrency/latch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// completionLatch counts outstanding dispatched chunks. The worker that
// brings the count to zero closes the signal channel; the calling goroutine
// blocks on it after running its inline chunk. The counter and the channel
// live on separate cache lines so countdown traffic does not thrash waiters.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

type completionLatch struct {
	remaining atomic.Int64
	_         cpu.CacheLinePad
	signal    chan struct{}
}

// newCompletionLatch creates a latch for n dispatched chunks.
func newCompletionLatch(n int) *completionLatch {
	l := &completionLatch{signal: make(chan struct{})}
	l.remaining.Store(int64(n))
	if n <= 0 {
		close(l.signal)
	}
	return l
}

// done records one finished chunk; the last one releases waiters.
func (l *completionLatch) done() {
	if l.remaining.Add(-1) == 0 {
		close(l.signal)
	}
}

// wait blocks until every dispatched chunk has finished.
func (l *completionLatch) wait() {
	<-l.signal
}
