// File: internal/concurrency/cancel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cooperative cancellation state for one engine invocation. Two flags:
// "requested" is polled by every chunk before each element, "handled" keeps
// a second chunk from finalizing an already finalized stop. Padded so a stop
// request becomes visible without false sharing against the handled flag.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

type stopFlag struct {
	requested atomic.Bool
	_         cpu.CacheLinePad
	handled   atomic.Bool
	_         cpu.CacheLinePad
}

// requestStop marks the invocation stopped; reports true if this caller is
// the one that gets to finalize it.
func (f *stopFlag) requestStop() bool {
	f.requested.Store(true)
	return f.handled.CompareAndSwap(false, true)
}

// stopped reports whether any chunk requested a stop.
func (f *stopFlag) stopped() bool {
	return f.requested.Load()
}

// panicBox holds the first panic raised by any chunk; later panics lose.
type panicBox struct {
	first atomic.Pointer[any]
}

func (b *panicBox) capture(r any) {
	v := r
	b.first.CompareAndSwap(nil, &v)
}

func (b *panicBox) value() any {
	if p := b.first.Load(); p != nil {
		return *p
	}
	return nil
}
