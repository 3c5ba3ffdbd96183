// File: internal/concurrency/task_ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC ring with per-cell sequence numbers. Submitters from any
// goroutine race on tail, workers race on head; a full ring reports false
// and the caller falls back to the overflow queue.

package concurrency

import "sync/atomic"

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// taskRing is a lock-free bounded MPMC queue.
type taskRing[T any] struct {
	head  uint64
	_     [64]byte
	tail  uint64
	_     [64]byte
	mask  uint64
	cells []cell[T]
}

// newTaskRing allocates a ring rounded up to a power-of-two capacity.
func newTaskRing[T any](size uint64) *taskRing[T] {
	if size < 2 {
		size = 2
	}
	if size&(size-1) != 0 {
		n := size - 1
		n |= n >> 1
		n |= n >> 2
		n |= n >> 4
		n |= n >> 8
		n |= n >> 16
		n |= n >> 32
		size = n + 1
	}
	r := &taskRing[T]{
		mask:  size - 1,
		cells: make([]cell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds item; returns false if full.
func (r *taskRing[T]) Enqueue(item T) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.data = item
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false
		}
		// tail moved under us, retry
	}
}

// Dequeue removes and returns an item; ok false if empty.
func (r *taskRing[T]) Dequeue() (T, bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				item := c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
		case dif < 0:
			var zero T
			return zero, false
		}
	}
}

// Len returns the number of items currently buffered.
func (r *taskRing[T]) Len() int {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	return int(tail - head)
}
