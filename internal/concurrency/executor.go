// File: internal/concurrency/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor is the ambient worker pool the range engine dispatches chunks to.
// Submission is fire-and-forget: a bounded lock-free ring absorbs the common
// case, an unbounded mutex-guarded overflow queue absorbs bursts, and idle
// workers park on a notify channel instead of spinning.

package concurrency

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/parfor/affinity"
	"github.com/momentics/parfor/api"
)

// TaskFunc is a unit of work to execute.
type TaskFunc func()

var _ api.Executor = (*Executor)(nil)

// Executor manages a pool of worker goroutines.
type Executor struct {
	ring     *taskRing[TaskFunc]
	overflow overflowQueue
	notify   chan struct{}
	closeCh  chan struct{}
	closed   atomic.Bool
	pin      bool
	workers  int
	wg       sync.WaitGroup
}

// NewExecutor creates a pool with numWorkers goroutines. If numWorkers <= 0,
// the global thread ceiling is used. When pin is true, each worker locks its
// OS thread and requests CPU affinity.
func NewExecutor(numWorkers int, pin bool) *Executor {
	if numWorkers <= 0 {
		numWorkers = ThreadCeiling()
	}
	e := &Executor{
		ring:    newTaskRing[TaskFunc](uint64(numWorkers * 64)),
		notify:  make(chan struct{}, numWorkers),
		closeCh: make(chan struct{}),
		pin:     pin,
		workers: numWorkers,
	}
	e.overflow.q = queue.New()
	for i := 0; i < numWorkers; i++ {
		e.wg.Add(1)
		go e.run(i)
	}
	return e
}

// Submit enqueues a task. Returns ErrExecutorClosed if the pool is shut down.
func (e *Executor) Submit(task func()) error {
	if e.closed.Load() {
		return api.ErrExecutorClosed
	}
	if !e.ring.Enqueue(task) {
		e.overflow.push(task)
	}
	select {
	case e.notify <- struct{}{}:
	default:
	}
	return nil
}

// NumWorkers returns the number of worker goroutines.
func (e *Executor) NumWorkers() int {
	return e.workers
}

// Close shuts down the pool and waits for workers to exit. Queued tasks that
// have not started are dropped.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.closeCh)
		e.wg.Wait()
	}
}

// run is the main loop for one worker.
func (e *Executor) run(id int) {
	defer e.wg.Done()
	if e.pin {
		affinity.Pin(id)
		defer affinity.Unpin()
	}
	for {
		if task, ok := e.ring.Dequeue(); ok {
			e.safeExecute(task)
			continue
		}
		if task, ok := e.overflow.pop(); ok {
			e.safeExecute(task)
			continue
		}
		select {
		case <-e.notify:
		case <-e.closeCh:
			return
		}
	}
}

// safeExecute runs the task, keeping the worker alive across panics. Chunk
// tasks built by the engine recover on their own; this is the backstop for
// foreign tasks submitted directly.
func (e *Executor) safeExecute(task TaskFunc) {
	defer func() { recover() }()
	task()
}

// overflowQueue is the unbounded FIFO behind the ring.
type overflowQueue struct {
	mu sync.Mutex
	q  *queue.Queue
}

func (o *overflowQueue) push(t TaskFunc) {
	o.mu.Lock()
	o.q.Add(t)
	o.mu.Unlock()
}

func (o *overflowQueue) pop() (TaskFunc, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.q.Length() == 0 {
		return nil, false
	}
	return o.q.Remove().(TaskFunc), true
}
