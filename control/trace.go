// File: control/trace.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Invocation tracer: subsystems that push bulk work through the engine
// (decoders, pixel buffers, batch math) record one tagged entry per
// invocation when tracing is on. Off by default; the fast path is a single
// atomic load.

package control

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// TraceRecord describes one traced engine invocation.
type TraceRecord struct {
	ID       uuid.UUID
	Op       string
	Elements int64
	Duration time.Duration
}

const traceCapacity = 256

var tracer struct {
	enabled atomic.Bool
	mu      sync.Mutex
	records []TraceRecord
}

// EnableTrace turns invocation tracing on.
func EnableTrace() { tracer.enabled.Store(true) }

// DisableTrace turns tracing off and discards collected records.
func DisableTrace() {
	tracer.enabled.Store(false)
	tracer.mu.Lock()
	tracer.records = nil
	tracer.mu.Unlock()
}

// TraceEnabled reports whether tracing is on.
func TraceEnabled() bool { return tracer.enabled.Load() }

// Trace records one invocation. The newest traceCapacity records are kept.
func Trace(op string, elements int64, d time.Duration) {
	if !tracer.enabled.Load() {
		return
	}
	rec := TraceRecord{ID: uuid.New(), Op: op, Elements: elements, Duration: d}
	tracer.mu.Lock()
	tracer.records = append(tracer.records, rec)
	if len(tracer.records) > traceCapacity {
		tracer.records = tracer.records[len(tracer.records)-traceCapacity:]
	}
	tracer.mu.Unlock()
}

// TraceLog returns a snapshot of collected records.
func TraceLog() []TraceRecord {
	tracer.mu.Lock()
	defer tracer.mu.Unlock()
	out := make([]TraceRecord, len(tracer.records))
	copy(out, tracer.records)
	return out
}
