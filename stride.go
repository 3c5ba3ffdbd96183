// File: stride.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-stride front ends: the memory-address domain rendered as a mutable
// byte slice plus an explicit element stride. The caller guarantees the
// slice stays valid and exclusively owned for the duration of the call;
// partitions never alias because sub-ranges are disjoint by construction.
// A negative stride visits elements from the end of the buffer backwards.

package parfor

import "github.com/momentics/parfor/internal/concurrency"

// ElemAction visits one stride-sized element view of the buffer.
type ElemAction func(elem []byte)

// ElemPredicate visits one element; returning true stops the loop.
type ElemPredicate func(elem []byte) bool

// DataElemAction is ElemAction with the shared data parameter.
type DataElemAction func(elem []byte, data any)

// DataElemPredicate is ElemPredicate with the shared data parameter.
type DataElemPredicate func(elem []byte, data any) bool

// ForStride runs fn once per stride-sized element of buf. Trailing bytes
// that do not fill a whole element are not visited. stride == 0 mirrors the
// numeric step == 0 contract: fn runs exactly once when buf is empty and
// never otherwise. A nil fn is a silent no-op.
func ForStride(buf []byte, stride int, cutoff, maxWorkers int, fn ElemAction) {
	if fn == nil {
		return
	}
	ForStrideUntil(buf, stride, cutoff, maxWorkers, func(elem []byte) bool {
		fn(elem)
		return false
	})
}

// ForStrideData is ForStride with a caller-supplied parameter threaded to
// every invocation.
func ForStrideData(buf []byte, stride int, cutoff, maxWorkers int, data any, fn DataElemAction) {
	if fn == nil {
		return
	}
	ForStrideDataUntil(buf, stride, cutoff, maxWorkers, data, func(elem []byte, d any) bool {
		fn(elem, d)
		return false
	})
}

// ForStrideUntil runs fn per element until it returns true.
func ForStrideUntil(buf []byte, stride int, cutoff, maxWorkers int, fn ElemPredicate) Outcome {
	if fn == nil {
		return Completed
	}
	return ForStrideDataUntil(buf, stride, cutoff, maxWorkers, nil, func(elem []byte, _ any) bool {
		return fn(elem)
	})
}

// ForStrideDataUntil runs fn per element with the shared data parameter
// until it returns true. All other stride front ends delegate here.
func ForStrideDataUntil(buf []byte, stride int, cutoff, maxWorkers int, data any, fn DataElemPredicate) Outcome {
	if fn == nil {
		return Completed
	}
	if stride == 0 {
		if len(buf) != 0 {
			return Completed
		}
		if fn(nil, data) {
			return StoppedEarly
		}
		return Completed
	}

	width := stride
	if width < 0 {
		width = -width
	}
	n := int64(len(buf) / width)
	start, stop, step := int64(0), n, int64(1)
	if stride < 0 {
		start, stop, step = n-1, -1, -1
	}
	return concurrency.RunFor(concurrency.Default(), start, stop, step, cutoff, maxWorkers, data,
		func(idx int64, d any) bool {
			off := int(idx) * width
			return fn(buf[off:off+width:off+width], d)
		})
}
