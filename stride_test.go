package parfor

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForStride_VisitsEveryElement(t *testing.T) {
	buf := make([]byte, 4000)
	ForStride(buf, 4, 2, 0, func(elem []byte) {
		require.Len(t, elem, 4)
		for i := range elem {
			elem[i]++
		}
	})
	for i, b := range buf {
		require.Equal(t, byte(1), b, "byte %d", i)
	}
}

func TestForStride_TrailingBytesIgnored(t *testing.T) {
	buf := make([]byte, 10) // three 3-byte elements, one trailing byte
	ForStride(buf, 3, 100, 0, func(elem []byte) {
		for i := range elem {
			elem[i] = 0xff
		}
	})
	assert.Equal(t, byte(0xff), buf[8])
	assert.Equal(t, byte(0), buf[9], "trailing byte must not be visited")
}

func TestForStride_NegativeStrideSequentialOrder(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	var got []byte
	ForStride(buf, -2, 100, 0, func(elem []byte) {
		got = append(got, elem[0])
	})
	assert.Equal(t, []byte{6, 4, 2, 0}, got)
}

func TestForStride_ZeroStride(t *testing.T) {
	calls := 0
	ForStride(nil, 0, 2, 0, func(elem []byte) {
		calls++
		assert.Nil(t, elem)
	})
	assert.Equal(t, 1, calls, "zero stride over empty buffer runs once")

	calls = 0
	ForStride(make([]byte, 8), 0, 2, 0, func([]byte) { calls++ })
	assert.Zero(t, calls, "zero stride over non-empty buffer never runs")
}

func TestForStride_NilCallback(t *testing.T) {
	ForStride(make([]byte, 64), 4, 2, 0, nil)
	ForStrideData(make([]byte, 64), 4, 2, 0, nil, nil)
}

func TestForStrideUntil_StoppedEarly(t *testing.T) {
	buf := make([]byte, 100_000)
	buf[4242] = 0x7f
	var visited atomic.Int64
	outcome := ForStrideUntil(buf, 1, 2, 0, func(elem []byte) bool {
		visited.Add(1)
		return elem[0] == 0x7f
	})
	assert.Equal(t, StoppedEarly, outcome)
	assert.Positive(t, visited.Load())
}

func TestForStrideDataUntil_Completed(t *testing.T) {
	buf := make([]byte, 1024)
	var sum atomic.Int64
	outcome := ForStrideDataUntil(buf, 16, 2, 0, &sum, func(elem []byte, data any) bool {
		data.(*atomic.Int64).Add(int64(len(elem)))
		return false
	})
	assert.Equal(t, Completed, outcome)
	assert.Equal(t, int64(1024), sum.Load())
}
