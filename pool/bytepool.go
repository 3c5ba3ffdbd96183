// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/momentics/parfor/api"
)

// BytePool reuses byte buffers of a caller-chosen minimum size. Buffers
// smaller than a request are dropped rather than grown in place.
type BytePool struct {
	pool sync.Pool
}

var _ api.BytePool = (*BytePool)(nil)

// NewBytePool creates a pool producing buffers of at least size bytes.
func NewBytePool(size int) *BytePool {
	if size <= 0 {
		size = 64
	}
	bp := &BytePool{}
	bp.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return bp
}

// Acquire returns a slice of at least n bytes, length n.
func (b *BytePool) Acquire(n int) []byte {
	buf := *b.pool.Get().(*[]byte)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	return buf[:n]
}

// Release returns a buffer to the pool.
func (b *BytePool) Release(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	b.pool.Put(&buf)
}
