package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytePool_AcquireRelease(t *testing.T) {
	bp := NewBytePool(128)

	buf := bp.Acquire(64)
	require.Len(t, buf, 64)
	assert.GreaterOrEqual(t, cap(buf), 128)
	bp.Release(buf)

	big := bp.Acquire(4096)
	require.Len(t, big, 4096)
	bp.Release(big)
}

func TestBytePool_DefaultSize(t *testing.T) {
	bp := NewBytePool(0)
	buf := bp.Acquire(16)
	require.Len(t, buf, 16)
	bp.Release(buf)
}

func TestSyncPool_RoundTrip(t *testing.T) {
	created := 0
	sp := NewSyncPool(func() *[]int {
		created++
		s := make([]int, 0, 8)
		return &s
	})

	v := sp.Get()
	require.NotNil(t, v)
	sp.Put(v)
	sp.Get()
	assert.Positive(t, created)
}
