package parfor

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor64_SumClosedForm(t *testing.T) {
	const n = 10_000_000
	want := int64(n) * (n - 1) / 2
	for _, workers := range []int{1, 2, 0} {
		var sum atomic.Int64
		For64(0, n, 1, 1000, workers, func(idx int64) {
			sum.Add(idx)
		})
		require.Equal(t, want, sum.Load(), "maxWorkers=%d", workers)
	}
}

func TestFor32_VisitedSetMatchesSequential(t *testing.T) {
	seq := make(map[int32]bool)
	For32(3, 4000, 7, 2, 1, func(idx int32) {
		seq[idx] = true
	})

	var mu sync.Mutex
	par := make(map[int32]bool)
	For32(3, 4000, 7, 2, 0, func(idx int32) {
		mu.Lock()
		par[idx] = true
		mu.Unlock()
	})

	require.Equal(t, len(seq), len(par))
	for idx := range seq {
		assert.True(t, par[idx], "index %d missing from parallel set", idx)
	}
}

func TestFor32_ReverseSequentialOrder(t *testing.T) {
	var got []int32
	For32(10, 0, -2, 100, 0, func(idx int32) {
		got = append(got, idx)
	})
	assert.Equal(t, []int32{10, 8, 6, 4, 2}, got)
}

func TestFor32_StepZero(t *testing.T) {
	calls := 0
	For32(5, 5, 0, 2, 0, func(idx int32) {
		calls++
		assert.Equal(t, int32(5), idx)
	})
	assert.Equal(t, 1, calls, "step==0 with start==stop runs exactly once")

	calls = 0
	For32(5, 9, 0, 2, 0, func(int32) { calls++ })
	assert.Zero(t, calls, "step==0 with start!=stop never runs")
}

func TestFor32_NilCallback(t *testing.T) {
	For32(0, 1000, 1, 2, 0, nil)
	For32Data(0, 1000, 1, 2, 0, "data", nil)
}

func TestFor64Data_SharedParameter(t *testing.T) {
	results := make([]int64, 10_000)
	For64Data(0, int64(len(results)), 1, 100, 0, results, func(idx int64, data any) {
		data.([]int64)[idx] = idx * 3
	})
	for i, v := range results {
		require.Equal(t, int64(i)*3, v)
	}
}

func TestFor32Until_StoppedEarly(t *testing.T) {
	var visited atomic.Int64
	outcome := For32Until(0, 200_000, 1, 2, 0, func(idx int32) bool {
		visited.Add(1)
		return idx == 99
	})
	assert.Equal(t, StoppedEarly, outcome)
	assert.Positive(t, visited.Load())
}

func TestFor32Until_SequentialStopsExactly(t *testing.T) {
	var order []int32
	outcome := For32Until(0, 1000, 1, 2, 1, func(idx int32) bool {
		order = append(order, idx)
		return idx == 50
	})
	assert.Equal(t, StoppedEarly, outcome)
	require.Len(t, order, 51)
	assert.Equal(t, int32(50), order[50])
}

func TestFor64Until_CompletedWhenNoStop(t *testing.T) {
	outcome := For64Until(0, 10_000, 1, 100, 0, func(int64) bool { return false })
	assert.Equal(t, Completed, outcome)
}

func TestFor64DataUntil_StopViaData(t *testing.T) {
	limit := int64(77)
	outcome := For64DataUntil(0, 100_000, 1, 2, 0, &limit, func(idx int64, data any) bool {
		return idx == *data.(*int64)
	})
	assert.Equal(t, StoppedEarly, outcome)
}

func TestCeiling_Positive(t *testing.T) {
	assert.GreaterOrEqual(t, Ceiling(), 1)
	assert.Equal(t, Ceiling(), Ceiling())
}

func TestConcurrentInvocations_DisjointRangesOverSharedArray(t *testing.T) {
	const n = 50_000
	shared := make([]int64, n)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		For64Data(0, n/2, 1, 100, 0, shared, func(idx int64, data any) {
			data.([]int64)[idx] = idx + 1
		})
	}()
	go func() {
		defer wg.Done()
		For64Data(n/2, n, 1, 100, 0, shared, func(idx int64, data any) {
			data.([]int64)[idx] = idx + 1
		})
	}()
	wg.Wait()
	for i, v := range shared {
		require.Equal(t, int64(i)+1, v)
	}
}
