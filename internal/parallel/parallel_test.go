package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelForCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 97
	var counts [n]int32
	pool := NewN(4)
	ParallelFor(pool, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})
	for i, c := range counts {
		require.EqualValues(t, 1, c, "index %d", i)
	}
}

func TestParallelForNilPoolRunsSerially(t *testing.T) {
	const n = 10
	var seen []int
	ParallelFor(nil, n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			seen = append(seen, i)
		}
	})
	require.Len(t, seen, n)
}

func TestParallelForZeroN(t *testing.T) {
	called := false
	ParallelFor(NewN(4), 0, func(lo, hi int) {
		called = true
		require.Equal(t, 0, hi-lo)
	})
	require.True(t, called)
}

func TestParallelForMoreWorkersThanItems(t *testing.T) {
	const n = 3
	var total int32
	ParallelFor(NewN(16), n, func(lo, hi int) {
		atomic.AddInt32(&total, int32(hi-lo))
	})
	require.EqualValues(t, n, total)
}

func TestNewNClampsBelowOne(t *testing.T) {
	p := NewN(0)
	require.Equal(t, 1, p.workerCount())
	p = NewN(-5)
	require.Equal(t, 1, p.workerCount())
}

func TestNewReturnsAtLeastOneWorker(t *testing.T) {
	p := New()
	require.GreaterOrEqual(t, p.workerCount(), 1)
}

func TestGroupSpawnAwait(t *testing.T) {
	var grp Group
	var count int32
	for i := 0; i < 10; i++ {
		grp.Spawn(func() {
			atomic.AddInt32(&count, 1)
		})
	}
	grp.Await()
	require.EqualValues(t, 10, count)
}

func TestWithPoolContextIsNeverCancelled(t *testing.T) {
	ctx := WithPoolContext()
	select {
	case <-ctx.Done():
		t.Fatal("context should never be cancelled")
	default:
	}
}
