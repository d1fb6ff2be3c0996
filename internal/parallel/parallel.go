// Package parallel realizes the threadpool contract from the system design:
// cooperative tasks over a fixed worker count, suspension only at explicit
// await/sync-scope points, no cancellation, deterministic reduction via
// associative accumulators owned by the caller. It is a thin wrapper over
// golang.org/x/sync/errgroup, which already gives join-complete semantics
// (Wait blocks until every spawned goroutine has returned).
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool sets how many contiguous chunks ParallelFor splits its range into
// (one goroutine per chunk). It has no effect on Group. A nil *Pool is
// valid and means "run serially".
type Pool struct {
	workers int
}

// New returns a pool with one worker fewer than GOMAXPROCS, and never
// fewer than one worker.
func New() *Pool {
	n := runtime.GOMAXPROCS(0) - 1
	if n < 1 {
		n = 1
	}
	return &Pool{workers: n}
}

// NewN returns a pool with a caller-chosen worker count.
func NewN(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

func (p *Pool) workerCount() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// ParallelFor splits [0, n) into contiguous slices, one per worker, and runs
// chunk(lo, hi) on each. Iteration order across chunks is unspecified;
// chunk bodies must only touch their own [lo, hi) slice of any shared
// output so the reduction stays associative and deterministic, per the
// §5 shared-resource policy.
func ParallelFor(p *Pool, n int, chunk func(lo, hi int)) {
	workers := p.workerCount()
	if workers <= 1 || n <= 1 {
		chunk(0, n)
		return
	}
	if workers > n {
		workers = n
	}
	var g errgroup.Group
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		lo := lo
		hi := lo + size
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			chunk(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // chunk never returns an error; Wait only joins.
}

// Group exposes a spawn/await scope for heterogeneous tasks, mirroring
// errgroup's Go/Wait pair directly so the join-complete contract is
// enforced by the underlying library rather than reimplemented here. Each
// Spawn starts its own goroutine: the number of tasks running at once is
// not bounded, and a Group is not tied to a Pool.
type Group struct {
	g errgroup.Group
}

// Spawn runs fn in a new goroutine within the scope.
func (grp *Group) Spawn(fn func()) {
	grp.g.Go(func() error {
		fn()
		return nil
	})
}

// Await blocks until every spawned task in the scope has returned
// (sync_scope barrier).
func (grp *Group) Await() {
	_ = grp.g.Wait()
}

// WithPoolContext returns context.Background(), for APIs (like
// errgroup.WithContext) that want a context. It takes no pool, and the
// returned context is never cancelled.
func WithPoolContext() context.Context {
	return context.Background()
}
