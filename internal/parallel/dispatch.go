// Package parallel partitions an index range [0, n) across goroutines.
//
// Every strategy here guarantees that each index in [0, n) is passed to the
// callback exactly once and that no two goroutines receive the same index.
// Callbacks that write only to slot i of a shared slice therefore need no
// synchronization; the final join is the only barrier.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultBatch is the number of consecutive indices handed out at once by
// the dynamic and pooled strategies.
const DefaultBatch = 1024

// resolveWorkers maps a non-positive worker count to GOMAXPROCS.
func resolveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// Serial runs every index on the calling goroutine in ascending order.
type Serial struct{}

// ParallelFor calls fn(i) for i in [0, n).
func (Serial) ParallelFor(n int, fn func(index int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}

// Workers returns 1.
func (Serial) Workers() int { return 1 }

func (Serial) String() string { return "serial" }

// Static gives each of its workers one contiguous sub-range of about
// n/workers indices. This is the cheapest strategy when per-index cost is
// uniform.
type Static struct {
	workers int
}

// NewStatic creates a static strategy. workers <= 0 means GOMAXPROCS.
func NewStatic(workers int) Static {
	return Static{workers: resolveWorkers(workers)}
}

// ParallelFor calls fn(i) for i in [0, n) and returns when all calls finish.
func (s Static) ParallelFor(n int, fn func(index int)) {
	if n <= 0 {
		return
	}
	workers := min(resolveWorkers(s.workers), n)
	if workers == 1 {
		Serial{}.ParallelFor(n, fn)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// Workers returns the configured goroutine count.
func (s Static) Workers() int { return resolveWorkers(s.workers) }

func (s Static) String() string { return fmt.Sprintf("static(%d)", s.Workers()) }

// Dynamic lets its workers claim batches from a shared atomic cursor until
// the range is exhausted. Slow regions are spread over all workers.
type Dynamic struct {
	workers int
	batch   int
}

// NewDynamic creates a cursor-based strategy. workers <= 0 means GOMAXPROCS,
// batch <= 0 means DefaultBatch.
func NewDynamic(workers, batch int) Dynamic {
	if batch <= 0 {
		batch = DefaultBatch
	}
	return Dynamic{workers: resolveWorkers(workers), batch: batch}
}

// ParallelFor calls fn(i) for i in [0, n) and returns when all calls finish.
func (d Dynamic) ParallelFor(n int, fn func(index int)) {
	if n <= 0 {
		return
	}
	batch := d.batch
	if batch <= 0 {
		batch = DefaultBatch
	}
	workers := min(resolveWorkers(d.workers), (n+batch-1)/batch)

	var (
		cursor atomic.Int64
		wg     sync.WaitGroup
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				lo, hi, ok := claim(&cursor, n, batch)
				if !ok {
					return
				}
				for i := lo; i < hi; i++ {
					fn(i)
				}
			}
		}()
	}
	wg.Wait()
}

// Workers returns the configured goroutine count.
func (d Dynamic) Workers() int { return resolveWorkers(d.workers) }

// Batch returns the number of indices claimed per cursor step.
func (d Dynamic) Batch() int { return d.batch }

func (d Dynamic) String() string {
	return fmt.Sprintf("dynamic(%d, batch=%d)", d.Workers(), d.batch)
}

// claim advances the cursor by one batch and returns the claimed half-open
// range. ok is false once the cursor has passed n.
func claim(cursor *atomic.Int64, n, batch int) (lo, hi int, ok bool) {
	start := cursor.Add(int64(batch)) - int64(batch)
	if start >= int64(n) {
		return 0, 0, false
	}
	lo = int(start)
	return lo, min(lo+batch, n), true
}

// Pooled runs each pass on a fresh work-stealing WorkerPool that is closed
// before ParallelFor returns.
type Pooled struct {
	workers int
	batch   int
}

// NewPooled creates a pool-backed strategy. workers <= 0 means GOMAXPROCS,
// batch <= 0 means DefaultBatch.
func NewPooled(workers, batch int) Pooled {
	if batch <= 0 {
		batch = DefaultBatch
	}
	return Pooled{workers: resolveWorkers(workers), batch: batch}
}

// ParallelFor calls fn(i) for i in [0, n) and returns when all calls finish.
func (p Pooled) ParallelFor(n int, fn func(index int)) {
	if n <= 0 {
		return
	}
	pool := NewWorkerPool(p.workers)
	defer pool.Close()
	pool.ForRange(n, p.batch, fn)
}

// Workers returns the configured goroutine count.
func (p Pooled) Workers() int { return resolveWorkers(p.workers) }

func (p Pooled) String() string {
	return fmt.Sprintf("pool(%d, batch=%d)", p.Workers(), p.batch)
}
