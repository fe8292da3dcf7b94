package pxgen

import "github.com/gogpu/pxgen/internal/parallel"

// Dispatcher runs fn once for every index in [0, n) and returns after the
// last call completes.
//
// Implementations must visit each index exactly once and never hand the same
// index to two goroutines. No ordering between indices is promised.
// n <= 0 is a no-op.
type Dispatcher interface {
	ParallelFor(n int, fn func(index int))

	// Workers reports the goroutine count used for a large n.
	Workers() int

	String() string
}

// SerialDispatcher runs every index on the calling goroutine in order.
// Useful for reference passes and timing comparisons.
func SerialDispatcher() Dispatcher {
	return parallel.Serial{}
}

// StaticDispatcher splits the range into one contiguous chunk per worker.
// workers <= 0 means GOMAXPROCS.
func StaticDispatcher(workers int) Dispatcher {
	return parallel.NewStatic(workers)
}

// DynamicDispatcher lets workers claim batches of indices from a shared
// atomic cursor. workers <= 0 means GOMAXPROCS; batch <= 0 uses a default.
func DynamicDispatcher(workers, batch int) Dispatcher {
	return parallel.NewDynamic(workers, batch)
}

// PoolDispatcher feeds batches to a work-stealing goroutine pool created
// for each pass and shut down before the pass returns.
func PoolDispatcher(workers, batch int) Dispatcher {
	return parallel.NewPooled(workers, batch)
}

// DefaultDispatcher is StaticDispatcher with one worker per available CPU.
func DefaultDispatcher() Dispatcher {
	return parallel.NewStatic(0)
}
