package parallel

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ForEachContext calls fn(i) for every i in [0, n) using workers goroutines
// that claim batches from a shared cursor. ctx is checked before each batch;
// once it is done no new batch starts and ctx.Err() is returned after the
// in-flight batches finish. A nil error means every index was visited.
func ForEachContext(ctx context.Context, n, workers, batch int, fn func(index int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if batch <= 0 {
		batch = DefaultBatch
	}
	workers = min(resolveWorkers(workers), (n+batch-1)/batch)

	g, ctx := errgroup.WithContext(ctx)

	var cursor atomic.Int64
	for range workers {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				lo, hi, ok := claim(&cursor, n, batch)
				if !ok {
					return nil
				}
				for i := lo; i < hi; i++ {
					fn(i)
				}
			}
		})
	}

	return g.Wait()
}
