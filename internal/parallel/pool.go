package parallel

import (
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines that executes batches of pixel indices.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty, which balances passes where some rows are much slower than others
// (the interior of an escape-time fractal, for example).
//
// A pool lives for one pass: Pooled creates it, feeds it, and closes it
// before ParallelFor returns.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and block until work arrives.
func NewWorkerPool(workers int) *WorkerPool {
	workers = resolveWorkers(workers)

	// 4x workers hides submission latency; never below 8.
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drainQueue(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ForRange splits [0, n) into contiguous batches of at most batch indices,
// hands them to the workers round-robin and returns once every index has
// been passed to fn exactly once.
//
// ForRange is a no-op for n <= 0 or on a closed pool.
func (p *WorkerPool) ForRange(n, batch int, fn func(index int)) {
	if n <= 0 || !p.running.Load() {
		return
	}
	if batch <= 0 {
		batch = DefaultBatch
	}

	batches := (n + batch - 1) / batch

	var completion sync.WaitGroup
	completion.Add(batches)

	for b := range batches {
		lo := b * batch
		hi := min(lo+batch, n)
		work := func() {
			defer completion.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}

		// May block while the target queue is full.
		select {
		case p.workQueues[b%p.workers] <- work:
		case <-p.done:
			// Closed mid-submission: run inline so the range is still covered.
			work()
		}
	}

	completion.Wait()
}

// Close stops the workers after their queues drain.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
