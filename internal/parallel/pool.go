// Package parallel runs batches of independent grid queries on a fixed set
// of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs batches of jobs on a fixed number of goroutines.
//
// A batch is dealt round-robin onto per-worker queues. A worker whose
// queue runs dry takes jobs from the others, so a batch finishes about as
// soon as its longest sight line does.
//
// Several goroutines may submit batches to one pool at once.
type WorkerPool struct {
	workers int

	queues []chan func() // queues[i] belongs to worker i
	done   chan struct{} // closed by Close

	wg sync.WaitGroup

	// mu is held shared by in-flight batches and exclusively by Close, so
	// the workers never stop under a batch that is still queueing.
	mu sync.RWMutex

	running atomic.Bool
}

// NewWorkerPool starts workers goroutines, or GOMAXPROCS of them when
// workers is not positive. Call Close to stop them.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the loop of goroutine id.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return

		case job := <-own:
			run(job)

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				run(job)
			}
		}
	}
}

func run(job func()) {
	if job != nil {
		job()
	}
}

// drain runs whatever is left in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			run(job)
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll runs every job and waits for all of them to finish.
// It reports false, without running anything, when the pool is closed.
func (p *WorkerPool) ExecuteAll(jobs []func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		return false
	}
	if len(jobs) == 0 {
		return true
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))

	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			job()
		}

		p.queues[i%p.workers] <- wrapped
	}

	pending.Wait()
	return true
}

// Map evaluates fn(i) for every i in [0, n) on the pool and returns the
// results in index order. ok is false when the pool is closed.
func Map[T any](p *WorkerPool, n int, fn func(i int) T) (out []T, ok bool) {
	out = make([]T, n)
	jobs := make([]func(), n)
	for i := range jobs {
		jobs[i] = func() {
			out[i] = fn(i)
		}
	}
	if !p.ExecuteAll(jobs) {
		return nil, false
	}
	return out, true
}

// Close stops accepting work, waits for in-flight batches and stops the
// workers. Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	p.mu.Lock()
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the goroutine count fixed at construction.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning is false once Close has begun.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
