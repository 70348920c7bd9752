// Package workerpool runs submitted tasks on a fixed number of goroutines.
package workerpool

import (
	"context"
	"sync"

	"github.com/adityakr/bazaari/pkg/logger"
)

// Task is a unit of work executed by the pool.
type Task func(ctx context.Context)

// Pool is a fixed-size worker pool with a buffered task queue.
type Pool struct {
	tasks  chan Task
	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once
}

// New starts a pool with the given worker count and queue capacity.
func New(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		tasks:  make(chan Task, queueSize),
		cancel: cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	return p
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(ctx, id, task)
	}
}

func (p *Pool) run(ctx context.Context, id int, task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("worker task panicked", "worker", id, "panic", rec)
		}
	}()
	task(ctx)
}

// Submit enqueues a task. Blocks when the queue is full.
func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

// TrySubmit enqueues a task without blocking. Returns false when the
// queue is full.
func (p *Pool) TrySubmit(task Task) bool {
	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Stop closes the queue, waits for in-flight tasks and cancels their context.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.tasks)
		p.wg.Wait()
		p.cancel()
	})
}
