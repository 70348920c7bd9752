// Package schedule runs named tasks on fixed intervals.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/adityakr/bazaari/pkg/logger"
)

// Task is a scheduled unit of work.
type Task func(ctx context.Context)

type entry struct {
	name     string
	interval time.Duration
	task     Task
}

// Scheduler runs registered tasks until stopped.
type Scheduler struct {
	mu      sync.Mutex
	entries []entry
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New returns an empty Scheduler.
func New() *Scheduler { return &Scheduler{} }

// Every registers a task to run at the given interval.
func (s *Scheduler) Every(interval time.Duration, name string, task Task) *Scheduler {
	s.mu.Lock()
	s.entries = append(s.entries, entry{name: name, interval: interval, task: task})
	s.mu.Unlock()
	return s
}

// Start launches one goroutine per registered task.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.mu.Lock()
	entries := append([]entry(nil), s.entries...)
	s.mu.Unlock()

	for _, e := range entries {
		s.wg.Add(1)
		go s.loop(ctx, e)
	}
	logger.Info("scheduler started", "tasks", len(entries))
}

func (s *Scheduler) loop(ctx context.Context, e entry) {
	defer s.wg.Done()
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.run(ctx, e)
		}
	}
}

func (s *Scheduler) run(ctx context.Context, e entry) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("scheduled task panicked", "task", e.name, "panic", rec)
		}
	}()
	start := time.Now()
	e.task(ctx)
	logger.Debug("scheduled task ran", "task", e.name, "duration_ms", time.Since(start).Milliseconds())
}

// Stop cancels all task loops and waits for them to exit.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
