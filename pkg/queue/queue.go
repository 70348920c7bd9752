// Package queue provides background job dispatch with pluggable drivers.
// Jobs are serialized to JSON, pushed onto a driver (memory or Redis) and
// consumed by a worker loop. Jobs that exhaust their retries are recorded
// in the failed_jobs collection.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adityakr/bazaari/config"
	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/workerpool"
)

// MaxAttempts is how many times a job runs before it is marked failed.
const MaxAttempts = 3

// Job is the serialized unit pushed onto a driver.
type Job struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
	Queued   time.Time       `json:"queued"`
}

// Handler processes one job payload.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Driver moves serialized jobs in and out of a backing store.
type Driver interface {
	Push(ctx context.Context, raw []byte) error
	// Pop blocks up to timeout for the next job. Returns ErrEmpty when
	// nothing arrived.
	Pop(ctx context.Context, timeout time.Duration) ([]byte, error)
}

// ErrEmpty signals an empty queue after a blocking Pop timed out.
var ErrEmpty = errors.New("queue: empty")

var (
	mu       sync.RWMutex
	handlers = make(map[string]Handler)
)

// Register binds a handler to a job name. Call at boot.
func Register(name string, h Handler) {
	mu.Lock()
	handlers[name] = h
	mu.Unlock()
}

// Queue dispatches and consumes jobs through a Driver.
type Queue struct {
	driver Driver
	pool   *workerpool.Pool
	failed FailureSink
	stop   chan struct{}
	done   chan struct{}
}

// FailureSink records jobs that exhausted their retries.
type FailureSink interface {
	Record(ctx context.Context, job Job, reason string) error
}

// New builds a Queue on the given driver.
func New(driver Driver, pool *workerpool.Pool, failed FailureSink) *Queue {
	return &Queue{
		driver: driver,
		pool:   pool,
		failed: failed,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// NewFromConfig picks the driver from QUEUE_DRIVER (memory | redis).
func NewFromConfig(pool *workerpool.Pool, failed FailureSink) *Queue {
	var driver Driver
	switch config.Get("QUEUE_DRIVER", "memory") {
	case "redis":
		driver = NewRedisDriver("bazaari:jobs")
	default:
		driver = NewMemoryDriver(256)
	}
	return New(driver, pool, failed)
}

// Dispatch serializes payload and pushes a job onto the queue.
func (q *Queue) Dispatch(ctx context.Context, name string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("queue: marshal payload: %w", err)
	}
	job := Job{
		ID:      uuid.NewString(),
		Name:    name,
		Payload: raw,
		Queued:  time.Now().UTC(),
	}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	logger.Debug("job dispatched", "job", name, "id", job.ID)
	return q.driver.Push(ctx, encoded)
}

// Work consumes jobs until Stop is called. Run it in its own goroutine.
func (q *Queue) Work(ctx context.Context) {
	defer close(q.done)
	for {
		select {
		case <-q.stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		raw, err := q.driver.Pop(ctx, 2*time.Second)
		if errors.Is(err, ErrEmpty) {
			continue
		}
		if err != nil {
			logger.Error("queue: pop failed", "error", err)
			time.Sleep(time.Second)
			continue
		}

		var job Job
		if err := json.Unmarshal(raw, &job); err != nil {
			logger.Error("queue: malformed job discarded", "error", err)
			continue
		}
		q.pool.Submit(func(ctx context.Context) { q.process(ctx, job) })
	}
}

func (q *Queue) process(ctx context.Context, job Job) {
	mu.RLock()
	h, ok := handlers[job.Name]
	mu.RUnlock()
	if !ok {
		logger.Warn("queue: no handler for job", "job", job.Name)
		return
	}

	job.Attempts++
	err := h(ctx, job.Payload)
	if err == nil {
		logger.Debug("job processed", "job", job.Name, "id", job.ID, "attempts", job.Attempts)
		return
	}

	logger.Warn("job failed", "job", job.Name, "id", job.ID, "attempts", job.Attempts, "error", err)
	if job.Attempts >= MaxAttempts {
		if q.failed != nil {
			if rerr := q.failed.Record(ctx, job, err.Error()); rerr != nil {
				logger.Error("queue: recording failed job", "error", rerr)
			}
		}
		return
	}

	// Requeue for another attempt.
	encoded, merr := json.Marshal(job)
	if merr != nil {
		return
	}
	if perr := q.driver.Push(ctx, encoded); perr != nil {
		logger.Error("queue: requeue failed", "job", job.Name, "error", perr)
	}
}

// Stop halts the worker loop and waits for it to exit.
func (q *Queue) Stop() {
	close(q.stop)
	<-q.done
}
