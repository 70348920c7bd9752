package queue

import (
	"context"
	"time"
)

// MemoryDriver holds jobs in a buffered channel. Suitable for single-node
// deployments and tests.
type MemoryDriver struct {
	jobs chan []byte
}

// NewMemoryDriver builds a driver with the given buffer size.
func NewMemoryDriver(size int) *MemoryDriver {
	return &MemoryDriver{jobs: make(chan []byte, size)}
}

func (d *MemoryDriver) Push(ctx context.Context, raw []byte) error {
	select {
	case d.jobs <- raw:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *MemoryDriver) Pop(ctx context.Context, timeout time.Duration) ([]byte, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case raw := <-d.jobs:
		return raw, nil
	case <-timer.C:
		return nil, ErrEmpty
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
