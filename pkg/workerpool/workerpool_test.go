package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTasksRun(t *testing.T) {
	p := New(3, 16)

	var count int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		p.Submit(func(ctx context.Context) {
			defer wg.Done()
			atomic.AddInt64(&count, 1)
		})
	}
	wg.Wait()
	p.Stop()

	assert.EqualValues(t, 20, count)
}

func TestStopWaitsForInFlight(t *testing.T) {
	p := New(1, 1)

	var done atomic.Bool
	p.Submit(func(ctx context.Context) {
		time.Sleep(30 * time.Millisecond)
		done.Store(true)
	})
	p.Stop()

	assert.True(t, done.Load(), "Stop returns only after queued work finishes")
}

func TestPanicDoesNotKillWorker(t *testing.T) {
	p := New(1, 4)

	p.Submit(func(ctx context.Context) { panic("boom") })

	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	p.Submit(func(ctx context.Context) {
		defer wg.Done()
		ran.Store(true)
	})
	wg.Wait()
	p.Stop()

	assert.True(t, ran.Load())
}

func TestTrySubmitFullQueue(t *testing.T) {
	p := New(1, 1)
	block := make(chan struct{})

	p.Submit(func(ctx context.Context) { <-block }) // occupies the worker
	p.Submit(func(ctx context.Context) {})          // fills the buffer

	ok := p.TrySubmit(func(ctx context.Context) {})
	assert.False(t, ok)

	close(block)
	p.Stop()
}
