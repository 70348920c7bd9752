package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/pkg/workerpool"
)

type recordingSink struct {
	mu      sync.Mutex
	records []Job
}

func (s *recordingSink) Record(_ context.Context, job Job, _ string) error {
	s.mu.Lock()
	s.records = append(s.records, job)
	s.mu.Unlock()
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func runQueue(t *testing.T, sink FailureSink) (*Queue, func()) {
	t.Helper()
	pool := workerpool.New(2, 16)
	q := New(NewMemoryDriver(16), pool, sink)
	ctx, cancel := context.WithCancel(context.Background())
	go q.Work(ctx)
	return q, func() {
		q.Stop()
		cancel()
		pool.Stop()
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatchAndProcess(t *testing.T) {
	var mu sync.Mutex
	var got []string
	Register("test.echo", func(_ context.Context, payload json.RawMessage) error {
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return err
		}
		mu.Lock()
		got = append(got, s)
		mu.Unlock()
		return nil
	})

	q, stop := runQueue(t, nil)
	defer stop()

	require.NoError(t, q.Dispatch(context.Background(), "test.echo", "hello"))

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	})
	assert.Equal(t, "hello", got[0])
}

func TestRetriesThenFails(t *testing.T) {
	var attempts int32
	var mu sync.Mutex
	Register("test.flaky", func(_ context.Context, _ json.RawMessage) error {
		mu.Lock()
		attempts++
		mu.Unlock()
		return errors.New("always fails")
	})

	sink := &recordingSink{}
	q, stop := runQueue(t, sink)
	defer stop()

	require.NoError(t, q.Dispatch(context.Background(), "test.flaky", struct{}{}))

	waitFor(t, func() bool { return sink.count() == 1 })

	mu.Lock()
	defer mu.Unlock()
	assert.EqualValues(t, MaxAttempts, attempts)
	assert.Equal(t, "test.flaky", sink.records[0].Name)
	assert.Equal(t, MaxAttempts, sink.records[0].Attempts)
}

func TestUnknownJobIsDropped(t *testing.T) {
	sink := &recordingSink{}
	q, stop := runQueue(t, sink)
	defer stop()

	require.NoError(t, q.Dispatch(context.Background(), "test.nobody-home", struct{}{}))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, sink.count(), "jobs without handlers are not failures")
}

func TestMemoryDriverPopTimeout(t *testing.T) {
	d := NewMemoryDriver(1)
	_, err := d.Pop(context.Background(), 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrEmpty)
}
