package event

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireRunsListenersInOrder(t *testing.T) {
	t.Cleanup(Reset)

	var got []int
	Listen("a", func(_ interface{}) { got = append(got, 1) })
	Listen("a", func(_ interface{}) { got = append(got, 2) })

	Fire("a", nil)
	assert.Equal(t, []int{1, 2}, got)
}

func TestFireDeliversPayload(t *testing.T) {
	t.Cleanup(Reset)

	var got interface{}
	Listen("b", func(p interface{}) { got = p })
	Fire("b", "payload")
	assert.Equal(t, "payload", got)
}

func TestFireWithNoListeners(t *testing.T) {
	t.Cleanup(Reset)
	assert.NotPanics(t, func() { Fire("nobody", nil) })
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	t.Cleanup(Reset)

	var ran bool
	Listen("c", func(_ interface{}) { panic("boom") })
	Listen("c", func(_ interface{}) { ran = true })

	assert.NotPanics(t, func() { Fire("c", nil) })
	assert.True(t, ran)
}

func TestFireAsyncAndFlush(t *testing.T) {
	t.Cleanup(Reset)

	var count int64
	Listen("d", func(_ interface{}) { atomic.AddInt64(&count, 1) })

	for i := 0; i < 10; i++ {
		FireAsync("d", nil)
	}
	Flush()
	assert.EqualValues(t, 10, count)
}
