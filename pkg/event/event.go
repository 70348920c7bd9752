// Package event is an in-process publish/subscribe bus. Listeners register
// against an event name; Fire runs them synchronously, FireAsync in a
// goroutine tracked by Flush.
package event

import (
	"sync"

	"github.com/adityakr/bazaari/pkg/logger"
)

// Listener handles a fired event.
type Listener func(payload interface{})

var (
	mu        sync.RWMutex
	listeners = make(map[string][]Listener)
	wg        sync.WaitGroup
)

// Listen registers a listener for the named event.
func Listen(name string, l Listener) {
	mu.Lock()
	listeners[name] = append(listeners[name], l)
	mu.Unlock()
}

// Fire runs every listener for the named event, in registration order.
func Fire(name string, payload interface{}) {
	mu.RLock()
	ls := append([]Listener(nil), listeners[name]...)
	mu.RUnlock()

	for _, l := range ls {
		invoke(name, l, payload)
	}
}

// FireAsync runs listeners in a background goroutine.
func FireAsync(name string, payload interface{}) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		Fire(name, payload)
	}()
}

// Flush blocks until every async event in flight has finished. Called
// during graceful shutdown.
func Flush() { wg.Wait() }

func invoke(name string, l Listener, payload interface{}) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("event listener panicked", "event", name, "panic", rec)
		}
	}()
	l(payload)
}

// Reset drops all listeners. Test helper.
func Reset() {
	mu.Lock()
	listeners = make(map[string][]Listener)
	mu.Unlock()
}
