package session

import (
	"context"
	"sync"
	"time"

	"github.com/adityakr/bazaari/pkg/cache"
)

// ─── Redis store ─────────────────────────────────────────────────────────────

const redisPrefix = "session:"

type redisStore struct{}

// NewRedisStore returns a Store backed by the shared Redis connection.
func NewRedisStore() Store { return redisStore{} }

func (redisStore) Get(_ context.Context, sid string) (string, error) {
	v, ok := cache.GetString(redisPrefix + sid)
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (redisStore) Set(_ context.Context, sid, value string, ttl time.Duration) error {
	return cache.SetString(redisPrefix+sid, value, ttl)
}

func (redisStore) Remove(_ context.Context, sid string) error {
	return cache.Del(redisPrefix + sid)
}

// ─── In-memory store ─────────────────────────────────────────────────────────

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns a process-local Store. Used when Redis is not
// configured, and in tests.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(_ context.Context, sid string) (string, error) {
	s.mu.RLock()
	e, ok := s.entries[sid]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return "", ErrNotFound
	}
	return e.value, nil
}

func (s *memoryStore) Set(_ context.Context, sid, value string, ttl time.Duration) error {
	s.mu.Lock()
	s.entries[sid] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Remove(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.entries, sid)
	s.mu.Unlock()
	return nil
}

// NewStore picks Redis when the shared connection is up, otherwise memory.
func NewStore() Store {
	if cache.Available() {
		return NewRedisStore()
	}
	return NewMemoryStore()
}
