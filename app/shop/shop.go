// Package shop owns the per-session state: one cart ledger and one wishlist
// per browser session, created on first use and torn down at logout or after
// idling out.
//
// There are deliberately no package-level globals here — the Manager is built
// once at server start and handed to the controllers that need it.
package shop

import (
	"sync"
	"time"

	"github.com/adityakr/bazaari/app/cart"
	"github.com/adityakr/bazaari/app/wishlist"
)

// DefaultIdleTTL is how long a session's cart and wishlist survive without
// any request touching them.
const DefaultIdleTTL = 2 * time.Hour

// Session bundles the mutable collections owned by one browser session.
type Session struct {
	ID       string
	Cart     *cart.Ledger
	Wishlist *wishlist.Set

	lastSeen time.Time
}

// Manager hands out sessions keyed by the session cookie ID.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	idleTTL  time.Duration
}

// NewManager creates a Manager with the default idle TTL.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		idleTTL:  DefaultIdleTTL,
	}
}

// Session returns the state for id, creating it on first use.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = &Session{
			ID:       id,
			Cart:     cart.New(),
			Wishlist: wishlist.New(),
		}
		m.sessions[id] = s
	}
	s.lastSeen = time.Now()
	return s
}

// End tears down the session state (logout).
func (m *Manager) End(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle drops sessions idle past the TTL and returns how many were
// removed. Run this from the scheduler.
func (m *Manager) EvictIdle() int {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
