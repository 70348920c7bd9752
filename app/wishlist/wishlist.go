// Package wishlist implements the per-session wishlist: a set of products
// marked for later interest, keyed by product ID.
package wishlist

import (
	"sync"

	"github.com/adityakr/bazaari/app/cart"
	"github.com/adityakr/bazaari/app/models"
)

// Set holds at most one entry per product ID, in insertion order.
// Safe for concurrent use.
type Set struct {
	mu    sync.Mutex
	items []models.Product
}

// New creates an empty Set.
func New() *Set {
	return &Set{}
}

// Add inserts p. Adding a product that is already present is a no-op.
func (s *Set) Add(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(p.ID) >= 0 {
		return
	}
	s.items = append(s.items, p)
}

// Remove deletes the entry for productID. Removing an absent ID is a no-op.
func (s *Set) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

// Toggle removes p when present, otherwise adds it. The membership check and
// the mutation happen under one lock, so two rapid toggles always round-trip
// back to the original state.
func (s *Set) Toggle(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(p.ID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return
	}
	s.items = append(s.items, p)
}

// Contains reports whether productID is in the set.
func (s *Set) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index(productID) >= 0
}

// Count is the number of distinct entries.
func (s *Set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a copy of the wishlist in insertion order.
func (s *Set) Items() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

// MoveToCart adds p to the ledger and, only on success, removes it from the
// wishlist. If the cart add fails the wishlist entry stays put, so the item
// is never lost from both collections at once.
func (s *Set) MoveToCart(ledger *cart.Ledger, p models.Product) error {
	if err := ledger.Add(p, 1); err != nil {
		return err
	}
	s.Remove(p.ID)
	return nil
}

// index returns the position of productID, or -1. Caller holds s.mu.
func (s *Set) index(productID int) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}
