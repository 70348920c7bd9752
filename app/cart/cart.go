// Package cart implements the per-session cart ledger: an ordered mapping of
// product to desired purchase quantity.
package cart

import (
	"errors"
	"sync"

	"github.com/adityakr/bazaari/app/models"
)

// ErrInvalidQuantity is returned when an add is attempted with a quantity
// below 1. The ledger is left untouched.
var ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")

// Ledger holds at most one line per product ID, in insertion order.
// Every method is safe for concurrent use; the HTTP server may run several
// requests for the same session in parallel, and quantity updates are
// read-modify-write.
type Ledger struct {
	mu    sync.Mutex
	lines []models.CartLine
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// Add puts qty units of p in the cart. If a line for p already exists its
// quantity is incremented, so Add(p, 2) then Add(p, 3) leaves one line with
// quantity 5. qty below 1 is rejected without mutating anything.
func (l *Ledger) Add(p models.Product, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Product.ID == p.ID {
			l.lines[i].Quantity += qty
			return nil
		}
	}

	l.lines = append(l.lines, models.CartLine{Product: p, Quantity: qty})
	return nil
}

// UpdateQuantity sets the line for productID to exactly qty.
// qty <= 0 removes the line; a line is never stored at quantity zero.
func (l *Ledger) UpdateQuantity(productID, qty int) {
	if qty <= 0 {
		l.Remove(productID)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			l.lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the line for productID. Removing an absent ID is a no-op.
func (l *Ledger) Remove(productID int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].Product.ID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the ledger. Used after a confirmed checkout.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.lines = nil
	l.mu.Unlock()
}

// Lines returns a copy of the current cart lines in insertion order.
func (l *Ledger) Lines() []models.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// ItemCount is the sum of quantities across all lines, not the line count.
func (l *Ledger) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, line := range l.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of price × quantity across all lines.
func (l *Ledger) Subtotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, line := range l.lines {
		total += line.Total()
	}
	return total
}
