// Package orders implements the order journal: the append-only history of
// finalised purchases, plus the status transition rules.
package orders

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adityakr/bazaari/app/models"
)

var (
	// ErrNotFound is returned when an order ID is not in the journal.
	ErrNotFound = errors.New("orders: order not found")

	// ErrBadTransition is returned for a backward or skipping status move.
	ErrBadTransition = errors.New("orders: illegal status transition")
)

// New builds an order from a cart snapshot. The lines are copied by value so
// later mutation of the live cart cannot alter the order, the ID is a UUID
// (timestamp-derived IDs collide within one millisecond; random IDs do not),
// and the initial status is always Processing.
func New(userID int, lines []models.CartLine, total float64) models.Order {
	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	return models.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        time.Now().UTC(),
		Items:       items,
		TotalAmount: total,
		Status:      models.StatusProcessing,
	}
}

// Journal is the in-memory append-only order history. Persistence is the
// caller's concern: an order is appended only after it has been durably
// created, so a failed checkout never leaves a phantom entry here.
type Journal struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records a finalised order.
func (j *Journal) Append(o models.Order) {
	j.mu.Lock()
	j.orders = append(j.orders, o)
	j.mu.Unlock()
}

// Place builds an order from the cart lines and appends it in one step.
func (j *Journal) Place(userID int, lines []models.CartLine, total float64) models.Order {
	o := New(userID, lines, total)
	j.Append(o)
	return o
}

// ForUser returns the user's orders newest-first. Orders sharing a date keep
// their append order relative to each other.
func (j *Journal) ForUser(userID int) []models.Order {
	j.mu.Lock()
	defer j.mu.Unlock()

	var out []models.Order
	for _, o := range j.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Date.After(out[b].Date) })
	return out
}

// Find looks up an order by ID.
func (j *Journal) Find(id string) (models.Order, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, o := range j.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Len returns the number of orders in the journal.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.orders)
}

// AdvanceStatus moves an order one step along Processing → Shipped →
// Delivered and returns the updated order. Any other move is rejected with
// ErrBadTransition and the order is left unchanged.
func (j *Journal) AdvanceStatus(id string, next models.OrderStatus) (models.Order, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for i := range j.orders {
		if j.orders[i].ID != id {
			continue
		}
		if !j.orders[i].Status.CanAdvanceTo(next) {
			return models.Order{}, ErrBadTransition
		}
		j.orders[i].Status = next
		return j.orders[i], nil
	}
	return models.Order{}, ErrNotFound
}
