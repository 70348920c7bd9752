package services

import (
	"context"

	"github.com/adityakr/bazaari/app/cart"
	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/orders"
	"github.com/adityakr/bazaari/pkg/event"
	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/metrics"
	"github.com/adityakr/bazaari/pkg/ws"
)

// EventOrderPlaced fires after an order has been durably stored.
const EventOrderPlaced = "order.placed"

// EventOrderStatusChanged fires after an order status transition.
const EventOrderStatusChanged = "order.status_changed"

// OrderStore is the slice of the order repository the service needs.
type OrderStore interface {
	Create(ctx context.Context, o models.Order) error
	Find(ctx context.Context, id string) (models.Order, error)
	ForUser(ctx context.Context, userID int) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
	SetStatus(ctx context.Context, id string, status models.OrderStatus) error
}

// OrderService drives checkout and order lifecycle. Orders are written to
// the database first and mirrored into an in-process journal that serves
// reads and feeds the live update hub.
type OrderService struct {
	repo    OrderStore
	journal *orders.Journal
	hub     *ws.Hub
}

// NewOrderService wires the service. hub may be nil in tests.
func NewOrderService(repo OrderStore, journal *orders.Journal, hub *ws.Hub) *OrderService {
	return &OrderService{repo: repo, journal: journal, hub: hub}
}

// Checkout turns the cart into an order. The order is persisted before
// anything else changes; if the write fails the cart is left exactly as it
// was. Only after the order exists is the cart emptied.
func (s *OrderService) Checkout(ctx context.Context, userID int, ledger *cart.Ledger) (models.Order, error) {
	lines := ledger.Lines()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := orders.New(userID, lines, ledger.Subtotal())
	if err := s.repo.Create(ctx, order); err != nil {
		return models.Order{}, err
	}
	s.journal.Append(order)
	ledger.Clear()

	metrics.OrdersPlaced.Inc()
	logger.Info("order placed", "order_id", order.ID, "user_id", userID, "total", order.TotalAmount)
	event.FireAsync(EventOrderPlaced, order)
	s.broadcast(order)
	return order, nil
}

// ForUser returns the user's order history, newest first.
func (s *OrderService) ForUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.repo.ForUser(ctx, userID)
}

// Find returns one order by ID.
func (s *OrderService) Find(ctx context.Context, id string) (models.Order, error) {
	return s.repo.Find(ctx, id)
}

// All returns every order, newest first. Admin use.
func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.repo.All(ctx)
}

// AdvanceStatus moves an order one step along Processing → Shipped →
// Delivered. Backward or skipping transitions return orders.ErrBadTransition.
func (s *OrderService) AdvanceStatus(ctx context.Context, id string, next models.OrderStatus) (models.Order, error) {
	order, err := s.repo.Find(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if !order.Status.CanAdvanceTo(next) {
		return models.Order{}, orders.ErrBadTransition
	}
	if err := s.repo.SetStatus(ctx, id, next); err != nil {
		return models.Order{}, err
	}
	order.Status = next

	// The journal only mirrors orders placed by this process.
	_, _ = s.journal.AdvanceStatus(id, next)

	logger.Info("order status advanced", "order_id", id, "status", next)
	event.FireAsync(EventOrderStatusChanged, order)
	s.broadcast(order)
	return order, nil
}

func (s *OrderService) broadcast(order models.Order) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(map[string]interface{}{
		"type":   "order",
		"id":     order.ID,
		"status": order.Status,
		"total":  order.TotalAmount,
	})
}
