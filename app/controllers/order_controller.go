package controllers

import (
	"errors"
	"net/http"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/orders"
	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/auth"
	"github.com/adityakr/bazaari/pkg/bind"
	"github.com/adityakr/bazaari/pkg/rbac"
	"github.com/adityakr/bazaari/pkg/response"
	"github.com/adityakr/bazaari/pkg/router"
)

// OrderController serves checkout and order history.
type OrderController struct {
	orders *services.OrderService
	shops  *shop.Manager
}

// NewOrderController wires the controller.
func NewOrderController(o *services.OrderService, shops *shop.Manager) *OrderController {
	return &OrderController{orders: o, shops: shops}
}

// Checkout turns the session cart into an order for the authenticated user.
func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromCtx(r.Context())
	s := shopFor(r, c.shops)

	order, err := c.orders.Checkout(r.Context(), userID, s.Cart)
	if errors.Is(err, services.ErrEmptyCart) {
		response.BadRequest(w, "Your cart is empty.")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Created(w, "Order placed.", order)
}

// Index lists the authenticated user's orders, newest first.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	list, err := c.orders.ForUser(r.Context(), auth.UserIDFromCtx(r.Context()))
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "", list)
}

// Show returns one order. Users can only see their own; admins see all.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.Find(r.Context(), router.Param(r, "id"))
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Order not found.")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	if order.UserID != auth.UserIDFromCtx(r.Context()) && !rbac.IsAdmin(r.Context()) {
		response.NotFound(w, "Order not found.")
		return
	}
	response.OK(w, "", order)
}

// AdminIndex lists every order. Admin only.
func (c *OrderController) AdminIndex(w http.ResponseWriter, r *http.Request) {
	list, err := c.orders.All(r.Context())
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "", list)
}

type advanceStatusInput struct {
	Status models.OrderStatus `json:"status" validate:"required,in=Processing,Shipped,Delivered"`
}

// AdvanceStatus moves an order one step along the fulfilment path.
// Admin only.
func (c *OrderController) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	var in advanceStatusInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.AdvanceStatus(r.Context(), router.Param(r, "id"), in.Status)
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Order not found.")
		return
	}
	if errors.Is(err, orders.ErrBadTransition) {
		response.Conflict(w, "Order status can only move forward one step at a time.")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Order status updated.", order)
}
