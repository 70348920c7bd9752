package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adityakr/bazaari/app/cart"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/bind"
	"github.com/adityakr/bazaari/pkg/response"
	"github.com/adityakr/bazaari/pkg/router"
)

// CartController mutates the session's cart.
type CartController struct {
	catalog *services.CatalogService
	shops   *shop.Manager
}

// NewCartController wires the controller.
func NewCartController(cat *services.CatalogService, shops *shop.Manager) *CartController {
	return &CartController{catalog: cat, shops: shops}
}

func (c *CartController) payload(s *shop.Session) map[string]interface{} {
	return map[string]interface{}{
		"items":     s.Cart.Lines(),
		"itemCount": s.Cart.ItemCount(),
		"subtotal":  s.Cart.Subtotal(),
	}
}

// Show returns the cart contents in insertion order.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "", c.payload(shopFor(r, c.shops)))
}

type addToCartInput struct {
	ProductID int `json:"productId" validate:"required,integer"`
	Quantity  int `json:"quantity"`
}

// Add puts a product in the cart. Adding an existing product increments
// its line quantity. Quantity defaults to 1.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var in addToCartInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	product, ok := c.catalog.Store().Find(in.ProductID)
	if !ok {
		response.NotFound(w, "Product not found.")
		return
	}

	s := shopFor(r, c.shops)
	if err := s.Cart.Add(product, in.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			response.BadRequest(w, "Quantity must be at least 1.")
			return
		}
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Added to cart.", c.payload(s))
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets the quantity of one line. Zero or negative removes
// the line.
func (c *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "productId"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	var in updateQuantityInput
	if err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}

	s := shopFor(r, c.shops)
	s.Cart.UpdateQuantity(id, in.Quantity)
	response.OK(w, "Cart updated.", c.payload(s))
}

// Remove deletes a line from the cart. Removing an absent product is a
// no-op, not an error.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "productId"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	s := shopFor(r, c.shops)
	s.Cart.Remove(id)
	response.OK(w, "Removed from cart.", c.payload(s))
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	s := shopFor(r, c.shops)
	s.Cart.Clear()
	response.OK(w, "Cart cleared.", c.payload(s))
}
