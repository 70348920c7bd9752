package controllers

import (
	"net/http"
	"strconv"

	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/bind"
	"github.com/adityakr/bazaari/pkg/response"
	"github.com/adityakr/bazaari/pkg/router"
)

// WishlistController mutates the session's wishlist.
type WishlistController struct {
	catalog *services.CatalogService
	shops   *shop.Manager
}

// NewWishlistController wires the controller.
func NewWishlistController(cat *services.CatalogService, shops *shop.Manager) *WishlistController {
	return &WishlistController{catalog: cat, shops: shops}
}

func (c *WishlistController) payload(s *shop.Session) map[string]interface{} {
	return map[string]interface{}{
		"items": s.Wishlist.Items(),
		"count": s.Wishlist.Count(),
	}
}

// Show returns the wishlist in insertion order.
func (c *WishlistController) Show(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "", c.payload(shopFor(r, c.shops)))
}

type wishlistInput struct {
	ProductID int `json:"productId" validate:"required,integer"`
}

// Toggle adds the product when absent and removes it when present.
func (c *WishlistController) Toggle(w http.ResponseWriter, r *http.Request) {
	var in wishlistInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product, ok := c.catalog.Store().Find(in.ProductID)
	if !ok {
		response.NotFound(w, "Product not found.")
		return
	}

	s := shopFor(r, c.shops)
	s.Wishlist.Toggle(product)
	response.OK(w, "Wishlist updated.", c.payload(s))
}

// Remove deletes a product from the wishlist. Absent products are a no-op.
func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(router.Param(r, "productId"))
	if err != nil {
		response.BadRequest(w, "Invalid product ID.")
		return
	}
	s := shopFor(r, c.shops)
	s.Wishlist.Remove(id)
	response.OK(w, "Removed from wishlist.", c.payload(s))
}

// MoveToCart moves a product from the wishlist into the cart in one step.
func (c *WishlistController) MoveToCart(w http.ResponseWriter, r *http.Request) {
	var in wishlistInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	s := shopFor(r, c.shops)
	if !s.Wishlist.Contains(in.ProductID) {
		response.NotFound(w, "Product is not on the wishlist.")
		return
	}
	product, ok := c.catalog.Store().Find(in.ProductID)
	if !ok {
		response.NotFound(w, "Product not found.")
		return
	}
	if err := s.Wishlist.MoveToCart(s.Cart, product); err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Moved to cart.", map[string]interface{}{
		"wishlist": c.payload(s),
		"cart": map[string]interface{}{
			"items":     s.Cart.Lines(),
			"itemCount": s.Cart.ItemCount(),
			"subtotal":  s.Cart.Subtotal(),
		},
	})
}
