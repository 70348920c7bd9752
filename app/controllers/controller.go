// Package controllers holds the HTTP handlers. Controllers parse and
// validate input, call a service and write the JSON envelope; business
// rules live one layer down.
package controllers

import (
	"net/http"

	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/session"
)

// shopFor returns the shopping session (cart + wishlist) bound to the
// request's browser session.
func shopFor(r *http.Request, shops *shop.Manager) *shop.Session {
	return shops.Session(session.ID(r.Context()))
}
