// Package routes maps URLs to controllers.
package routes

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/adityakr/bazaari/app/controllers"
	"github.com/adityakr/bazaari/app/models"
	pkggraphql "github.com/adityakr/bazaari/pkg/graphql"
	"github.com/adityakr/bazaari/pkg/metrics"
	"github.com/adityakr/bazaari/pkg/middleware"
	"github.com/adityakr/bazaari/pkg/response"
	"github.com/adityakr/bazaari/pkg/router"
	"github.com/adityakr/bazaari/pkg/ws"
)

// Controllers bundles everything the route table needs.
type Controllers struct {
	Products *controllers.ProductController
	Auth     *controllers.AuthController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
	Orders   *controllers.OrderController
	Reviews  *controllers.ReviewController
	Schema   graphql.Schema
	Hub      *ws.Hub
}

// Register installs the API route table.
func Register(r *router.Router, c Controllers) {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.OK(w, "ok", nil)
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/ws/orders", c.Hub.Handler)

	r.Route("/api", func(api *router.Router) {
		// Public catalogue surface.
		api.Get("/products", c.Products.Index)
		api.Get("/products/categories", c.Products.Categories)
		api.Get("/products/{id}", c.Products.Show)
		api.Get("/products/{id}/reviews", c.Reviews.Index)
		api.Post("/graphql", pkggraphql.Handler(c.Schema))

		// AI copywriter proxy.
		api.Post("/generate-description", c.Products.GenerateDescription)

		// Auth.
		api.Post("/auth/signup", c.Auth.Signup)
		api.Post("/auth/login", c.Auth.Login)
		api.Post("/auth/logout", c.Auth.Logout)
		api.Get("/auth/me", c.Auth.Me)

		// Cart and wishlist ride on the browser session; login not required.
		api.Route("/cart", func(g *router.Router) {
			g.Get("/", c.Cart.Show)
			g.Post("/", c.Cart.Add)
			g.Put("/{productId}", c.Cart.UpdateQuantity)
			g.Delete("/{productId}", c.Cart.Remove)
			g.Delete("/", c.Cart.Clear)
		})
		api.Route("/wishlist", func(g *router.Router) {
			g.Get("/", c.Wishlist.Show)
			g.Post("/toggle", c.Wishlist.Toggle)
			g.Post("/move-to-cart", c.Wishlist.MoveToCart)
			g.Delete("/{productId}", c.Wishlist.Remove)
		})

		// Checkout and history require a logged-in user.
		api.Group(func(g *router.Router) {
			g.Use(middleware.Auth)
			g.Post("/orders", c.Orders.Checkout)
			g.Get("/orders", c.Orders.Index)
			g.Get("/orders/{id}", c.Orders.Show)
			g.Post("/products/{id}/reviews", c.Reviews.Create)
		})

		// Admin surface.
		api.Route("/admin", func(g *router.Router) {
			g.Use(middleware.Auth, middleware.RequireRole(models.RoleAdmin))
			g.Get("/orders", c.Orders.AdminIndex)
			g.Patch("/orders/{id}/status", c.Orders.AdvanceStatus)
			g.Post("/products", c.Products.Create)
			g.Put("/products/{id}", c.Products.Update)
			g.Delete("/products/{id}", c.Products.Delete)
			g.Post("/products/{id}/image", c.Products.UploadImage)
		})
	})
}
