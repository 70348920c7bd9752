// Package router wraps chi with a small fluent surface for route
// registration, groups and middleware.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router wraps a chi.Mux.
type Router struct {
	mux *chi.Mux
}

// New builds an empty router.
func New() *Router {
	return &Router{mux: chi.NewRouter()}
}

// ServeHTTP makes Router usable anywhere an http.Handler is expected.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Use appends middleware to the chain. Must be called before routes are added.
func (r *Router) Use(mws ...func(http.Handler) http.Handler) *Router {
	r.mux.Use(mws...)
	return r
}

// Get registers a GET route.
func (r *Router) Get(pattern string, h http.HandlerFunc) *Router {
	r.mux.Get(pattern, h)
	return r
}

// Post registers a POST route.
func (r *Router) Post(pattern string, h http.HandlerFunc) *Router {
	r.mux.Post(pattern, h)
	return r
}

// Put registers a PUT route.
func (r *Router) Put(pattern string, h http.HandlerFunc) *Router {
	r.mux.Put(pattern, h)
	return r
}

// Patch registers a PATCH route.
func (r *Router) Patch(pattern string, h http.HandlerFunc) *Router {
	r.mux.Patch(pattern, h)
	return r
}

// Delete registers a DELETE route.
func (r *Router) Delete(pattern string, h http.HandlerFunc) *Router {
	r.mux.Delete(pattern, h)
	return r
}

// HandleFunc registers a route for every HTTP method.
func (r *Router) HandleFunc(pattern string, h http.HandlerFunc) *Router {
	r.mux.HandleFunc(pattern, h)
	return r
}

// Handle mounts any http.Handler at the given pattern.
func (r *Router) Handle(pattern string, h http.Handler) *Router {
	r.mux.Handle(pattern, h)
	return r
}

// Group creates a sub-router with its own middleware chain, mounted inline.
func (r *Router) Group(fn func(g *Router)) *Router {
	r.mux.Group(func(cr chi.Router) {
		fn(&Router{mux: cr.(*chi.Mux)})
	})
	return r
}

// Route mounts a sub-router under a path prefix.
func (r *Router) Route(pattern string, fn func(g *Router)) *Router {
	r.mux.Route(pattern, func(cr chi.Router) {
		fn(&Router{mux: cr.(*chi.Mux)})
	})
	return r
}

// Param reads a URL path parameter from the request.
func Param(req *http.Request, key string) string {
	return chi.URLParam(req, key)
}

// RouteInfo describes one registered route.
type RouteInfo struct {
	Method  string
	Pattern string
}

// Routes walks the routing tree and lists every registered route.
func (r *Router) Routes() []RouteInfo {
	var out []RouteInfo
	walker := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		out = append(out, RouteInfo{Method: method, Pattern: route})
		return nil
	}
	_ = chi.Walk(r.mux, walker)
	return out
}
