package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/response"
)

// Recover converts handler panics into 500 responses instead of
// tearing down the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.Error(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
