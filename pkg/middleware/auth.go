package middleware

import (
	"net/http"
	"strings"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/auth"
	"github.com/adityakr/bazaari/pkg/rbac"
	"github.com/adityakr/bazaari/pkg/response"
)

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth rejects requests without a valid bearer token and injects the
// identity into the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w, "Authentication required.")
			return
		}
		claims, err := auth.ParseToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token.")
			return
		}
		ctx := auth.WithIdentity(r.Context(), claims.UserID, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the identity when a valid token is present but
// lets anonymous requests through untouched.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if claims, err := auth.ParseToken(token); err == nil {
				r = r.WithContext(auth.WithIdentity(r.Context(), claims.UserID, claims.Role))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole guards a route group behind one or more roles. Must run
// after Auth.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rbac.HasRole(r.Context(), roles...) {
				response.Forbidden(w, "You do not have permission to access this resource.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
