// Package rbac provides role checks for route guards.
package rbac

import (
	"context"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/auth"
)

// HasRole reports whether the request identity carries one of the given roles.
func HasRole(ctx context.Context, roles ...models.Role) bool {
	current := auth.RoleFromCtx(ctx)
	if current == "" {
		return false
	}
	for _, r := range roles {
		if current == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the request identity is an admin.
func IsAdmin(ctx context.Context) bool {
	return HasRole(ctx, models.RoleAdmin)
}

// IsGuest reports whether the request carries no identity at all.
func IsGuest(ctx context.Context) bool {
	return auth.UserIDFromCtx(ctx) == 0
}
