package auth

import (
	"context"

	"github.com/adityakr/bazaari/app/models"
)

type userIDKey struct{}
type roleKey struct{}

// WithIdentity stores the authenticated identity in ctx.
func WithIdentity(ctx context.Context, userID int, role models.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return context.WithValue(ctx, roleKey{}, role)
}

// UserIDFromCtx returns the authenticated user ID, or 0 when anonymous.
func UserIDFromCtx(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey{}).(int); ok {
		return id
	}
	return 0
}

// RoleFromCtx returns the authenticated role, or "" when anonymous.
func RoleFromCtx(ctx context.Context) models.Role {
	if role, ok := ctx.Value(roleKey{}).(models.Role); ok {
		return role
	}
	return ""
}
