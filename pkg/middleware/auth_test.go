package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/auth"
)

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := auth.IssueToken(models.User{ID: 5, Email: "x@y.z", Role: role})
	require.NoError(t, err)
	return token
}

func protected() (http.Handler, *int) {
	var seenUserID int
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = auth.UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seenUserID
}

func TestAuthRejectsMissingToken(t *testing.T) {
	h, _ := protected()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsBadToken(t *testing.T) {
	h, _ := protected()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthInjectsIdentity(t *testing.T) {
	h, seen := protected()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, *seen)
}

func TestRequireRole(t *testing.T) {
	h := Auth(RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleUser))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, models.RoleAdmin))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptionalAuthLetsAnonymousThrough(t *testing.T) {
	var userID int
	h := OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = auth.UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, userID)
}
