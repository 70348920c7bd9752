package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
)

func runRequest(t *testing.T, m *Manager, req *http.Request, fn func(ctx context.Context)) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r.Context())
	})).ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareMintsCookie(t *testing.T) {
	m := NewManager(NewMemoryStore(), false)

	var sid string
	rec := runRequest(t, m, httptest.NewRequest(http.MethodGet, "/", nil), func(ctx context.Context) {
		sid = ID(ctx)
		assert.False(t, Get(ctx).LoggedIn())
	})

	require.NotEmpty(t, sid)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, sid, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddlewareReusesExistingCookie(t *testing.T) {
	m := NewManager(NewMemoryStore(), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "known-sid"})

	rec := runRequest(t, m, req, func(ctx context.Context) {
		assert.Equal(t, "known-sid", ID(ctx))
	})
	assert.Empty(t, rec.Result().Cookies(), "no new cookie when one is presented")
}

func TestPutAndReload(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-1"})

	runRequest(t, m, req, func(ctx context.Context) {
		err := m.Put(ctx, Identity{UserID: 9, Name: "Asha", Email: "a@x.com", Role: models.RoleUser})
		require.NoError(t, err)
		assert.Equal(t, 9, Get(ctx).UserID, "Put updates the in-flight request too")
	})

	// A later request with the same cookie sees the stored identity.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-1"})
	runRequest(t, m, req2, func(ctx context.Context) {
		ident := Get(ctx)
		assert.True(t, ident.LoggedIn())
		assert.Equal(t, "Asha", ident.Name)
	})
}

func TestCorruptEntryIsDiscarded(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, false)

	// Something unreadable sits where the encrypted identity should be.
	require.NoError(t, store.Set(context.Background(), "sid-bad", "not-encrypted-garbage", time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-bad"})

	runRequest(t, m, req, func(ctx context.Context) {
		assert.False(t, Get(ctx).LoggedIn(), "corrupt entry falls back to anonymous")
	})

	_, err := store.Get(context.Background(), "sid-bad")
	assert.ErrorIs(t, err, ErrNotFound, "corrupt entry is removed, not retried forever")
}

func TestClear(t *testing.T) {
	m := NewManager(NewMemoryStore(), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "sid-2"})

	runRequest(t, m, req, func(ctx context.Context) {
		require.NoError(t, m.Put(ctx, Identity{UserID: 3}))
		require.NoError(t, m.Clear(ctx))
		assert.False(t, Get(ctx).LoggedIn())
	})
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "sid", "v", 10*time.Millisecond))

	v, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	time.Sleep(20 * time.Millisecond)
	_, err = store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, ErrNotFound)
}
