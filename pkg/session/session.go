// Package session tracks browser sessions with an encrypted cookie-backed
// store. Each session gets an opaque ID in a cookie; the identity payload
// lives server-side in a key-value store, encrypted at rest.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/pkg/crypt"
	"github.com/adityakr/bazaari/pkg/logger"
)

// CookieName is the session cookie sent to the browser.
const CookieName = "bazaari_session"

// TTL is how long a session entry survives in the backing store.
const TTL = 7 * 24 * time.Hour

// ErrNotFound is returned when a session has no stored entry.
var ErrNotFound = errors.New("session: not found")

// Identity is the payload persisted per session. A zero UserID means the
// session is anonymous.
type Identity struct {
	UserID int         `json:"userId"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

// LoggedIn reports whether the identity belongs to an authenticated user.
func (i Identity) LoggedIn() bool { return i.UserID != 0 }

// Store persists session entries by session ID.
type Store interface {
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, value string, ttl time.Duration) error
	Remove(ctx context.Context, sid string) error
}

// Manager couples a Store with cookie handling and payload encryption.
type Manager struct {
	store  Store
	secure bool
}

// NewManager builds a Manager. secure controls the cookie Secure flag.
func NewManager(store Store, secure bool) *Manager {
	return &Manager{store: store, secure: secure}
}

type ctxKey struct{}

type state struct {
	sid      string
	identity Identity
}

// Middleware ensures every request carries a session: it reads the cookie,
// mints one when missing, loads the stored identity and places both in the
// request context. A corrupt or undecryptable entry is discarded and the
// session continues anonymously.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(CookieName); err == nil {
			sid = c.Value
		}
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, m.cookie(sid))
		}

		ident := m.load(r.Context(), sid)
		st := &state{sid: sid, identity: ident}
		ctx := context.WithValue(r.Context(), ctxKey{}, st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Manager) cookie(sid string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) load(ctx context.Context, sid string) Identity {
	raw, err := m.store.Get(ctx, sid)
	if err != nil || raw == "" {
		return Identity{}
	}
	var ident Identity
	if err := crypt.DecryptJSON(raw, &ident); err != nil {
		// Entry is unreadable. Clear it and start over anonymously.
		logger.Warn("session: discarding corrupt entry", "sid", sid, "error", err)
		_ = m.store.Remove(ctx, sid)
		return Identity{}
	}
	return ident
}

// ID returns the session ID for the current request, or "" outside the
// middleware.
func ID(ctx context.Context) string {
	if st, ok := ctx.Value(ctxKey{}).(*state); ok {
		return st.sid
	}
	return ""
}

// Get returns the identity for the current request.
func Get(ctx context.Context) Identity {
	if st, ok := ctx.Value(ctxKey{}).(*state); ok {
		return st.identity
	}
	return Identity{}
}

// Put persists ident for the current session and updates the in-flight
// request context.
func (m *Manager) Put(ctx context.Context, ident Identity) error {
	st, ok := ctx.Value(ctxKey{}).(*state)
	if !ok {
		return ErrNotFound
	}
	enc, err := crypt.EncryptJSON(ident)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, st.sid, enc, TTL); err != nil {
		return err
	}
	st.identity = ident
	return nil
}

// Clear wipes the stored identity for the current session.
func (m *Manager) Clear(ctx context.Context) error {
	st, ok := ctx.Value(ctxKey{}).(*state)
	if !ok {
		return ErrNotFound
	}
	st.identity = Identity{}
	return m.store.Remove(ctx, st.sid)
}
