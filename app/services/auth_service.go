package services

import (
	"context"
	"errors"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/repositories"
	"github.com/adityakr/bazaari/app/shop"
	"github.com/adityakr/bazaari/pkg/auth"
	"github.com/adityakr/bazaari/pkg/logger"
	"github.com/adityakr/bazaari/pkg/session"
)

// UserStore is the slice of the user repository the services need.
type UserStore interface {
	Find(ctx context.Context, id int) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
}

// AuthService handles signup, login and logout. A successful signup logs
// the user in immediately; logout also tears down the shopping session so
// cart and wishlist do not leak to the next visitor on the same browser.
type AuthService struct {
	users    UserStore
	verifier auth.Verifier
	sessions *session.Manager
	shops    *shop.Manager
}

// NewAuthService wires the service.
func NewAuthService(users UserStore, verifier auth.Verifier, sessions *session.Manager, shops *shop.Manager) *AuthService {
	return &AuthService{users: users, verifier: verifier, sessions: sessions, shops: shops}
}

// Signup registers a new account and logs it in. The duplicate check
// compares emails exactly as given; addresses differing only in case are
// distinct accounts.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (models.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, "", ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, "", err
	}

	hashed, err := s.verifier.Hash(password)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.users.Create(ctx, models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return models.User{}, "", ErrDuplicateEmail
	}
	if err != nil {
		return models.User{}, "", err
	}

	logger.Info("user registered", "user_id", user.ID)
	token, err := s.establish(ctx, user)
	return user, token, err
}

// Login checks credentials and establishes the session. Unknown email and
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}
	if !s.verifier.Verify(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	logger.Info("user logged in", "user_id", user.ID)
	token, err := s.establish(ctx, user)
	return user, token, err
}

// establish issues the access token and persists the session identity.
func (s *AuthService) establish(ctx context.Context, user models.User) (string, error) {
	token, err := auth.IssueToken(user)
	if err != nil {
		return "", err
	}
	err = s.sessions.Put(ctx, session.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})
	return token, err
}

// Logout clears the stored identity and discards the browser's cart and
// wishlist.
func (s *AuthService) Logout(ctx context.Context) error {
	s.shops.End(session.ID(ctx))
	return s.sessions.Clear(ctx)
}

// Current returns the identity persisted for this session. Anonymous
// sessions return a zero Identity.
func (s *AuthService) Current(ctx context.Context) session.Identity {
	return session.Get(ctx)
}
