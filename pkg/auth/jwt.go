// Package auth issues and verifies JWT access tokens and checks credentials.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/config"
)

// TokenTTL is the lifetime of an access token.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for expired, malformed or mis-signed tokens.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims is the JWT payload carried by every access token.
type Claims struct {
	UserID int         `json:"uid"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func secret() []byte { return []byte(config.Get("JWT_SECRET", "")) }

// IssueToken signs a token for the given user.
func IssueToken(u models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
