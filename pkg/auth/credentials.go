package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/adityakr/bazaari/config"
)

// Verifier hashes passwords at signup and checks them at login.
type Verifier interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// NewVerifier picks the credential scheme from PASSWORD_MODE.
// "bcrypt" hashes passwords; "plain" stores and compares them verbatim.
func NewVerifier() Verifier {
	if config.Get("PASSWORD_MODE", "plain") == "bcrypt" {
		return bcryptVerifier{}
	}
	return plainVerifier{}
}

type plainVerifier struct{}

func (plainVerifier) Hash(plain string) (string, error) { return plain, nil }
func (plainVerifier) Verify(stored, plain string) bool  { return stored == plain }

type bcryptVerifier struct{}

func (bcryptVerifier) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}

func (bcryptVerifier) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
