package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
)

func TestIssueAndParse(t *testing.T) {
	user := models.User{ID: 42, Email: "asha@example.com", Role: models.RoleUser}

	token, err := IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, "asha@example.com", claims.Subject)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsTampering(t *testing.T) {
	token, err := IssueToken(models.User{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	tampered := token[:len(token)-3] + "xyz"
	_, err = ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifierModes(t *testing.T) {
	plain := plainVerifier{}
	h, err := plain.Hash("secret123")
	require.NoError(t, err)
	assert.Equal(t, "secret123", h)
	assert.True(t, plain.Verify(h, "secret123"))
	assert.False(t, plain.Verify(h, "other"))

	bc := bcryptVerifier{}
	h, err = bc.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", h)
	assert.True(t, bc.Verify(h, "secret123"))
	assert.False(t, bc.Verify(h, "other"))
}
