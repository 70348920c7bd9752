package crypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := Encrypt("hello bazaar")
	require.NoError(t, err)
	assert.NotEqual(t, "hello bazaar", enc)

	dec, err := Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "hello bazaar", dec)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	a, err := Encrypt("same input")
	require.NoError(t, err)
	b, err := Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "a fresh nonce per message")
}

func TestDecryptRejectsGarbage(t *testing.T) {
	_, err := Decrypt("not-a-ciphertext")
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = Decrypt("")
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestDecryptRejectsTampering(t *testing.T) {
	enc, err := Encrypt("secret")
	require.NoError(t, err)

	tampered := []byte(enc)
	tampered[len(tampered)-2] ^= 0x01
	_, err = Decrypt(string(tampered))
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		UserID int    `json:"userId"`
		Name   string `json:"name"`
	}

	enc, err := EncryptJSON(payload{UserID: 7, Name: "Asha"})
	require.NoError(t, err)

	var out payload
	require.NoError(t, DecryptJSON(enc, &out))
	assert.Equal(t, payload{UserID: 7, Name: "Asha"}, out)
}
