package crypto

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyMaterial() (string, string) {
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, KeySize))
	iv := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x07}, IVSize))
	return key, iv
}

func newTestCipher(t *testing.T) *AESCipher {
	t.Helper()
	key, iv := testKeyMaterial()
	c, err := NewAESCipher(key, iv)
	require.NoError(t, err)
	return c
}

func TestAESCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	for _, plaintext := range []string{
		"",
		"a",
		"Password123!",
		"exactly-16-bytes",
		"a much longer secret that spans several AES blocks 0123456789",
		"ünïcödé ✓",
	} {
		ciphertext, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		_, err = base64.StdEncoding.DecodeString(ciphertext)
		require.NoError(t, err, "ciphertext must be base64")

		decrypted, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestAESCipher_Deterministic(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("Secret#1")
	require.NoError(t, err)
	second, err := c.Encrypt("Secret#1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := c.Encrypt("Secret#2")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	key, iv := testKeyMaterial()
	again, err := NewAESCipher(key, iv)
	require.NoError(t, err)
	third, err := again.Encrypt("Secret#1")
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestNewAESCipher_InvalidKeyMaterial(t *testing.T) {
	key, iv := testKeyMaterial()
	shortKey := base64.StdEncoding.EncodeToString(make([]byte, 16))
	shortIV := base64.StdEncoding.EncodeToString(make([]byte, 8))

	cases := []struct {
		name string
		key  string
		iv   string
	}{
		{"short key", shortKey, iv},
		{"short iv", key, shortIV},
		{"key not base64", "%%%", iv},
		{"iv not base64", key, "%%%"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewAESCipher(tc.key, tc.iv)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
		})
	}
}

func TestAESCipher_DecryptInvalid(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.Decrypt("not base64!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = c.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = c.Decrypt("")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	// a different key leaves garbage padding behind
	otherKey := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x11}, KeySize))
	_, iv := testKeyMaterial()
	other, err := NewAESCipher(otherKey, iv)
	require.NoError(t, err)
	ciphertext, err := other.Encrypt("Password123!")
	require.NoError(t, err)
	plain, err := c.Decrypt(ciphertext)
	if err == nil {
		assert.NotEqual(t, "Password123!", plain)
	}
}
