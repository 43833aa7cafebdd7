package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateKey returns n cryptographically random bytes.
// Used when provisioning cipher keys and IVs, never per record.
func GenerateKey(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid key length: %d", n)
	}
	bytes := make([]byte, n)
	if _, err := randomRead(bytes); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return bytes, nil
}

// GenerateKeyBase64 returns n random bytes encoded the way CIPHER_KEY and CIPHER_IV expect.
func GenerateKeyBase64(n int) (string, error) {
	bytes, err := GenerateKey(n)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}
