package crypto

import (
	"crypto/subtle"
	"fmt"
)

// CredentialMode selects how identity secrets are stored and compared.
type CredentialMode string

const (
	// CredentialModeDeterministic stores AES ciphertext and compares a fresh
	// encryption of the submitted secret against it. Equal secrets across
	// identities produce equal ciphertexts. Kept for existing stored credentials.
	CredentialModeDeterministic CredentialMode = "deterministic"
	// CredentialModeBcrypt stores a salted bcrypt hash.
	CredentialModeBcrypt CredentialMode = "bcrypt"
)

// CredentialSealer turns a secret into its stored form and checks candidates against it.
type CredentialSealer interface {
	Seal(secret string) (string, error)
	Matches(secret, sealed string) bool
}

// DeterministicCredentials compares secrets by ciphertext equality.
type DeterministicCredentials struct {
	cipher Cipher
}

// NewDeterministicCredentials wraps a deterministic cipher.
func NewDeterministicCredentials(c Cipher) *DeterministicCredentials {
	return &DeterministicCredentials{cipher: c}
}

func (d *DeterministicCredentials) Seal(secret string) (string, error) {
	return d.cipher.Encrypt(secret)
}

func (d *DeterministicCredentials) Matches(secret, sealed string) bool {
	fresh, err := d.cipher.Encrypt(secret)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(fresh), []byte(sealed)) == 1
}

// BcryptCredentials stores secrets as bcrypt hashes.
type BcryptCredentials struct{}

func (BcryptCredentials) Seal(secret string) (string, error) {
	return HashPassword(secret)
}

func (BcryptCredentials) Matches(secret, sealed string) bool {
	return CheckPassword(secret, sealed)
}

// NewCredentialSealer returns the sealer for mode. The cipher is only used by
// the deterministic mode.
func NewCredentialSealer(mode CredentialMode, c Cipher) (CredentialSealer, error) {
	switch mode {
	case CredentialModeDeterministic, "":
		if c == nil {
			return nil, fmt.Errorf("deterministic credentials require a cipher")
		}
		return NewDeterministicCredentials(c), nil
	case CredentialModeBcrypt:
		return BcryptCredentials{}, nil
	default:
		return nil, fmt.Errorf("unknown credential mode %q", mode)
	}
}
