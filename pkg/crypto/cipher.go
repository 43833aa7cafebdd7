package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	// KeySize is the AES-256 key length in bytes
	KeySize = 32
	// IVSize is the CBC initialization vector length in bytes
	IVSize = aes.BlockSize
)

var (
	ErrInvalidKeyMaterial = errors.New("cipher key must be 32 bytes and iv must be 16 bytes")
	ErrInvalidCiphertext  = errors.New("invalid ciphertext")
)

// Cipher encrypts and decrypts secrets to and from opaque base64 strings.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AESCipher is AES-256-CBC with PKCS#7 padding, keyed by a single process-wide
// key and IV. Encryption is deterministic: equal plaintexts give equal ciphertexts.
type AESCipher struct {
	block cipher.Block
	iv    []byte
}

// NewAESCipher builds a cipher from base64-encoded key and IV.
func NewAESCipher(keyB64, ivB64 string) (*AESCipher, error) {
	key, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not valid base64", ErrInvalidKeyMaterial)
	}
	iv, err := base64.StdEncoding.DecodeString(ivB64)
	if err != nil {
		return nil, fmt.Errorf("%w: iv is not valid base64", ErrInvalidKeyMaterial)
	}
	return NewAESCipherFromBytes(key, iv)
}

// NewAESCipherFromBytes builds a cipher from raw key and IV bytes.
func NewAESCipherFromBytes(key, iv []byte) (*AESCipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d key bytes", ErrInvalidKeyMaterial, len(key))
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d iv bytes", ErrInvalidKeyMaterial, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	ivCopy := make([]byte, IVSize)
	copy(ivCopy, iv)
	return &AESCipher{block: block, iv: ivCopy}, nil
}

// Encrypt returns base64(AES-CBC(plaintext)).
func (c *AESCipher) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt.
func (c *AESCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", ErrInvalidCiphertext
	}

	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(out, raw)

	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidCiphertext
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, ErrInvalidCiphertext
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, ErrInvalidCiphertext
		}
	}
	return data[:len(data)-padding], nil
}
