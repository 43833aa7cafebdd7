package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicCredentials(t *testing.T) {
	sealer := NewDeterministicCredentials(newTestCipher(t))

	sealed, err := sealer.Seal("Aa1!aa")
	require.NoError(t, err)
	assert.True(t, sealer.Matches("Aa1!aa", sealed))
	assert.False(t, sealer.Matches("Aa1!ab", sealed))
	assert.False(t, sealer.Matches("Aa1!aa", "tampered"))

	// equal secrets are detectable by ciphertext equality
	again, err := sealer.Seal("Aa1!aa")
	require.NoError(t, err)
	assert.Equal(t, sealed, again)
}

func TestBcryptCredentials(t *testing.T) {
	sealer := BcryptCredentials{}

	sealed, err := sealer.Seal("Aa1!aa")
	require.NoError(t, err)
	assert.True(t, sealer.Matches("Aa1!aa", sealed))
	assert.False(t, sealer.Matches("wrong", sealed))

	again, err := sealer.Seal("Aa1!aa")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again)
}

func TestNewCredentialSealer(t *testing.T) {
	c := newTestCipher(t)

	s, err := NewCredentialSealer(CredentialModeDeterministic, c)
	require.NoError(t, err)
	assert.IsType(t, &DeterministicCredentials{}, s)

	s, err = NewCredentialSealer("", c)
	require.NoError(t, err)
	assert.IsType(t, &DeterministicCredentials{}, s)

	s, err = NewCredentialSealer(CredentialModeBcrypt, nil)
	require.NoError(t, err)
	assert.IsType(t, BcryptCredentials{}, s)

	_, err = NewCredentialSealer(CredentialModeDeterministic, nil)
	assert.Error(t, err)

	_, err = NewCredentialSealer("rot13", c)
	assert.Error(t, err)
}
