package main

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hubtel-wallet.backend/pkg/crypto"
)

var testEnv = map[string]string{
	"CIPHER_KEY": "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=",
	"CIPHER_IV":  "ZmVkY2JhOTg3NjU0MzIxMA==",
}

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func parseEnvLines(t *testing.T, text string) map[string]string {
	t.Helper()
	values := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		name, value, ok := strings.Cut(line, "=")
		require.True(t, ok, "line %q", line)
		values[name] = value
	}
	return values
}

func TestRun_PrintsKeyMaterial(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, envFrom(nil)))

	values := parseEnvLines(t, out.String())
	for name, size := range map[string]int{"CIPHER_KEY": 32, "CIPHER_IV": 16, "JWT_SIGNING_KEY": 48} {
		raw, err := base64.StdEncoding.DecodeString(values[name])
		require.NoError(t, err, name)
		assert.Len(t, raw, size, name)
	}

	_, err := crypto.NewAESCipher(values["CIPHER_KEY"], values["CIPHER_IV"])
	assert.NoError(t, err)
}

func TestRun_GenerateFailure(t *testing.T) {
	orig := generateKeyFn
	t.Cleanup(func() { generateKeyFn = orig })
	generateKeyFn = func(int) (string, error) { return "", errors.New("entropy unavailable") }

	err := run(nil, &bytes.Buffer{}, envFrom(nil))
	assert.ErrorContains(t, err, "generate CIPHER_KEY")
}

func TestRun_SealDeterministic(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-seal", "Sup3r$ecret"}, &out, envFrom(testEnv)))

	sealed := parseEnvLines(t, out.String())["SECRET"]
	cipher, err := crypto.NewAESCipher(testEnv["CIPHER_KEY"], testEnv["CIPHER_IV"])
	require.NoError(t, err)
	plain, err := cipher.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "Sup3r$ecret", plain)
}

func TestRun_SealBcrypt(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-seal", "Sup3r$ecret", "-mode", "bcrypt"}, &out, envFrom(testEnv)))

	sealed := parseEnvLines(t, out.String())["SECRET"]
	assert.True(t, crypto.CheckPassword("Sup3r$ecret", sealed))
}

func TestRun_SealErrors(t *testing.T) {
	err := run([]string{"-seal", "pw"}, &bytes.Buffer{}, envFrom(nil))
	assert.ErrorContains(t, err, "CIPHER_KEY and CIPHER_IV must be set")

	err = run([]string{"-seal", "pw"}, &bytes.Buffer{}, envFrom(map[string]string{"CIPHER_KEY": "c2hvcnQ=", "CIPHER_IV": "c2hvcnQ="}))
	assert.Error(t, err)

	err = run([]string{"-seal", "pw", "-mode", "rot13"}, &bytes.Buffer{}, envFrom(testEnv))
	assert.Error(t, err)

	err = run([]string{"-unknown"}, &bytes.Buffer{}, envFrom(nil))
	assert.Error(t, err)
}
