package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"hubtel-wallet.backend/pkg/crypto"
)

const (
	cipherKeyBytes  = 32
	cipherIVBytes   = 16
	signingKeyBytes = 48
)

var (
	generateKeyFn = crypto.GenerateKeyBase64
	fatalfFn      = log.Fatalf
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Getenv); err != nil {
		fatalfFn("keygen: %v", err)
	}
}

// run prints fresh key material as env lines, or with -seal prints the stored
// form of a password under the CIPHER_KEY/CIPHER_IV already in the environment.
func run(args []string, out io.Writer, getenv func(string) string) error {
	fs := flag.NewFlagSet("keygen", flag.ContinueOnError)
	fs.SetOutput(out)
	seal := fs.String("seal", "", "password to seal with the configured cipher")
	mode := fs.String("mode", string(crypto.CredentialModeDeterministic), "credential mode: deterministic or bcrypt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seal != "" {
		return sealPassword(out, *seal, crypto.CredentialMode(*mode), getenv)
	}

	for _, entry := range []struct {
		name string
		size int
	}{
		{"CIPHER_KEY", cipherKeyBytes},
		{"CIPHER_IV", cipherIVBytes},
		{"JWT_SIGNING_KEY", signingKeyBytes},
	} {
		value, err := generateKeyFn(entry.size)
		if err != nil {
			return fmt.Errorf("generate %s: %w", entry.name, err)
		}
		fmt.Fprintf(out, "%s=%s\n", entry.name, value)
	}
	return nil
}

func sealPassword(out io.Writer, password string, mode crypto.CredentialMode, getenv func(string) string) error {
	key, iv := getenv("CIPHER_KEY"), getenv("CIPHER_IV")
	if key == "" || iv == "" {
		return errors.New("CIPHER_KEY and CIPHER_IV must be set to seal a password")
	}
	cipher, err := crypto.NewAESCipher(key, iv)
	if err != nil {
		return err
	}
	sealer, err := crypto.NewCredentialSealer(mode, cipher)
	if err != nil {
		return err
	}
	sealed, err := sealer.Seal(password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "SECRET=%s\n", sealed)
	return nil
}
