// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package creds

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/pbkdf2"

	"github.com/tixctl/tixctl/internal/log"
)

// ErrNoCredential indicates that no stored credential exists for a host.
var ErrNoCredential = errors.New("no stored credential")

const (
	// pbkdf2Iterations is the work factor used when deriving an encryption
	// key from a passphrase.
	pbkdf2Iterations = 600000
	keyLength        = 32
	saltLength       = 16
)

// HostCredential is a stored API token for a single host. An encrypted token
// carries the PBKDF2 parameters needed to re-derive the key.
type HostCredential struct {
	Token      string `json:"token"`
	Encrypted  bool   `json:"encrypted,omitempty"`
	Salt       string `json:"salt,omitempty"`
	Iterations int    `json:"iterations,omitempty"`
	KeyLength  int    `json:"key_length,omitempty"`
}

// File is the on-disk credentials document, keyed by host.
type File struct {
	Hosts map[string]HostCredential `json:"hosts"`
}

// Path returns the location of the credentials file. TIXCTL_CREDS_FILE
// overrides the default of credentials.json next to the config file.
func Path() (string, error) {
	if p, ok := os.LookupEnv("TIXCTL_CREDS_FILE"); ok {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tixctl", "credentials.json"), nil
}

// Store saves a token for a host, creating the credentials file if needed. A
// non-empty passphrase encrypts the token at rest.
func Store(host string, token string, passphrase string) error {
	path, err := Path()
	if err != nil {
		return err
	}

	file := load(path)
	if file.Hosts == nil {
		file.Hosts = make(map[string]HostCredential)
	}

	cred := HostCredential{Token: token}
	if passphrase != "" {
		cred, err = encrypt(token, passphrase)
		if err != nil {
			return err
		}
	}
	file.Hosts[host] = cred

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	log.Debugf("storing credential: host=%s, path=%s", host, path)
	return os.WriteFile(path, data, 0o600)
}

// Token returns the stored token for a host. For encrypted credentials the
// passphrase function is called to obtain the passphrase; it is typically an
// interactive prompt.
func Token(host string, passphraseFn func() (string, error)) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	file := load(path)
	cred, ok := file.Hosts[host]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoCredential, host)
	}

	if !cred.Encrypted {
		return cred.Token, nil
	}

	if passphraseFn == nil {
		passphraseFn = GetPassphrase
	}
	passphrase, err := passphraseFn()
	if err != nil {
		return "", err
	}

	return decrypt(cred, passphrase)
}

// Forget removes the stored credential for a host. Removing an unknown host
// is not an error.
func Forget(host string) error {
	path, err := Path()
	if err != nil {
		return err
	}

	file := load(path)
	if _, ok := file.Hosts[host]; !ok {
		return nil
	}
	delete(file.Hosts, host)

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// load reads the credentials file, returning an empty document when the file
// is missing or unreadable.
func load(path string) File {
	var file File

	data, err := os.ReadFile(path)
	if err != nil {
		return file
	}

	if err := json.Unmarshal(data, &file); err != nil {
		log.Warnf("malformed credentials file: path=%s, err=%v", path, err)
	}
	return file
}

// encrypt seals a token with a key derived from the passphrase. The nonce is
// prepended to the ciphertext.
func encrypt(token string, passphrase string) (HostCredential, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return HostCredential{}, err
	}

	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, keyLength, sha512.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return HostCredential{}, err
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return HostCredential{}, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return HostCredential{}, err
	}

	sealed := aesGCM.Seal(nonce, nonce, []byte(token), nil)

	return HostCredential{
		Token:      base64.StdEncoding.EncodeToString(sealed),
		Encrypted:  true,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Iterations: pbkdf2Iterations,
		KeyLength:  keyLength,
	}, nil
}

// decrypt opens an encrypted credential using the stored PBKDF2 parameters.
func decrypt(cred HostCredential, passphrase string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(cred.Salt)
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cred.Token)
	if err != nil {
		return "", fmt.Errorf("failed to decode token: %w", err)
	}

	key := pbkdf2.Key([]byte(passphrase), salt, cred.Iterations, cred.KeyLength, sha512.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", fmt.Errorf(
			"ciphertext too short: expected at least %d bytes, got %d",
			nonceSize,
			len(ciphertext),
		)
	}

	nonce := ciphertext[:nonceSize]
	sealed := ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}
