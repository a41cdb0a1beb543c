// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2 cost factor for every stored credential.
	// Changing it invalidates existing hashes.
	Iterations = 120_000

	// SaltSize is the number of random bytes drawn for a new salt.
	SaltSize = 16

	// KeySize is the derived key length, equal to the SHA-256 output size.
	KeySize = sha256.Size
)

// credentialService is the private implementation of [CredentialService].
type credentialService struct {
	iterations int
	saltSize   int
	keySize    int
	random     io.Reader
}

// NewCredentialService constructs a [CredentialService] with the production
// PBKDF2 parameters.
func NewCredentialService() CredentialService {
	return &credentialService{
		iterations: Iterations,
		saltSize:   SaltSize,
		keySize:    KeySize,
		random:     rand.Reader,
	}
}

// Hash implements [CredentialService].
func (c *credentialService) Hash(password string, salt []byte) (string, string, error) {
	if salt == nil {
		salt = make([]byte, c.saltSize)
		if _, err := io.ReadFull(c.random, salt); err != nil {
			return "", "", fmt.Errorf("%w: %w", ErrSaltGeneration, err)
		}
	}

	key := c.derive(password, salt)
	return base64.StdEncoding.EncodeToString(salt), base64.StdEncoding.EncodeToString(key), nil
}

// Verify implements [CredentialService].
func (c *credentialService) Verify(password, saltB64, hashB64 string) bool {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	// derive always runs so that a malformed length does not return faster
	// than a wrong password
	key := c.derive(password, salt)
	return subtle.ConstantTimeCompare(key, expected) == 1
}

func (c *credentialService) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, c.keySize, sha256.New)
}

var defaultService = NewCredentialService()

// HashPassword derives a credential with the production parameters.
// See [CredentialService.Hash].
func HashPassword(password string, salt []byte) (saltB64, hashB64 string, err error) {
	return defaultService.Hash(password, salt)
}

// VerifyPassword checks password against a stored credential with the
// production parameters. See [CredentialService.Verify].
func VerifyPassword(password, saltB64, hashB64 string) bool {
	return defaultService.Verify(password, saltB64, hashB64)
}
