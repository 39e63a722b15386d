// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/argon2"
)

// authSalt domain-separates the server hash from the KEK.
const authSalt = "go-pass-keeper-auth"

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// MasterPasswordHash implements [PasswordHasher]. The normalised email acts
// as the Argon2id salt so that the same password yields different hashes
// for different accounts.
func (p *passwordHasher) MasterPasswordHash(password, email string) string {
	salt := []byte(strings.ToLower(strings.TrimSpace(email)))
	kek := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	h := sha256.New()
	h.Write(kek)
	h.Write([]byte(authSalt))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
