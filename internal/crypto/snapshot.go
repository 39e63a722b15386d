// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	snapshotKeyLen = 32
	snapshotInfo   = "saved-state"
)

// ErrCiphertextTooShort is returned by [SnapshotCipher.Open] when the blob
// cannot even hold a nonce.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// SnapshotCipher encrypts saved screen state with AES-256-GCM. The key is
// derived once from the configured state key via HKDF-SHA256.
type SnapshotCipher struct {
	gcm cipher.AEAD
}

var _ Sealer = (*SnapshotCipher)(nil)

// NewSnapshotCipher derives the snapshot key from stateKey and prepares the
// AEAD. An empty stateKey is rejected.
func NewSnapshotCipher(stateKey string) (*SnapshotCipher, error) {
	if stateKey == "" {
		return nil, errors.New("empty state key")
	}

	key, err := deriveKey([]byte(stateKey), snapshotInfo)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &SnapshotCipher{gcm: gcm}, nil
}

// Seal implements [Sealer]. A fresh random nonce is generated per call.
func (s *SnapshotCipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return s.gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [Sealer].
func (s *SnapshotCipher) Open(blob []byte) ([]byte, error) {
	nonceSize := s.gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

func deriveKey(secret []byte, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	key := make([]byte, snapshotKeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("deriving key for %s: %w", info, err)
	}
	return key, nil
}
