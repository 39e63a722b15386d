// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalVaultRepository keeps the last synced copy of the vault of every
// account known to this client.
type LocalVaultRepository interface {
	// ReplaceVault atomically replaces every cipher, folder and collection
	// of userID with the given sets.
	ReplaceVault(ctx context.Context, userID string, ciphers []models.Cipher, folders []models.Folder, collections []models.Collection) error

	// GetCiphers returns all ciphers of userID ordered by name.
	GetCiphers(ctx context.Context, userID string) ([]models.Cipher, error)

	// GetCipher returns a single cipher or [ErrCipherNotFound].
	GetCipher(ctx context.Context, userID, cipherID string) (models.Cipher, error)

	// SaveCipher inserts or replaces a single cipher.
	SaveCipher(ctx context.Context, userID string, cipher models.Cipher) error

	// GetCollections returns all collections visible to userID.
	GetCollections(ctx context.Context, userID string) ([]models.Collection, error)

	// GetFolders returns all folders of userID.
	GetFolders(ctx context.Context, userID string) ([]models.Folder, error)
}

// LocalAccountRepository stores signed-in accounts and remembers which one
// is active.
type LocalAccountRepository interface {
	// SaveAccount upserts the session and marks its account as the only
	// active one.
	SaveAccount(ctx context.Context, session models.Session) error

	// GetActiveAccount returns the active session or [ErrNoActiveAccount].
	GetActiveAccount(ctx context.Context) (models.Session, error)

	// ClearActive signs every account out locally. Stored vault data is
	// kept.
	ClearActive(ctx context.Context) error
}

// SavedStateRepository is a raw slot → blob table for screen snapshots.
type SavedStateRepository interface {
	// Get returns the blob stored under slot or [ErrSavedStateNotFound].
	Get(ctx context.Context, slot string) ([]byte, error)

	// Set replaces the blob stored under slot.
	Set(ctx context.Context, slot string, payload []byte) error

	// Delete removes slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, slot string) error
}
