// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper-client/internal/config"
	"github.com/MKhiriev/go-pass-keeper-client/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Vault is the local copy of ciphers, folders and collections.
	Vault LocalVaultRepository
	// Accounts holds signed-in accounts and their tokens.
	Accounts LocalAccountRepository
	// SavedState is the encrypted screen snapshot store.
	SavedState *SavedStateStorage

	db *DB
}

// NewClientStorages opens the SQLite file of cfg, migrates it and builds
// the repositories on top of it. Saved screen state and account tokens are
// sealed with sealer.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.Sealer, logger *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newClientStorages(db, sealer, logger), nil
}

func newClientStorages(db *DB, sealer crypto.Sealer, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Vault:      NewLocalVaultRepository(db, logger),
		Accounts:   NewLocalAccountRepository(db, sealer, logger),
		SavedState: NewSavedStateStorage(NewSavedStateRepository(db, logger), sealer),
		db:         db,
	}
}

// Close closes the underlying database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
