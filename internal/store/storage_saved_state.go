// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
)

const savedStateTimeout = 5 * time.Second

// SavedStateStorage persists screen snapshots encrypted in the saved_state
// table. It implements [viewmodel.SavedStateStore].
type SavedStateStorage struct {
	repo   SavedStateRepository
	sealer crypto.Sealer
}

var _ viewmodel.SavedStateStore = (*SavedStateStorage)(nil)

// NewSavedStateStorage wires the repository with the snapshot cipher.
func NewSavedStateStorage(repo SavedStateRepository, sealer crypto.Sealer) *SavedStateStorage {
	return &SavedStateStorage{repo: repo, sealer: sealer}
}

// Load implements [viewmodel.SavedStateStore].
func (s *SavedStateStorage) Load(key string, dst any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), savedStateTimeout)
	defer cancel()

	blob, err := s.repo.Get(ctx, key)
	if errors.Is(err, ErrSavedStateNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	plain, err := s.sealer.Open(blob)
	if err != nil {
		return false, fmt.Errorf("open saved state %q: %w", key, err)
	}

	if err := json.Unmarshal(plain, dst); err != nil {
		return false, fmt.Errorf("decode saved state %q: %w", key, err)
	}
	return true, nil
}

// Save implements [viewmodel.SavedStateStore].
func (s *SavedStateStorage) Save(key string, value any) error {
	plain, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode saved state %q: %w", key, err)
	}

	blob, err := s.sealer.Seal(plain)
	if err != nil {
		return fmt.Errorf("seal saved state %q: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), savedStateTimeout)
	defer cancel()

	return s.repo.Set(ctx, key, blob)
}

// Forget implements [viewmodel.SavedStateStore].
func (s *SavedStateStorage) Forget(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), savedStateTimeout)
	defer cancel()

	return s.repo.Delete(ctx, key)
}
