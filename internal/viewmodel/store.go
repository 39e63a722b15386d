// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"encoding/json"
	"fmt"
	"sync"
)

//go:generate mockgen -source=store.go -destination=../mock/saved_state_store_mock.go -package=mock

// SavedStateStore is the key-value slot a screen writes its whole state into
// after every change, and reads from when it is created again.
type SavedStateStore interface {
	// Load decodes the value stored under key into dst. It reports false
	// when nothing is stored under key.
	Load(key string, dst any) (bool, error)

	// Save replaces the value stored under key.
	Save(key string, value any) error

	// Forget removes key. Forgetting a missing key is not an error.
	Forget(key string) error
}

// MemoryStore is a process-local SavedStateStore. Values are kept JSON
// encoded, so restoring from it goes through the same encoding as the
// on-disk store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Load implements SavedStateStore.
func (m *MemoryStore) Load(key string, dst any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode saved state %q: %w", key, err)
	}
	return true, nil
}

// Save implements SavedStateStore.
func (m *MemoryStore) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode saved state %q: %w", key, err)
	}

	m.mu.Lock()
	m.values[key] = raw
	m.mu.Unlock()
	return nil
}

// Forget implements SavedStateStore.
func (m *MemoryStore) Forget(key string) error {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}
