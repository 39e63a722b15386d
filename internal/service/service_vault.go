// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-pass-keeper-client/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/internal/flow"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/store"
	"github.com/MKhiriev/go-pass-keeper-client/internal/utils"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// profileApplier receives the profile that comes with every sync.
type profileApplier interface {
	ApplyProfile(ctx context.Context, profile models.Profile) error
}

type vaultService struct {
	vault    store.LocalVaultRepository
	adapter  adapter.ServerAdapter
	profiles profileApplier
	ids      *utils.UUIDGenerator

	mu     sync.Mutex
	userID string

	// one sync at a time
	syncMu sync.Mutex

	ciphers     *flow.StateFlow[datastate.DataState[[]models.Cipher]]
	collections *flow.StateFlow[datastate.DataState[[]models.Collection]]

	logger *logger.Logger
}

// NewVaultService creates a VaultService over the local vault repository
// and the server adapter. profiles may be nil. The streams stay Loading
// until Load or Sync is called.
func NewVaultService(vault store.LocalVaultRepository, serverAdapter adapter.ServerAdapter, profiles profileApplier, logger *logger.Logger) VaultService {
	return &vaultService{
		vault:       vault,
		adapter:     serverAdapter,
		profiles:    profiles,
		ids:         utils.NewUUIDGenerator(),
		ciphers:     flow.NewStateFlow(datastate.NewLoading[[]models.Cipher]()),
		collections: flow.NewStateFlow(datastate.NewLoading[[]models.Collection]()),
		logger:      logger,
	}
}

func (v *vaultService) CipherStream(ctx context.Context, cipherID string) <-chan datastate.DataState[*models.Cipher] {
	return datastate.MapStream(ctx, v.ciphers.Subscribe(ctx), func(ciphers []models.Cipher) *models.Cipher {
		for _, c := range ciphers {
			if c.ID == cipherID {
				return &c
			}
		}
		return nil
	})
}

func (v *vaultService) CollectionsStream(ctx context.Context) <-chan datastate.DataState[[]models.Collection] {
	return v.collections.Subscribe(ctx)
}

func (v *vaultService) Load(ctx context.Context, userID string) error {
	v.mu.Lock()
	v.userID = userID
	v.mu.Unlock()

	ciphers, err := v.vault.GetCiphers(ctx, userID)
	if err != nil {
		v.publishFailure(err)
		return fmt.Errorf("load local ciphers: %w", err)
	}
	collections, err := v.vault.GetCollections(ctx, userID)
	if err != nil {
		v.publishFailure(err)
		return fmt.Errorf("load local collections: %w", err)
	}

	v.logger.Debug().
		Str("func", "vaultService.Load").
		Str("user_id", userID).
		Int("ciphers", len(ciphers)).
		Int("collections", len(collections)).
		Msg("local vault loaded")

	// nothing cached yet, wait for the first sync
	if len(ciphers) == 0 && len(collections) == 0 {
		v.ciphers.Set(datastate.NewLoading[[]models.Cipher]())
		v.collections.Set(datastate.NewLoading[[]models.Collection]())
		return nil
	}

	v.ciphers.Set(datastate.NewPending(ciphers))
	v.collections.Set(datastate.NewPending(collections))
	return nil
}

func (v *vaultService) Sync(ctx context.Context) error {
	userID, err := v.activeUser()
	if err != nil {
		return err
	}

	v.syncMu.Lock()
	defer v.syncMu.Unlock()

	v.ciphers.Update(loadingIfEmpty[[]models.Cipher])
	v.collections.Update(loadingIfEmpty[[]models.Collection])

	resp, err := v.adapter.Sync(ctx)
	if err != nil {
		err = mapAdapterError(err)
		v.publishFailure(err)
		v.logger.Err(err).
			Str("func", "vaultService.Sync").
			Str("user_id", userID).
			Msg("vault sync failed")
		return fmt.Errorf("sync vault: %w", err)
	}

	if err = v.vault.ReplaceVault(ctx, userID, resp.Ciphers, resp.Folders, resp.Collections); err != nil {
		v.publishFailure(err)
		return fmt.Errorf("store synced vault: %w", err)
	}

	if v.profiles != nil {
		if err = v.profiles.ApplyProfile(ctx, resp.Profile); err != nil {
			v.logger.Warn().Err(err).
				Str("func", "vaultService.Sync").
				Str("user_id", userID).
				Msg("failed to apply synced profile")
		}
	}

	ciphers := resp.Ciphers
	if ciphers == nil {
		ciphers = []models.Cipher{}
	}
	collections := resp.Collections
	if collections == nil {
		collections = []models.Collection{}
	}
	v.ciphers.Set(datastate.NewLoaded(ciphers))
	v.collections.Set(datastate.NewLoaded(collections))

	v.logger.Info().
		Str("func", "vaultService.Sync").
		Str("user_id", userID).
		Int("ciphers", len(ciphers)).
		Int("collections", len(collections)).
		Msg("vault synced")
	return nil
}

func (v *vaultService) ShareCipher(ctx context.Context, cipherID string, cipher models.Cipher, collectionIDs []string) error {
	userID, err := v.activeUser()
	if err != nil {
		return err
	}

	updated, err := v.adapter.ShareCipher(ctx, cipherID, models.ShareCipherRequest{
		Cipher:        cipher,
		CollectionIDs: collectionIDs,
	})
	if err != nil {
		return fmt.Errorf("share cipher %s: %w", cipherID, mapAdapterError(err))
	}

	// an empty body means the server accepted the request as sent
	if updated.ID == "" {
		updated = cipher
		updated.ID = cipherID
		updated.CollectionIDs = slices.Clone(collectionIDs)
	}

	return v.storeCipher(ctx, userID, updated)
}

func (v *vaultService) CreateAttachment(ctx context.Context, cipherID string, cipher models.Cipher, fileName, path string) error {
	userID, err := v.activeUser()
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingAttachment, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingAttachment, err)
	}

	updated, err := v.adapter.CreateAttachment(ctx, cipherID, fileName, file)
	if err != nil {
		return fmt.Errorf("create attachment for %s: %w", cipherID, mapAdapterError(err))
	}

	if updated.ID == "" {
		updated = cipher
		updated.ID = cipherID
		updated.Attachments = append(slices.Clone(cipher.Attachments), models.Attachment{
			ID:       v.ids.Generate(),
			FileName: fileName,
			Size:     info.Size(),
			SizeName: humanize.Bytes(uint64(info.Size())),
		})
	}

	return v.storeCipher(ctx, userID, updated)
}

func (v *vaultService) DeleteAttachment(ctx context.Context, cipherID, attachmentID string) error {
	userID, err := v.activeUser()
	if err != nil {
		return err
	}

	if err = v.adapter.DeleteAttachment(ctx, cipherID, attachmentID); err != nil {
		return fmt.Errorf("delete attachment %s: %w", attachmentID, mapAdapterError(err))
	}

	cipher, err := v.vault.GetCipher(ctx, userID, cipherID)
	if err != nil {
		return fmt.Errorf("load cipher %s: %w", cipherID, mapAdapterError(err))
	}

	idx := slices.IndexFunc(cipher.Attachments, func(a models.Attachment) bool { return a.ID == attachmentID })
	if idx < 0 {
		v.logger.Warn().
			Str("func", "vaultService.DeleteAttachment").
			Str("cipher_id", cipherID).
			Str("attachment_id", attachmentID).
			Msg("deleted attachment was not in the local copy")
		return nil
	}
	cipher.Attachments = slices.Delete(slices.Clone(cipher.Attachments), idx, idx+1)

	return v.storeCipher(ctx, userID, cipher)
}

// storeCipher saves cipher locally and republishes the cipher list with
// the same status.
func (v *vaultService) storeCipher(ctx context.Context, userID string, cipher models.Cipher) error {
	if err := v.vault.SaveCipher(ctx, userID, cipher); err != nil {
		return fmt.Errorf("save cipher %s: %w", cipher.ID, err)
	}

	v.ciphers.Update(func(cur datastate.DataState[[]models.Cipher]) datastate.DataState[[]models.Cipher] {
		if !cur.HasData {
			return cur
		}
		next := slices.Clone(cur.Data)
		if idx := slices.IndexFunc(next, func(c models.Cipher) bool { return c.ID == cipher.ID }); idx >= 0 {
			next[idx] = cipher
		} else {
			next = append(next, cipher)
		}
		cur.Data = next
		return cur
	})
	return nil
}

func (v *vaultService) publishFailure(err error) {
	v.ciphers.Update(func(cur datastate.DataState[[]models.Cipher]) datastate.DataState[[]models.Cipher] {
		return failedState(err, cur)
	})
	v.collections.Update(func(cur datastate.DataState[[]models.Collection]) datastate.DataState[[]models.Collection] {
		return failedState(err, cur)
	})
}

// loadingIfEmpty turns a state without payload back into Loading while a
// refresh is running.
func loadingIfEmpty[T any](cur datastate.DataState[T]) datastate.DataState[T] {
	if cur.HasData {
		return cur
	}
	return datastate.NewLoading[T]()
}

func (v *vaultService) activeUser() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.userID == "" {
		return "", ErrNoActiveSession
	}
	return v.userID, nil
}
