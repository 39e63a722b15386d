// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-client/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/store"
)

// ClientServices groups the services the screens and workers use.
type ClientServices struct {
	AuthService  AuthService
	VaultService VaultService
	SyncJob      SyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, hasher crypto.PasswordHasher, logger *logger.Logger) *ClientServices {
	authSvc := NewAuthService(storages.Accounts, serverAdapter, hasher, logger)
	vaultSvc := NewVaultService(storages.Vault, serverAdapter, authSvc, logger)

	return &ClientServices{
		AuthService:  authSvc,
		VaultService: vaultSvc,
		SyncJob:      NewSyncJob(vaultSvc, logger),
	}
}
