// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientArgs() []string {
	return []string{
		"-a", "http://127.0.0.1:8080",
		"-d", "/tmp/client.db",
		"-state-key", "secret",
		"-request-timeout", "10s",
		"-sync-interval", "1m",
	}
}

func TestGetClientConfig_DefaultsAddresses(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(append(validClientArgs(), "attachments", "c-1"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.IdentityAddress)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.WebVaultAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "secret", cfg.App.StateKey)
	assert.Equal(t, []string{"attachments", "c-1"}, cfg.Args)
}

func TestGetClientConfig_ExplicitIdentityAddress(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ADAPTER_IDENTITY_ADDRESS", "http://127.0.0.1:9000")

	cfg, err := GetClientConfig(validClientArgs())
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.IdentityAddress)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.WebVaultAddress)
}

func TestGetClientConfig_CallbackAddress(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(validClientArgs())
	require.NoError(t, err)
	assert.Empty(t, cfg.Adapter.CallbackAddress, "слушатель выключен по умолчанию")

	cfg, err = GetClientConfig(append([]string{"-callback-address", "127.0.0.1:8765"}, validClientArgs()...))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8765", cfg.Adapter.CallbackAddress)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{StateKey: "secret"},
			Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "/tmp/client.db"}},
			Workers: ClientWorkers{SyncInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "empty dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no sync interval", mutate: func(cfg *ClientConfig) { cfg.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "no state key", mutate: func(cfg *ClientConfig) { cfg.App.StateKey = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
