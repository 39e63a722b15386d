// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the saved-state key and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds addresses and timeouts of the remote servers.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional command-line arguments left after flag
	// parsing (the screen to open and its parameters).
	Args []string
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// StateKey is the secret the saved-state encryption key is derived from.
	// Must be kept confidential.
	// Env: APP_STATE_KEY
	StateKey string `env:"STATE_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the addresses of the servers the client talks to.
type Adapter struct {
	// HTTPAddress is the base URL of the API server
	// (e.g. "https://api.example.com" or "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// IdentityAddress is the base URL of the identity server. Defaults to
	// HTTPAddress when empty.
	// Env: ADAPTER_IDENTITY_ADDRESS
	IdentityAddress string `env:"IDENTITY_ADDRESS"`

	// WebVaultAddress is the base URL of the web vault hosting the captcha
	// connector and recovery-code pages. Defaults to HTTPAddress when empty.
	// Env: ADAPTER_WEB_VAULT_ADDRESS
	WebVaultAddress string `env:"WEB_VAULT_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CallbackAddress is the loopback host:port the captcha callback
	// listener binds to (e.g. "127.0.0.1:8765"). Empty disables the
	// listener; captcha tokens are then pasted by hand.
	// Env: ADAPTER_CALLBACK_ADDRESS
	CallbackAddress string `env:"CALLBACK_ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval defines how often the vault is re-synchronised.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags (parsed from args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return loadLayers(envLayer(), flagsLayer(args), jsonLayer())
}
