// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Errors of [ClientConfig.validate]. Each names the config group at fault.
var (
	ErrInvalidAppConfigs     = errors.New("app: state key is required")
	ErrInvalidAdapterConfigs = errors.New("adapter: address and request timeout are required")
	ErrInvalidStorageConfigs = errors.New("storage: an on-disk database path is required")
	ErrInvalidWorkerConfigs  = errors.New("workers: sync interval is required")

	// ErrInvalidDurations is returned for a negative timeout or interval.
	ErrInvalidDurations = errors.New("durations must not be negative")
)
