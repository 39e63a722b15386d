// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service is the persistence layer the client screens talk to.
//
// It combines the local SQLite copy of the vault (internal/store) with the
// remote servers (internal/adapter) and exposes the result as reactive
// [datastate.DataState] streams plus a handful of one-shot operations.
// Streams never fail: failures are folded into the stream's status, keeping
// the last known data as stale content.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService serves the vault of the active account.
type VaultService interface {
	// CipherStream emits the state of a single cipher. The payload is nil
	// when the vault is known but holds no cipher with that id. The channel
	// closes when ctx is done.
	CipherStream(ctx context.Context, cipherID string) <-chan datastate.DataState[*models.Cipher]

	// CollectionsStream emits the collections visible to the active account.
	CollectionsStream(ctx context.Context) <-chan datastate.DataState[[]models.Collection]

	// Load publishes the locally stored vault of userID as Pending data.
	Load(ctx context.Context, userID string) error

	// Sync downloads the vault from the server, stores it locally and
	// publishes it as Loaded. Failures are published on the streams and
	// returned.
	Sync(ctx context.Context) error

	// ShareCipher moves cipher into its organization, assigning it to
	// collectionIDs.
	ShareCipher(ctx context.Context, cipherID string, cipher models.Cipher, collectionIDs []string) error

	// CreateAttachment uploads the file at path as a new attachment named
	// fileName.
	CreateAttachment(ctx context.Context, cipherID string, cipher models.Cipher, fileName, path string) error

	// DeleteAttachment removes an attachment of cipherID.
	DeleteAttachment(ctx context.Context, cipherID, attachmentID string) error
}

// AuthService signs accounts in and out and publishes the session state.
type AuthService interface {
	// UserStateStream emits the signed-in accounts. The payload is never
	// nil once Loaded.
	UserStateStream(ctx context.Context) <-chan datastate.DataState[*models.UserState]

	// Login hashes the master password and performs the login. It never
	// returns an error: failures are reported as [models.LoginError].
	Login(ctx context.Context, req models.LoginRequest) models.LoginResult

	// ResendVerificationEmail asks the server to e-mail a new two-factor
	// code to email.
	ResendVerificationEmail(ctx context.Context, email, password string) error

	// CaptchaTokenStream emits every captcha result passed to
	// SetCaptchaToken after the subscription was made.
	CaptchaTokenStream(ctx context.Context) <-chan models.CaptchaTokenResult

	// SetCaptchaToken hands the outcome of a captcha challenge to the
	// subscribers of CaptchaTokenStream.
	SetCaptchaToken(result models.CaptchaTokenResult)

	// RestoreSession makes the stored active account current again.
	// Returns [ErrNoActiveSession] when nobody is signed in.
	RestoreSession(ctx context.Context) (models.Session, error)

	// ApplyProfile refreshes the active account from a synced profile.
	ApplyProfile(ctx context.Context, profile models.Profile) error

	// Logout signs the active account out locally.
	Logout(ctx context.Context) error
}

// SyncJob runs VaultService.Sync periodically in the background.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
