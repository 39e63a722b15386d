// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the identity and API servers.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). Requests
// that never reached the server are reported as [ErrNoNetwork].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-pass-keeper-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the servers.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login performs a password grant against the identity server.
	//
	// A captcha or second-factor challenge is not an error: the returned
	// response carries CaptchaSiteKey or TwoFactorProviders instead. Rejected
	// credentials return [ErrInvalidCredentials] together with the response
	// holding the server message. On success the access token is stored via
	// SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ResendVerificationEmail asks the server to e-mail a new two-factor code.
	ResendVerificationEmail(ctx context.Context, req models.ResendEmailRequest) error

	// Sync downloads the full vault of the authenticated user.
	Sync(ctx context.Context) (models.SyncResponse, error)

	// ShareCipher moves a cipher into an organization and returns the updated
	// cipher.
	ShareCipher(ctx context.Context, cipherID string, req models.ShareCipherRequest) (models.Cipher, error)

	// CreateAttachment uploads a file as a new attachment of cipherID and
	// returns the updated cipher.
	CreateAttachment(ctx context.Context, cipherID, fileName string, content io.Reader) (models.Cipher, error)

	// DeleteAttachment removes an attachment from cipherID.
	DeleteAttachment(ctx context.Context, cipherID, attachmentID string) error
}
