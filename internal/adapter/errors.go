// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

var (
	// ErrNoNetwork is returned when the request never produced an HTTP
	// response (DNS failure, refused connection, timeout).
	ErrNoNetwork = errors.New("no network connection")

	// ErrInvalidCredentials is returned by Login when the identity server
	// rejects the credentials without asking for a captcha or second factor.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
