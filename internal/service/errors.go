// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoNetwork       = errors.New("internet connection required")
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionExpired  = errors.New("session is expired")
	ErrAccessDenied    = errors.New("access denied")

	ErrCipherNotFound     = errors.New("cipher not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrAttachmentTooLarge = errors.New("attachment is too large")
	ErrReadingAttachment  = errors.New("error reading attachment file")

	ErrUnexpectedLoginResponse = errors.New("unexpected login response")
)
