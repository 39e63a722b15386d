// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// UI runs a single screen until the user leaves it. Each method returns the
// notice to print after the screen closes.
type UI interface {
	// TwoFactor signs email in, asking for a second factor when required.
	TwoFactor(ctx context.Context, email string) (string, error)

	// MoveToOrganization moves the cipher into an organization.
	MoveToOrganization(ctx context.Context, cipherID string) (string, error)

	// Attachments manages the files attached to the cipher.
	Attachments(ctx context.Context, cipherID string) (string, error)
}
