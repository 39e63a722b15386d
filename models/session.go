// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is an account together with the tokens it was signed in with.
// It is what the local account table stores.
type Session struct {
	Account      Account
	AccessToken  string
	RefreshToken string
}
