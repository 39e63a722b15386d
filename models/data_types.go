// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherType defines the semantic type of the encrypted payload stored
// inside a Cipher.
type CipherType int

const (
	// CipherTypeLogin represents authentication credentials such as
	// username, password, URIs, and optional TOTP secret.
	CipherTypeLogin CipherType = 1

	// CipherTypeSecureNote represents arbitrary textual data.
	CipherTypeSecureNote CipherType = 2

	// CipherTypeCard represents payment card information.
	CipherTypeCard CipherType = 3

	// CipherTypeIdentity represents personal identity information.
	CipherTypeIdentity CipherType = 4
)

// String returns a short human-readable name of the cipher type.
func (t CipherType) String() string {
	switch t {
	case CipherTypeLogin:
		return "login"
	case CipherTypeSecureNote:
		return "secure_note"
	case CipherTypeCard:
		return "card"
	case CipherTypeIdentity:
		return "identity"
	default:
		return "unknown"
	}
}
