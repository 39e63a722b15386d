// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncResponse is the full vault snapshot returned by the server's sync
// endpoint.
type SyncResponse struct {
	Profile     Profile      `json:"profile"`
	Ciphers     []Cipher     `json:"ciphers"`
	Folders     []Folder     `json:"folders"`
	Collections []Collection `json:"collections"`
}

// Profile is the account part of SyncResponse.
type Profile struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	Premium       bool           `json:"premium"`
	Organizations []Organization `json:"organizations"`
}

// ShareCipherRequest moves a cipher into an organization and assigns it to
// the given collections.
type ShareCipherRequest struct {
	Cipher        Cipher   `json:"cipher"`
	CollectionIDs []string `json:"collectionIds"`
}
