// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Cipher is a single encrypted vault record as the client keeps it locally.
// Sensitive payloads are opaque to the client view-models; only descriptive
// fields (name, ownership, collection membership, attachments) are read.
type Cipher struct {
	// ID is the server-assigned identifier of the cipher.
	ID string `json:"id"`

	// OrganizationID is set when the cipher is owned by an organization
	// instead of the personal vault.
	OrganizationID *string `json:"organizationId,omitempty"`

	// FolderID is an optional personal folder placement.
	FolderID *string `json:"folderId,omitempty"`

	// Type defines how the encrypted payload must be interpreted.
	Type CipherType `json:"type"`

	// Name is the display name of the cipher.
	Name string `json:"name"`

	// Notes contains optional user notes.
	Notes *string `json:"notes,omitempty"`

	// CollectionIDs lists the organization collections the cipher belongs to.
	CollectionIDs []string `json:"collectionIds,omitempty"`

	// Attachments lists the files attached to the cipher.
	Attachments []Attachment `json:"attachments,omitempty"`

	// RevisionDate is the timestamp of the last server-side modification.
	RevisionDate time.Time `json:"revisionDate"`
}

// Attachment describes a file attached to a cipher. The content itself is
// stored server-side; the client only keeps its metadata.
type Attachment struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
	SizeName string `json:"sizeName"`
	URL      string `json:"url,omitempty"`
}

// Folder is a personal grouping of ciphers.
type Folder struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revisionDate"`
}

// Clone returns a deep copy of c, so callers can modify slices without
// touching the original.
func (c Cipher) Clone() Cipher {
	out := c
	if c.CollectionIDs != nil {
		out.CollectionIDs = append([]string(nil), c.CollectionIDs...)
	}
	if c.Attachments != nil {
		out.Attachments = append([]Attachment(nil), c.Attachments...)
	}
	return out
}
