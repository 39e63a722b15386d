// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package movetoorg

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// State is the move-to-organization screen state.
type State struct {
	CipherID  string              `json:"cipherId"`
	ViewState ViewState           `json:"viewState"`
	Dialog    *screen.DialogState `json:"dialog,omitempty"`
}

// ViewState is the body of the screen.
type ViewState = screen.ViewState[Content]

// Content lists the organizations the cipher can be moved into.
type Content struct {
	SelectedOrganizationID string         `json:"selectedOrganizationId"`
	Organizations          []Organization `json:"organizations"`

	// Cipher is the item as it will be sent to the server.
	Cipher models.Cipher `json:"cipher"`
}

// Organization is one destination with its writable collections.
type Organization struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Collections []Collection `json:"collections"`
}

// Collection is one selectable collection.
type Collection struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsSelected bool   `json:"isSelected"`
}

// SelectedOrganization returns the organization the user picked.
func (c Content) SelectedOrganization() (Organization, bool) {
	for _, org := range c.Organizations {
		if org.ID == c.SelectedOrganizationID {
			return org, true
		}
	}
	return Organization{}, false
}

// SelectedCollectionIDs returns the selected collections of the selected
// organization.
func (c Content) SelectedCollectionIDs() []string {
	org, ok := c.SelectedOrganization()
	if !ok {
		return nil
	}
	var ids []string
	for _, col := range org.Collections {
		if col.IsSelected {
			ids = append(ids, col.ID)
		}
	}
	return ids
}

func initialState(cipherID string) State {
	return State{
		CipherID:  cipherID,
		ViewState: screen.LoadingView[Content](),
	}
}
