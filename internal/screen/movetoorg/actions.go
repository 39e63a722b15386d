// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package movetoorg

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// Action is anything the screen reacts to. Unexported variants carry the
// results of streams and background work.
type Action interface {
	moveToOrgAction()
}

type (
	BackClick    struct{}
	MoveClick    struct{}
	DismissClick struct{}

	OrganizationSelect struct {
		OrganizationID string
	}

	CollectionSelect struct {
		CollectionID string
	}
)

type (
	vaultDataReceive struct {
		Data datastate.DataState[vaultData]
	}

	shareCipherResultReceive struct {
		Err error
	}
)

// vaultData is one combined snapshot of the screen's sources.
type vaultData struct {
	Cipher      *models.Cipher
	Collections []models.Collection
	UserState   *models.UserState
}

func newVaultData(c *models.Cipher, cols []models.Collection, us *models.UserState) vaultData {
	return vaultData{Cipher: c, Collections: cols, UserState: us}
}

func (BackClick) moveToOrgAction()                {}
func (MoveClick) moveToOrgAction()                {}
func (DismissClick) moveToOrgAction()             {}
func (OrganizationSelect) moveToOrgAction()       {}
func (CollectionSelect) moveToOrgAction()         {}
func (vaultDataReceive) moveToOrgAction()         {}
func (shareCipherResultReceive) moveToOrgAction() {}

var variants = []Action{
	BackClick{},
	MoveClick{},
	DismissClick{},
	OrganizationSelect{},
	CollectionSelect{},
	vaultDataReceive{},
	shareCipherResultReceive{},
}

// Event is a one-shot instruction for the view.
type Event interface {
	moveToOrgEvent()
}

type (
	NavigateBack struct{}

	ShowToast struct {
		Message string
	}
)

func (NavigateBack) moveToOrgEvent() {}
func (ShowToast) moveToOrgEvent()    {}
