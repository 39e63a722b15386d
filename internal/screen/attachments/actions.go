// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachments

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// Action is anything the screen reacts to. Unexported variants carry the
// results of streams and background work.
type Action interface {
	attachmentsAction()
}

type (
	BackClick          struct{}
	SaveClick          struct{}
	DismissDialogClick struct{}

	// FileChoose reports the file picked by the user.
	FileChoose struct {
		Path      string
		Name      string
		SizeBytes int64
	}

	DeleteClick struct {
		AttachmentID string
	}
)

type (
	cipherReceive struct {
		Data datastate.DataState[cipherData]
	}

	createAttachmentResultReceive struct {
		Err error
	}

	deleteAttachmentResultReceive struct {
		Err error
	}
)

// cipherData is one combined snapshot of the screen's sources.
type cipherData struct {
	Cipher    *models.Cipher
	UserState *models.UserState
}

func newCipherData(c *models.Cipher, us *models.UserState) cipherData {
	return cipherData{Cipher: c, UserState: us}
}

func (BackClick) attachmentsAction()                     {}
func (SaveClick) attachmentsAction()                     {}
func (DismissDialogClick) attachmentsAction()            {}
func (FileChoose) attachmentsAction()                    {}
func (DeleteClick) attachmentsAction()                   {}
func (cipherReceive) attachmentsAction()                 {}
func (createAttachmentResultReceive) attachmentsAction() {}
func (deleteAttachmentResultReceive) attachmentsAction() {}

var variants = []Action{
	BackClick{},
	SaveClick{},
	DismissDialogClick{},
	FileChoose{},
	DeleteClick{},
	cipherReceive{},
	createAttachmentResultReceive{},
	deleteAttachmentResultReceive{},
}

// Event is a one-shot instruction for the view.
type Event interface {
	attachmentsEvent()
}

type (
	NavigateBack struct{}

	ShowToast struct {
		Message string
	}
)

func (NavigateBack) attachmentsEvent() {}
func (ShowToast) attachmentsEvent()    {}
