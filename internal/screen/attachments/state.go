// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package attachments

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/dustin/go-humanize"
)

// MaxAttachmentSize is the largest file that can be uploaded: 100 MiB.
const MaxAttachmentSize int64 = 100 * humanize.MiByte

// State is the attachments screen state.
type State struct {
	CipherID  string              `json:"cipherId"`
	ViewState ViewState           `json:"viewState"`
	Dialog    *screen.DialogState `json:"dialog,omitempty"`
}

// ViewState is the body of the screen. The Empty variant is not used.
type ViewState = screen.ViewState[Content]

// Content lists the attachments of the cipher.
type Content struct {
	Attachments []AttachmentItem `json:"attachments"`

	// NewAttachment is the file picked for upload, nil until one is chosen.
	NewAttachment *NewAttachment `json:"newAttachment,omitempty"`

	IsPremiumUser bool          `json:"isPremiumUser"`
	Cipher        models.Cipher `json:"cipher"`
}

// AttachmentItem is one uploaded attachment.
type AttachmentItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	DisplaySize string `json:"displaySize"`
}

// NewAttachment is a local file chosen for upload.
type NewAttachment struct {
	Path        string `json:"path"`
	DisplayName string `json:"displayName"`
	SizeBytes   int64  `json:"sizeBytes"`
}

func initialState(cipherID string) State {
	return State{
		CipherID:  cipherID,
		ViewState: screen.LoadingView[Content](),
	}
}

func attachmentItems(list []models.Attachment) []AttachmentItem {
	items := make([]AttachmentItem, 0, len(list))
	for _, a := range list {
		size := a.SizeName
		if size == "" {
			size = humanize.IBytes(uint64(max(a.Size, 0)))
		}
		items = append(items, AttachmentItem{ID: a.ID, Title: a.FileName, DisplaySize: size})
	}
	return items
}
