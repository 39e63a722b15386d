// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package attachments implements the view-model of the screen listing,
// uploading and deleting the file attachments of a vault item.
package attachments

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
)

// ScreenName is used in logs and as the prefix of the saved state slot.
const ScreenName = "attachments"

// ViewModel drives the attachments screen.
type ViewModel struct {
	core     *viewmodel.Core[State, Action, Event]
	cipherID string
	vault    service.VaultService
	auth     service.AuthService
	logger   *logger.Logger
}

// New creates the view-model for the cipher cipherID.
func New(cipherID string, vault service.VaultService, auth service.AuthService, store viewmodel.SavedStateStore, log *logger.Logger) (*ViewModel, error) {
	if log == nil {
		log = logger.Nop()
	}
	vm := &ViewModel{
		cipherID: cipherID,
		vault:    vault,
		auth:     auth,
		logger:   log.ForScreen(ScreenName),
	}

	r := viewmodel.NewRouter[Action]()
	viewmodel.On(r, vm.handleBackClick)
	viewmodel.On(r, vm.handleSaveClick)
	viewmodel.On(r, vm.handleDismissDialogClick)
	viewmodel.On(r, vm.handleFileChoose)
	viewmodel.On(r, vm.handleDeleteClick)
	viewmodel.On(r, vm.handleCipherReceive)
	viewmodel.On(r, vm.handleCreateAttachmentResult)
	viewmodel.On(r, vm.handleDeleteAttachmentResult)

	core, err := viewmodel.New[State, Action, Event](viewmodel.Config{
		Key:    ScreenName + "/" + cipherID,
		Store:  store,
		Logger: vm.logger,
	}, func() State { return initialState(cipherID) }, r, variants...)
	if err != nil {
		return nil, err
	}
	vm.core = core

	return vm, nil
}

// Start runs the view-model and subscribes it to the cipher and the user
// state.
func (vm *ViewModel) Start(ctx context.Context) error {
	if err := vm.core.Start(ctx); err != nil {
		return err
	}

	sctx := vm.core.Context()
	data := datastate.CombineLatest2(sctx,
		vm.vault.CipherStream(sctx, vm.cipherID),
		vm.auth.UserStateStream(sctx),
		newCipherData,
	)
	return viewmodel.Collect(vm.core, data, func(d datastate.DataState[cipherData]) Action {
		return cipherReceive{Data: d}
	})
}

// Close stops the view-model and all of its background work.
func (vm *ViewModel) Close() { vm.core.Close() }

// Send queues a user action.
func (vm *ViewModel) Send(a Action) { vm.core.Send(a) }

// State returns the current state.
func (vm *ViewModel) State() State { return vm.core.State() }

// Observe streams the state until ctx is done.
func (vm *ViewModel) Observe(ctx context.Context) <-chan State { return vm.core.Observe(ctx) }

// Events returns the one-shot event channel.
func (vm *ViewModel) Events() <-chan Event { return vm.core.Events() }

// ── User actions ──────────────────────────────────────────────────────────────

func (vm *ViewModel) handleBackClick(BackClick) {
	vm.core.Emit(NavigateBack{})
}

func (vm *ViewModel) handleDismissDialogClick(DismissDialogClick) {
	vm.setDialog(nil)
}

func (vm *ViewModel) handleFileChoose(a FileChoose) {
	vm.core.UpdateState(func(s State) State {
		if s.ViewState.Kind != screen.ViewContent {
			return s
		}
		c := *s.ViewState.Content
		c.NewAttachment = &NewAttachment{Path: a.Path, DisplayName: a.Name, SizeBytes: a.SizeBytes}
		s.ViewState = screen.ContentView(c)
		return s
	})
}

func (vm *ViewModel) handleSaveClick(SaveClick) {
	s := vm.core.State()
	if s.ViewState.Kind != screen.ViewContent {
		return
	}
	c := *s.ViewState.Content

	var invalid string
	switch {
	case c.NewAttachment == nil:
		invalid = app.MsgNoFileChosen
	case !c.IsPremiumUser:
		invalid = app.MsgPremiumRequired
	case c.NewAttachment.SizeBytes > MaxAttachmentSize:
		invalid = app.MsgMaxFileSize
	}
	if invalid != "" {
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, invalid))
		return
	}

	file := *c.NewAttachment
	cipher := c.Cipher.Clone()

	vm.setDialog(screen.LoadingDialog(app.MsgSaving))
	vm.core.Launch(func(ctx context.Context) Action {
		return createAttachmentResultReceive{
			Err: vm.vault.CreateAttachment(ctx, s.CipherID, cipher, file.DisplayName, file.Path),
		}
	})
}

func (vm *ViewModel) handleDeleteClick(a DeleteClick) {
	cipherID := vm.core.State().CipherID

	vm.setDialog(screen.LoadingDialog(app.MsgDeleting))
	vm.core.Launch(func(ctx context.Context) Action {
		return deleteAttachmentResultReceive{Err: vm.vault.DeleteAttachment(ctx, cipherID, a.AttachmentID)}
	})
}

// ── Results of streams and background work ────────────────────────────────────

func (vm *ViewModel) handleCipherReceive(a cipherReceive) {
	vm.core.UpdateState(func(s State) State {
		prev := s.ViewState.Current()

		switch a.Data.Status {
		case datastate.Loading:
			s.ViewState = screen.LoadingView[Content]()
		case datastate.Error:
			s.ViewState = screen.ErrorView(app.MsgGenericError, staleContent(a.Data, prev))
		case datastate.NoNetwork:
			s.ViewState = screen.ErrorView(app.MsgInternetRequired, staleContent(a.Data, prev))
		default:
			s.ViewState = viewStateFor(a.Data.Data, prev)
		}
		return s
	})
}

func (vm *ViewModel) handleCreateAttachmentResult(a createAttachmentResultReceive) {
	if a.Err != nil {
		vm.logger.Error().Err(a.Err).
			Str("func", "ViewModel.handleCreateAttachmentResult").
			Str("cipher_id", vm.cipherID).
			Msg("failed to upload attachment")
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, service.ErrorMessage(a.Err)))
		return
	}

	vm.core.UpdateState(func(s State) State {
		s.Dialog = nil
		if s.ViewState.Kind == screen.ViewContent {
			c := *s.ViewState.Content
			c.NewAttachment = nil
			s.ViewState = screen.ContentView(c)
		}
		return s
	})
	vm.core.Emit(ShowToast{Message: app.MsgAttachmentSaved})
}

func (vm *ViewModel) handleDeleteAttachmentResult(a deleteAttachmentResultReceive) {
	if a.Err != nil {
		vm.logger.Error().Err(a.Err).
			Str("func", "ViewModel.handleDeleteAttachmentResult").
			Str("cipher_id", vm.cipherID).
			Msg("failed to delete attachment")
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, service.ErrorMessage(a.Err)))
		return
	}
	vm.setDialog(nil)
	vm.core.Emit(ShowToast{Message: app.MsgAttachmentDeleted})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (vm *ViewModel) setDialog(d *screen.DialogState) {
	vm.core.UpdateState(func(s State) State {
		s.Dialog = d
		return s
	})
}

func staleContent(d datastate.DataState[cipherData], prev *Content) *Content {
	if d.HasData {
		if v := viewStateFor(d.Data, prev); v.Kind == screen.ViewContent {
			return v.Content
		}
	}
	return prev
}

// viewStateFor builds the content from a snapshot. The file picked in prev
// is kept.
func viewStateFor(data cipherData, prev *Content) ViewState {
	if data.Cipher == nil {
		return screen.ErrorView[Content](app.MsgItemNotFound, nil)
	}

	c := Content{
		Attachments: attachmentItems(data.Cipher.Attachments),
		Cipher:      *data.Cipher,
	}
	if data.UserState != nil {
		if acc, ok := data.UserState.ActiveAccount(); ok {
			c.IsPremiumUser = acc.IsPremium
		}
	}
	if prev != nil {
		c.NewAttachment = prev.NewAttachment
	}
	return screen.ContentView(c)
}
