// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package movetoorg implements the view-model of the screen that moves a
// personal vault item into one of the user's organizations.
package movetoorg

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// ScreenName is used in logs and as the prefix of the saved state slot.
const ScreenName = "move_to_organization"

// ViewModel drives the move-to-organization screen.
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
	viewmodel.On(r, vm.handleMoveClick)
	viewmodel.On(r, vm.handleDismissClick)
	viewmodel.On(r, vm.handleOrganizationSelect)
	viewmodel.On(r, vm.handleCollectionSelect)
	viewmodel.On(r, vm.handleVaultData)
	viewmodel.On(r, vm.handleShareCipherResult)

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

// Start runs the view-model and subscribes it to the cipher, the
// collections and the user state.
func (vm *ViewModel) Start(ctx context.Context) error {
	if err := vm.core.Start(ctx); err != nil {
		return err
	}

	sctx := vm.core.Context()
	data := datastate.CombineLatest3(sctx,
		vm.vault.CipherStream(sctx, vm.cipherID),
		vm.vault.CollectionsStream(sctx),
		vm.auth.UserStateStream(sctx),
		newVaultData,
	)
	return viewmodel.Collect(vm.core, data, func(d datastate.DataState[vaultData]) Action {
		return vaultDataReceive{Data: d}
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

func (vm *ViewModel) handleDismissClick(DismissClick) {
	vm.setDialog(nil)
}

func (vm *ViewModel) handleOrganizationSelect(a OrganizationSelect) {
	vm.updateContent("ViewModel.handleOrganizationSelect", func(c Content) (Content, bool) {
		if !slices.ContainsFunc(c.Organizations, func(o Organization) bool { return o.ID == a.OrganizationID }) {
			return c, false
		}
		c.SelectedOrganizationID = a.OrganizationID
		return c, true
	})
}

func (vm *ViewModel) handleCollectionSelect(a CollectionSelect) {
	vm.updateContent("ViewModel.handleCollectionSelect", func(c Content) (Content, bool) {
		orgs, ok := toggleCollection(c.Organizations, c.SelectedOrganizationID, a.CollectionID)
		c.Organizations = orgs
		return c, ok
	})
}

func (vm *ViewModel) handleMoveClick(MoveClick) {
	s := vm.core.State()
	if s.ViewState.Kind != screen.ViewContent {
		return
	}
	content := *s.ViewState.Content

	org, ok := content.SelectedOrganization()
	ids := content.SelectedCollectionIDs()
	if !ok || len(ids) == 0 {
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, app.MsgSelectOneCollection))
		return
	}

	cipher := content.Cipher.Clone()
	cipher.OrganizationID = &org.ID
	cipher.CollectionIDs = ids

	vm.setDialog(screen.LoadingDialog(app.MsgMoving))
	vm.core.Launch(func(ctx context.Context) Action {
		return shareCipherResultReceive{Err: vm.vault.ShareCipher(ctx, s.CipherID, cipher, ids)}
	})
}

// ── Results of streams and background work ────────────────────────────────────

func (vm *ViewModel) handleVaultData(a vaultDataReceive) {
	vm.core.UpdateState(func(s State) State {
		prev := s.ViewState.Current()

		switch a.Data.Status {
		case datastate.Loading:
			s.ViewState = screen.LoadingView[Content]()
		case datastate.Error:
			s.ViewState = screen.ErrorView(app.MsgGenericError, vm.staleContent(a.Data, prev))
		case datastate.NoNetwork:
			s.ViewState = screen.ErrorView(app.MsgInternetRequired, vm.staleContent(a.Data, prev))
		default:
			s.ViewState = vm.viewStateFor(a.Data.Data, prev)
		}
		return s
	})
}

func (vm *ViewModel) handleShareCipherResult(a shareCipherResultReceive) {
	if a.Err != nil {
		vm.logger.Error().Err(a.Err).
			Str("func", "ViewModel.handleShareCipherResult").
			Str("cipher_id", vm.cipherID).
			Msg("failed to move cipher to organization")
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, service.ErrorMessage(a.Err)))
		return
	}
	vm.setDialog(nil)
	vm.core.Emit(NavigateBack{})
	vm.core.Emit(ShowToast{Message: app.MsgItemMoved})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (vm *ViewModel) setDialog(d *screen.DialogState) {
	vm.core.UpdateState(func(s State) State {
		s.Dialog = d
		return s
	})
}

// updateContent applies fn to the displayed content. Nothing is saved when
// no content is shown or fn reports that it changed nothing.
func (vm *ViewModel) updateContent(fn string, update func(Content) (Content, bool)) {
	s := vm.core.State()
	if s.ViewState.Kind != screen.ViewContent {
		return
	}
	next, ok := update(*s.ViewState.Content)
	if !ok {
		vm.logger.Debug().
			Str("func", fn).
			Str("organization_id", next.SelectedOrganizationID).
			Msg("selection target not found, ignoring")
		return
	}
	vm.core.UpdateState(func(s State) State {
		s.ViewState = screen.ContentView(next)
		return s
	})
}

// staleContent picks what an error view keeps showing: content rebuilt from
// the data attached to the failure, else the content shown before.
func (vm *ViewModel) staleContent(d datastate.DataState[vaultData], prev *Content) *Content {
	if d.HasData {
		if v := vm.viewStateFor(d.Data, prev); v.Kind == screen.ViewContent {
			return v.Content
		}
	}
	return prev
}

func (vm *ViewModel) viewStateFor(data vaultData, prev *Content) ViewState {
	if data.Cipher == nil {
		return screen.ErrorView[Content](app.MsgItemNotFound, nil)
	}

	var memberships []models.Organization
	if data.UserState != nil {
		if acc, ok := data.UserState.ActiveAccount(); ok {
			memberships = acc.Organizations
		}
	}
	if len(memberships) == 0 {
		return screen.EmptyView[Content]()
	}

	return screen.ContentView(buildContent(*data.Cipher, memberships, data.Collections, prev))
}

// buildContent derives the selectable tree. Selections made by the user in
// prev survive for every collection that is still present.
func buildContent(cipher models.Cipher, memberships []models.Organization, collections []models.Collection, prev *Content) Content {
	previous := make(map[string]bool)
	if prev != nil {
		for _, org := range prev.Organizations {
			for _, col := range org.Collections {
				previous[org.ID+"/"+col.ID] = col.IsSelected
			}
		}
	}

	orgs := make([]Organization, 0, len(memberships))
	for _, m := range memberships {
		org := Organization{ID: m.ID, Name: m.Name, Collections: []Collection{}}
		for _, col := range collections {
			if col.OrganizationID != m.ID || col.ReadOnly {
				continue
			}
			selected, seen := previous[m.ID+"/"+col.ID]
			if !seen {
				selected = slices.Contains(cipher.CollectionIDs, col.ID)
			}
			org.Collections = append(org.Collections, Collection{ID: col.ID, Name: col.Name, IsSelected: selected})
		}
		orgs = append(orgs, org)
	}

	return Content{
		SelectedOrganizationID: selectedOrganization(orgs, cipher, prev),
		Organizations:          orgs,
		Cipher:                 cipher,
	}
}

func selectedOrganization(orgs []Organization, cipher models.Cipher, prev *Content) string {
	has := func(id string) bool {
		return slices.ContainsFunc(orgs, func(o Organization) bool { return o.ID == id })
	}
	if prev != nil && has(prev.SelectedOrganizationID) {
		return prev.SelectedOrganizationID
	}
	if cipher.OrganizationID != nil && has(*cipher.OrganizationID) {
		return *cipher.OrganizationID
	}
	return orgs[0].ID
}
