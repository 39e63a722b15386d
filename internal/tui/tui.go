// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal view layer. Every page owns one screen
// view-model: keys become actions, states are rendered as they arrive and
// events drive navigation, the clipboard and the status line.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/attachments"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/movetoorg"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	store     viewmodel.SavedStateStore
	webVault  service.WebVault
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the TUI. store keeps the screen states between runs; webVault
// links to the captcha and recovery pages.
func New(services *service.ClientServices, store viewmodel.SavedStateStore, webVault service.WebVault, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		store:     store,
		webVault:  webVault,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// TwoFactor signs email in, asking for the master password and, when the
// server requires it, for a second factor. It returns the final notice.
func (t *TUI) TwoFactor(ctx context.Context, email string) (string, error) {
	twoFactor := newTwoFactorPage(ctx, t.services.AuthService, t.store, t.webVault, t.logger)
	defer twoFactor.close()

	pages := map[string]tea.Model{
		pageLogin:     newLoginPage(ctx, t.services.AuthService, email, t.webVault),
		pageTwoFactor: twoFactor,
	}
	return t.run(ctx, pages, pageLogin)
}

// MoveToOrganization runs the move-to-organization screen for cipherID.
func (t *TUI) MoveToOrganization(ctx context.Context, cipherID string) (string, error) {
	vm, err := movetoorg.New(cipherID, t.services.VaultService, t.services.AuthService, t.store, t.logger)
	if err != nil {
		return "", fmt.Errorf("create move to organization screen: %w", err)
	}
	if err = vm.Start(ctx); err != nil {
		return "", fmt.Errorf("start move to organization screen: %w", err)
	}
	defer vm.Close()

	pages := map[string]tea.Model{
		pageMoveToOrg: newMoveToOrgPage(ctx, vm),
	}
	return t.run(ctx, pages, pageMoveToOrg)
}

// Attachments runs the attachments screen for cipherID.
func (t *TUI) Attachments(ctx context.Context, cipherID string) (string, error) {
	vm, err := attachments.New(cipherID, t.services.VaultService, t.services.AuthService, t.store, t.logger)
	if err != nil {
		return "", fmt.Errorf("create attachments screen: %w", err)
	}
	if err = vm.Start(ctx); err != nil {
		return "", fmt.Errorf("start attachments screen: %w", err)
	}
	defer vm.Close()

	pages := map[string]tea.Model{
		pageAttachments: newAttachmentsPage(ctx, vm),
	}
	return t.run(ctx, pages, pageAttachments)
}

func (t *TUI) run(ctx context.Context, pages map[string]tea.Model, start string) (string, error) {
	root := newRootModel(pages, start, t.buildInfo)
	final, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", err
	}

	finished, ok := final.(rootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if finished.result.quit {
		return "", ErrUserQuit
	}
	return finished.result.notice, nil
}
