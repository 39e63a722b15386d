// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/workers"
)

// NoticeLoggedOut is reported by the logout command.
const NoticeLoggedOut = "Выход выполнен"

type App struct {
	services *service.ClientServices
	ui       UI
	// sync keeps the vault of the active account up to date.
	sync workers.Worker
	// signIn runs next to the sign-in screen (the captcha callback).
	signIn workers.Worker
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, sync, signIn workers.Worker, logger *logger.Logger) *App {
	return &App{
		services: services,
		ui:       ui,
		sync:     sync,
		signIn:   signIn,
		logger:   logger,
	}
}

// Run executes cmd and returns the notice to show the user.
//
// Every screen except the sign-in needs a stored session. While a session is
// active its vault is loaded and the background workers keep it in sync.
func (a *App) Run(ctx context.Context, cmd Command) (string, error) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().
			Str("func", "App.Run").
			Str("user_id", session.Account.UserID).
			Str("command", string(cmd.Screen)).
			Msg("session restored")
	case errors.Is(err, service.ErrNoActiveSession) && cmd.Screen == ScreenTwoFactor:
		a.logger.Info().Str("func", "App.Run").Msg("no stored session, signing in")
		return a.signInScreen(ctx, cmd.Target)
	default:
		return "", fmt.Errorf("restore session: %w", err)
	}

	if cmd.Screen == ScreenLogout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			return "", fmt.Errorf("logout: %w", err)
		}
		return NoticeLoggedOut, nil
	}

	if err = a.services.VaultService.Load(ctx, session.Account.UserID); err != nil {
		return "", fmt.Errorf("load vault: %w", err)
	}

	a.sync.Start(ctx)
	defer a.sync.Stop()

	switch cmd.Screen {
	case ScreenTwoFactor:
		return a.signInScreen(ctx, cmd.Target)
	case ScreenMove:
		return a.ui.MoveToOrganization(ctx, cmd.Target)
	case ScreenAttachments:
		return a.ui.Attachments(ctx, cmd.Target)
	default:
		return "", fmt.Errorf("%w: unknown command %q", ErrUsage, cmd.Screen)
	}
}

func (a *App) signInScreen(ctx context.Context, email string) (string, error) {
	a.signIn.Start(ctx)
	defer a.signIn.Stop()

	return a.ui.TwoFactor(ctx, email)
}
