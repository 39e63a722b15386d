// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package twofactor implements the view-model of the two-factor login
// screen: code entry, provider choice, e-mail resend and the captcha
// round trip.
package twofactor

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// ScreenName is used in logs and as the prefix of the saved state slot.
const ScreenName = "two_factor_login"

// ViewModel drives the two-factor login screen.
type ViewModel struct {
	core     *viewmodel.Core[State, Action, Event]
	auth     service.AuthService
	webVault service.WebVault
	logger   *logger.Logger
}

// New creates the view-model. State saved in store for the same e-mail is
// restored; otherwise the screen starts from args.
func New(args Args, auth service.AuthService, webVault service.WebVault, store viewmodel.SavedStateStore, log *logger.Logger) (*ViewModel, error) {
	if log == nil {
		log = logger.Nop()
	}
	vm := &ViewModel{
		auth:     auth,
		webVault: webVault,
		logger:   log.ForScreen(ScreenName),
	}

	r := viewmodel.NewRouter[Action]()
	viewmodel.On(r, vm.handleCloseButtonClick)
	viewmodel.On(r, vm.handleCodeInputChanged)
	viewmodel.On(r, vm.handleContinueButtonClick)
	viewmodel.On(r, vm.handleDialogDismiss)
	viewmodel.On(r, vm.handleRememberMeToggle)
	viewmodel.On(r, vm.handleResendEmailClick)
	viewmodel.On(r, vm.handleSelectAuthMethod)
	viewmodel.On(r, vm.handleLoginResult)
	viewmodel.On(r, vm.handleResendEmailResult)
	viewmodel.On(r, vm.handleCaptchaToken)

	core, err := viewmodel.New[State, Action, Event](viewmodel.Config{
		Key:    ScreenName + "/" + args.Email,
		Store:  store,
		Logger: vm.logger,
	}, func() State { return initialState(args) }, r, variants...)
	if err != nil {
		return nil, err
	}
	vm.core = core

	return vm, nil
}

// Start runs the view-model and subscribes it to captcha results.
func (vm *ViewModel) Start(ctx context.Context) error {
	if err := vm.core.Start(ctx); err != nil {
		return err
	}

	tokens := vm.auth.CaptchaTokenStream(vm.core.Context())
	return viewmodel.Collect(vm.core, tokens, func(r models.CaptchaTokenResult) Action {
		return receiveCaptchaToken{Result: r}
	})
}

// Close stops the view-model and all of its background work.
func (vm *ViewModel) Close() { vm.core.Close() }

// Discard closes the view-model and drops its snapshot, which carries the
// master password. Called once the sign-in completed.
func (vm *ViewModel) Discard() error { return vm.core.Discard() }

// Send queues a user action.
func (vm *ViewModel) Send(a Action) { vm.core.Send(a) }

// State returns the current state.
func (vm *ViewModel) State() State { return vm.core.State() }

// Observe streams the state until ctx is done.
func (vm *ViewModel) Observe(ctx context.Context) <-chan State { return vm.core.Observe(ctx) }

// Events returns the one-shot event channel.
func (vm *ViewModel) Events() <-chan Event { return vm.core.Events() }

// ── User actions ──────────────────────────────────────────────────────────────

func (vm *ViewModel) handleCloseButtonClick(CloseButtonClick) {
	vm.core.Emit(NavigateBack{})
}

func (vm *ViewModel) handleCodeInputChanged(a CodeInputChanged) {
	vm.core.UpdateState(func(s State) State {
		s.CodeInput = a.Input
		s.IsContinueButtonEnabled = len(strings.TrimSpace(a.Input)) >= minCodeLength
		return s
	})
}

func (vm *ViewModel) handleContinueButtonClick(ContinueButtonClick) {
	if !vm.core.State().IsContinueButtonEnabled {
		vm.logger.Debug().
			Str("func", "ViewModel.handleContinueButtonClick").
			Msg("continue ignored, code is too short")
		return
	}
	vm.submitLogin()
}

func (vm *ViewModel) handleDialogDismiss(DialogDismiss) {
	vm.core.UpdateState(func(s State) State {
		s.Dialog = nil
		return s
	})
}

func (vm *ViewModel) handleRememberMeToggle(a RememberMeToggle) {
	vm.core.UpdateState(func(s State) State {
		s.IsRememberMeEnabled = a.Enabled
		return s
	})
}

func (vm *ViewModel) handleResendEmailClick(ResendEmailClick) {
	s := vm.core.State()
	if s.AuthMethod != models.TwoFactorEmail {
		return
	}

	vm.core.UpdateState(func(s State) State {
		s.Dialog = screen.LoadingDialog(app.MsgLoading)
		return s
	})
	vm.core.Launch(func(ctx context.Context) Action {
		return receiveResendEmailResult{Err: vm.auth.ResendVerificationEmail(ctx, s.Email, s.Password)}
	})
}

func (vm *ViewModel) handleSelectAuthMethod(a SelectAuthMethod) {
	if a.Method == models.TwoFactorRecoveryCode {
		vm.core.Emit(NavigateToRecoveryCode{URI: vm.webVault.RecoveryCodeURI()})
		return
	}
	vm.core.UpdateState(func(s State) State {
		s.AuthMethod = a.Method
		return s
	})
}

// ── Results of background work ────────────────────────────────────────────────

func (vm *ViewModel) handleLoginResult(a receiveLoginResult) {
	switch a.Result.Kind {
	case models.LoginSuccess:
		vm.setDialog(nil)
		vm.core.Emit(LoginCompleted{Email: vm.core.State().Email})
	case models.LoginCaptchaRequired:
		vm.setDialog(nil)
		vm.core.Emit(NavigateToCaptcha{URI: vm.webVault.CaptchaURI(a.Result.CaptchaSiteKey)})
	case models.LoginTwoFactorRequired:
		vm.core.UpdateState(func(s State) State {
			if len(a.Result.TwoFactorMethods) > 0 {
				s.AvailableAuthMethods = withRecoveryCode(a.Result.TwoFactorMethods)
			}
			s.Dialog = screen.ErrorDialog(app.MsgAnErrorHasOccurred, app.MsgTwoFactorNotSupported)
			return s
		})
	default:
		msg := a.Result.Message
		if msg == "" {
			msg = app.MsgInvalidVerificationCode
		}
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, msg))
	}
}

func (vm *ViewModel) handleResendEmailResult(a receiveResendEmailResult) {
	if a.Err != nil {
		vm.logger.Warn().Err(a.Err).
			Str("func", "ViewModel.handleResendEmailResult").
			Msg("verification e-mail was not sent")
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, app.MsgVerificationEmailNotSent))
		return
	}
	vm.setDialog(nil)
	vm.core.Emit(ShowToast{Message: app.MsgVerificationCodeSent})
}

func (vm *ViewModel) handleCaptchaToken(a receiveCaptchaToken) {
	switch a.Result.Status {
	case models.CaptchaTokenSuccess:
		vm.core.UpdateState(func(s State) State {
			s.CaptchaToken = a.Result.Token
			return s
		})
		vm.submitLogin()
	case models.CaptchaTokenMissing:
		vm.setDialog(screen.ErrorDialog(app.MsgAnErrorHasOccurred, app.MsgCaptchaTokenMissing))
	case models.CaptchaTokenCancelled:
		// the user closed the captcha page
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (vm *ViewModel) submitLogin() {
	vm.setDialog(screen.LoadingDialog(app.MsgLoading))

	s := vm.core.State()
	req := models.LoginRequest{
		Email:        s.Email,
		Password:     s.Password,
		CaptchaToken: s.CaptchaToken,
		TwoFactor: &models.TwoFactorData{
			Code:     strings.TrimSpace(s.CodeInput),
			Method:   s.AuthMethod,
			Remember: s.IsRememberMeEnabled,
		},
	}
	vm.core.Launch(func(ctx context.Context) Action {
		return receiveLoginResult{Result: vm.auth.Login(ctx, req)}
	})
}

func (vm *ViewModel) setDialog(d *screen.DialogState) {
	vm.core.UpdateState(func(s State) State {
		s.Dialog = d
		return s
	})
}
