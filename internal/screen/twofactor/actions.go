// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package twofactor

import "github.com/MKhiriev/go-pass-keeper-client/models"

// Action is anything the two-factor screen reacts to. The exported variants
// are user intents; results of background work are unexported and can only
// be produced by the view-model itself.
type Action interface {
	twoFactorAction()
}

type (
	CloseButtonClick    struct{}
	ContinueButtonClick struct{}
	DialogDismiss       struct{}
	ResendEmailClick    struct{}

	CodeInputChanged struct {
		Input string
	}

	RememberMeToggle struct {
		Enabled bool
	}

	SelectAuthMethod struct {
		Method models.TwoFactorAuthMethod
	}
)

type (
	receiveLoginResult struct {
		Result models.LoginResult
	}

	receiveResendEmailResult struct {
		Err error
	}

	receiveCaptchaToken struct {
		Result models.CaptchaTokenResult
	}
)

func (CloseButtonClick) twoFactorAction()         {}
func (ContinueButtonClick) twoFactorAction()      {}
func (DialogDismiss) twoFactorAction()            {}
func (ResendEmailClick) twoFactorAction()         {}
func (CodeInputChanged) twoFactorAction()         {}
func (RememberMeToggle) twoFactorAction()         {}
func (SelectAuthMethod) twoFactorAction()         {}
func (receiveLoginResult) twoFactorAction()       {}
func (receiveResendEmailResult) twoFactorAction() {}
func (receiveCaptchaToken) twoFactorAction()      {}

// variants lists every Action so the router can be checked for gaps.
var variants = []Action{
	CloseButtonClick{},
	ContinueButtonClick{},
	DialogDismiss{},
	ResendEmailClick{},
	CodeInputChanged{},
	RememberMeToggle{},
	SelectAuthMethod{},
	receiveLoginResult{},
	receiveResendEmailResult{},
	receiveCaptchaToken{},
}

// Event is a one-shot instruction for the view.
type Event interface {
	twoFactorEvent()
}

type (
	NavigateBack struct{}

	// NavigateToCaptcha asks the view to open the captcha page.
	NavigateToCaptcha struct {
		URI string
	}

	// NavigateToRecoveryCode asks the view to open the recovery page.
	NavigateToRecoveryCode struct {
		URI string
	}

	ShowToast struct {
		Message string
	}

	// LoginCompleted is emitted once the server accepted the code.
	LoginCompleted struct {
		Email string
	}
)

func (NavigateBack) twoFactorEvent()           {}
func (NavigateToCaptcha) twoFactorEvent()      {}
func (NavigateToRecoveryCode) twoFactorEvent() {}
func (ShowToast) twoFactorEvent()              {}
func (LoginCompleted) twoFactorEvent()         {}
