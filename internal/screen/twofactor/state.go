// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package twofactor

import (
	"slices"

	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// minCodeLength is the shortest code the continue button accepts.
const minCodeLength = 6

// State is the two-factor login screen state.
type State struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	AuthMethod           models.TwoFactorAuthMethod   `json:"authMethod"`
	AvailableAuthMethods []models.TwoFactorAuthMethod `json:"availableAuthMethods"`

	CodeInput               string `json:"codeInput"`
	IsContinueButtonEnabled bool   `json:"isContinueButtonEnabled"`
	IsRememberMeEnabled     bool   `json:"isRememberMeEnabled"`

	// CaptchaToken is set once a captcha was solved and is sent with every
	// later login attempt.
	CaptchaToken string `json:"captchaToken,omitempty"`

	Dialog *screen.DialogState `json:"dialog,omitempty"`
}

// Args are the values the screen is opened with.
type Args struct {
	Email    string
	Password string

	// AvailableAuthMethods are the providers offered by the server.
	AvailableAuthMethods []models.TwoFactorAuthMethod
}

// methodPriority orders the providers the screen preselects.
var methodPriority = []models.TwoFactorAuthMethod{
	models.TwoFactorAuthenticator,
	models.TwoFactorYubiKey,
	models.TwoFactorDuo,
	models.TwoFactorEmail,
}

func initialState(args Args) State {
	methods := withRecoveryCode(args.AvailableAuthMethods)

	method := models.TwoFactorEmail
	for _, m := range methodPriority {
		if slices.Contains(methods, m) {
			method = m
			break
		}
	}

	return State{
		Email:                args.Email,
		Password:             args.Password,
		AuthMethod:           method,
		AvailableAuthMethods: methods,
	}
}

// withRecoveryCode returns a copy of methods that offers the recovery code.
func withRecoveryCode(methods []models.TwoFactorAuthMethod) []models.TwoFactorAuthMethod {
	out := slices.Clone(methods)
	if !slices.Contains(out, models.TwoFactorRecoveryCode) {
		out = append(out, models.TwoFactorRecoveryCode)
	}
	return out
}
