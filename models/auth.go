// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TwoFactorAuthMethod identifies a second-factor provider. Values follow the
// identity server's numeric provider codes.
type TwoFactorAuthMethod int

const (
	TwoFactorAuthenticator TwoFactorAuthMethod = 0
	TwoFactorEmail         TwoFactorAuthMethod = 1
	TwoFactorDuo           TwoFactorAuthMethod = 2
	TwoFactorYubiKey       TwoFactorAuthMethod = 3
	TwoFactorRecoveryCode  TwoFactorAuthMethod = 100
)

// String returns the provider's name as shown to the user.
func (m TwoFactorAuthMethod) String() string {
	switch m {
	case TwoFactorAuthenticator:
		return "Приложение-аутентификатор"
	case TwoFactorEmail:
		return "Email"
	case TwoFactorDuo:
		return "Duo"
	case TwoFactorYubiKey:
		return "YubiKey"
	case TwoFactorRecoveryCode:
		return "Код восстановления"
	default:
		return "Неизвестный метод"
	}
}

// LoginRequest carries everything needed for one password-grant attempt
// against the identity server.
type LoginRequest struct {
	Email        string
	Password     string
	CaptchaToken string

	// TwoFactor is nil for the first-factor attempt.
	TwoFactor *TwoFactorData
}

// TwoFactorData is the second-factor part of a LoginRequest.
type TwoFactorData struct {
	Code     string
	Method   TwoFactorAuthMethod
	Remember bool
}

// LoginResponse is the decoded answer of the identity token endpoint.
// Exactly one of the groups of fields is populated.
type LoginResponse struct {
	// AccessToken is set on success.
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`

	// CaptchaSiteKey is set when the server demands a captcha.
	CaptchaSiteKey string `json:"HCaptcha_SiteKey"`

	// TwoFactorProviders is set when a second factor is required.
	TwoFactorProviders map[string]any `json:"TwoFactorProviders2"`

	// ErrorModel carries a server message for rejected attempts.
	ErrorModel *ErrorModel `json:"ErrorModel"`
}

// ErrorModel is the error body returned by the identity and API servers.
type ErrorModel struct {
	Message string `json:"Message"`
}

// ResendEmailRequest asks the server to send a new two-factor code by e-mail.
type ResendEmailRequest struct {
	Email              string `json:"email"`
	MasterPasswordHash string `json:"masterPasswordHash"`
	DeviceIdentifier   string `json:"deviceIdentifier"`
}

// CaptchaTokenResult is delivered by the captcha callback once the user has
// solved (or abandoned) a captcha challenge.
type CaptchaTokenResult struct {
	Status CaptchaTokenStatus
	Token  string
}

// CaptchaTokenStatus discriminates CaptchaTokenResult.
type CaptchaTokenStatus int

const (
	CaptchaTokenSuccess CaptchaTokenStatus = iota
	CaptchaTokenMissing
	CaptchaTokenCancelled
)

// LoginResultKind discriminates LoginResult.
type LoginResultKind int

const (
	LoginSuccess LoginResultKind = iota
	LoginCaptchaRequired
	LoginTwoFactorRequired
	LoginError
)

// LoginResult is the outcome of a login attempt as seen by a screen.
type LoginResult struct {
	Kind LoginResultKind

	// UserID is set for LoginSuccess.
	UserID string

	// CaptchaSiteKey is set for LoginCaptchaRequired.
	CaptchaSiteKey string

	// TwoFactorMethods is set for LoginTwoFactorRequired.
	TwoFactorMethods []TwoFactorAuthMethod

	// Message is set for LoginError. It may be empty when the server gave no
	// reason.
	Message string
}
