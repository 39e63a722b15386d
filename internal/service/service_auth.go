// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-pass-keeper-client/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-client/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/internal/flow"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/store"
	"github.com/MKhiriev/go-pass-keeper-client/internal/utils"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

type authService struct {
	accounts store.LocalAccountRepository
	adapter  adapter.ServerAdapter
	hasher   crypto.PasswordHasher

	userState *flow.StateFlow[datastate.DataState[*models.UserState]]
	captcha   *captchaBroadcast

	logger *logger.Logger
}

// NewAuthService creates an AuthService. The user state stays Loading until
// RestoreSession or Login completes.
func NewAuthService(accounts store.LocalAccountRepository, serverAdapter adapter.ServerAdapter, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		accounts:  accounts,
		adapter:   serverAdapter,
		hasher:    hasher,
		userState: flow.NewStateFlow(datastate.NewLoading[*models.UserState]()),
		captcha:   newCaptchaBroadcast(),
		logger:    logger,
	}
}

func (a *authService) UserStateStream(ctx context.Context) <-chan datastate.DataState[*models.UserState] {
	return a.userState.Subscribe(ctx)
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) models.LoginResult {
	req.Password = a.hasher.MasterPasswordHash(req.Password, req.Email)

	resp, err := a.adapter.Login(ctx, req)
	if err != nil {
		a.logger.Err(err).
			Str("func", "authService.Login").
			Bool("two_factor", req.TwoFactor != nil).
			Msg("login failed")

		if errors.Is(err, adapter.ErrInvalidCredentials) {
			result := models.LoginResult{Kind: models.LoginError}
			if resp.ErrorModel != nil {
				result.Message = resp.ErrorModel.Message
			}
			return result
		}
		return models.LoginResult{Kind: models.LoginError, Message: ErrorMessage(mapAdapterError(err))}
	}

	switch {
	case resp.CaptchaSiteKey != "":
		return models.LoginResult{Kind: models.LoginCaptchaRequired, CaptchaSiteKey: resp.CaptchaSiteKey}
	case len(resp.TwoFactorProviders) > 0:
		return models.LoginResult{Kind: models.LoginTwoFactorRequired, TwoFactorMethods: twoFactorMethods(resp.TwoFactorProviders)}
	}

	session, err := a.startSession(ctx, resp)
	if err != nil {
		a.logger.Err(err).
			Str("func", "authService.Login").
			Msg("failed to start session")
		return models.LoginResult{Kind: models.LoginError, Message: ErrorMessage(err)}
	}

	a.logger.Info().
		Str("func", "authService.Login").
		Str("user_id", session.Account.UserID).
		Msg("user logged in")
	return models.LoginResult{Kind: models.LoginSuccess, UserID: session.Account.UserID}
}

func (a *authService) ResendVerificationEmail(ctx context.Context, email, password string) error {
	err := a.adapter.ResendVerificationEmail(ctx, models.ResendEmailRequest{
		Email:              email,
		MasterPasswordHash: a.hasher.MasterPasswordHash(password, email),
	})
	if err != nil {
		return fmt.Errorf("resend verification email: %w", mapAdapterError(err))
	}
	return nil
}

func (a *authService) CaptchaTokenStream(ctx context.Context) <-chan models.CaptchaTokenResult {
	return a.captcha.subscribe(ctx)
}

func (a *authService) SetCaptchaToken(result models.CaptchaTokenResult) {
	a.captcha.publish(result)
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.accounts.GetActiveAccount(ctx)
	if errors.Is(err, store.ErrNoActiveAccount) {
		a.userState.Set(datastate.NewLoaded(&models.UserState{}))
		return models.Session{}, ErrNoActiveSession
	}
	if err != nil {
		a.userState.Set(datastate.NewError[*models.UserState](err))
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.adapter.SetToken(session.AccessToken)
	a.publish(session.Account)
	return session, nil
}

func (a *authService) ApplyProfile(ctx context.Context, profile models.Profile) error {
	session, err := a.accounts.GetActiveAccount(ctx)
	if errors.Is(err, store.ErrNoActiveAccount) {
		return ErrNoActiveSession
	}
	if err != nil {
		return fmt.Errorf("load active account: %w", err)
	}
	if profile.ID != "" && profile.ID != session.Account.UserID {
		return fmt.Errorf("profile %s does not belong to active account %s", profile.ID, session.Account.UserID)
	}

	if profile.Email != "" {
		session.Account.Email = profile.Email
	}
	if profile.Name != "" {
		session.Account.Name = profile.Name
	}
	session.Account.IsPremium = profile.Premium
	session.Account.Organizations = slices.Clone(profile.Organizations)

	if err = a.accounts.SaveAccount(ctx, session); err != nil {
		return fmt.Errorf("save account: %w", err)
	}
	a.publish(session.Account)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.accounts.ClearActive(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.adapter.SetToken("")
	a.userState.Set(datastate.NewLoaded(&models.UserState{}))
	return nil
}

// startSession stores the account described by a successful token
// response and makes it active.
func (a *authService) startSession(ctx context.Context, resp models.LoginResponse) (models.Session, error) {
	token, err := utils.ParseAccessToken(resp.AccessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnexpectedLoginResponse, err)
	}
	userID, err := token.GetUserID()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrUnexpectedLoginResponse, err)
	}

	account := models.Account{
		UserID:    userID,
		Email:     token.Claims.Email,
		Name:      token.Claims.Name,
		IsPremium: token.Claims.Premium,
	}

	// organization names are only known from a previous sync
	known := map[string]string{}
	if prev, err := a.accounts.GetActiveAccount(ctx); err == nil && prev.Account.UserID == userID {
		for _, org := range prev.Account.Organizations {
			known[org.ID] = org.Name
		}
	}
	for _, id := range token.OrganizationIDs() {
		name := known[id]
		if name == "" {
			name = id
		}
		account.Organizations = append(account.Organizations, models.Organization{ID: id, Name: name})
	}

	session := models.Session{
		Account:      account,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if err = a.accounts.SaveAccount(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save account: %w", err)
	}

	a.publish(account)
	return session, nil
}

func (a *authService) publish(account models.Account) {
	a.userState.Set(datastate.NewLoaded(&models.UserState{
		ActiveUserID: account.UserID,
		Accounts:     []models.Account{account},
	}))
}

// twoFactorMethods decodes the provider map of a two-factor challenge,
// ordered by provider code. Unknown keys are skipped.
func twoFactorMethods(providers map[string]any) []models.TwoFactorAuthMethod {
	methods := make([]models.TwoFactorAuthMethod, 0, len(providers))
	for key := range providers {
		code, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		methods = append(methods, models.TwoFactorAuthMethod(code))
	}
	slices.Sort(methods)
	return methods
}
