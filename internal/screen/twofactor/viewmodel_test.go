// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package twofactor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/mock"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/screentest"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testWebVault = service.WebVault{Address: "https://vault.example.com"}

func testArgs() Args {
	return Args{
		Email:                "alice@example.com",
		Password:             "master-password",
		AvailableAuthMethods: []models.TwoFactorAuthMethod{models.TwoFactorEmail},
	}
}

type testEnv struct {
	vm      *ViewModel
	auth    *mock.MockAuthService
	captcha chan models.CaptchaTokenResult
	store   *viewmodel.MemoryStore
	states  <-chan State
}

// newTestVM — хелпер: запускает view-model с моком AuthService
func newTestVM(t *testing.T, args Args) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	captcha := make(chan models.CaptchaTokenResult, 1)
	auth.EXPECT().CaptchaTokenStream(gomock.Any()).Return(captcha)

	store := viewmodel.NewMemoryStore()
	vm, err := New(args, auth, testWebVault, store, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, vm.Start(context.Background()))
	t.Cleanup(vm.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return &testEnv{vm: vm, auth: auth, captcha: captcha, store: store, states: vm.Observe(ctx)}
}

func (e *testEnv) waitState(t *testing.T, pred func(State) bool) State {
	t.Helper()
	return screentest.WaitState(t, e.states, pred)
}

// typeCode вводит код и ждёт, пока кнопка станет активной
func (e *testEnv) typeCode(t *testing.T, code string) {
	t.Helper()
	e.vm.Send(CodeInputChanged{Input: code})
	e.waitState(t, func(s State) bool { return s.CodeInput == code })
}

func dialogIs(kind screen.DialogKind) func(State) bool {
	return func(s State) bool { return s.Dialog != nil && s.Dialog.Kind == kind }
}

func noDialog(s State) bool { return s.Dialog == nil }

// ── Initial state ────────────────────────────────────────────────────────────

func TestNew_InitialState(t *testing.T) {
	env := newTestVM(t, Args{
		Email:                "alice@example.com",
		Password:             "pw",
		AvailableAuthMethods: []models.TwoFactorAuthMethod{models.TwoFactorEmail, models.TwoFactorAuthenticator},
	})

	s := env.vm.State()
	assert.Equal(t, "alice@example.com", s.Email)
	assert.Equal(t, models.TwoFactorAuthenticator, s.AuthMethod)
	assert.Equal(t, []models.TwoFactorAuthMethod{
		models.TwoFactorEmail, models.TwoFactorAuthenticator, models.TwoFactorRecoveryCode,
	}, s.AvailableAuthMethods)
	assert.False(t, s.IsContinueButtonEnabled)
	assert.False(t, s.IsRememberMeEnabled)
	assert.Nil(t, s.Dialog)
}

func TestNew_DefaultsToEmailWithoutProviders(t *testing.T) {
	env := newTestVM(t, Args{Email: "bob@example.com"})

	s := env.vm.State()
	assert.Equal(t, models.TwoFactorEmail, s.AuthMethod)
	assert.Equal(t, []models.TwoFactorAuthMethod{models.TwoFactorRecoveryCode}, s.AvailableAuthMethods)
}

// ── Input ────────────────────────────────────────────────────────────────────

func TestCodeInputChanged_EnablesContinue(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(CodeInputChanged{Input: "12345"})
	s := env.waitState(t, func(s State) bool { return s.CodeInput == "12345" })
	assert.False(t, s.IsContinueButtonEnabled)

	env.vm.Send(CodeInputChanged{Input: "123456"})
	s = env.waitState(t, func(s State) bool { return s.CodeInput == "123456" })
	assert.True(t, s.IsContinueButtonEnabled)
}

func TestRememberMeToggle(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(RememberMeToggle{Enabled: true})
	env.waitState(t, func(s State) bool { return s.IsRememberMeEnabled })

	env.vm.Send(RememberMeToggle{Enabled: false})
	env.waitState(t, func(s State) bool { return !s.IsRememberMeEnabled })
}

func TestCloseButtonClick_NavigatesBack(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(CloseButtonClick{})
	assert.Equal(t, NavigateBack{}, screentest.NextEvent(t, env.vm.Events()))
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestContinueButtonClick_LoginSuccess(t *testing.T) {
	env := newTestVM(t, testArgs())
	env.typeCode(t, " 123456 ")
	env.vm.Send(RememberMeToggle{Enabled: true})
	env.waitState(t, func(s State) bool { return s.IsRememberMeEnabled })

	release := make(chan struct{})
	env.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{
		Email:     "alice@example.com",
		Password:  "master-password",
		TwoFactor: &models.TwoFactorData{Code: "123456", Method: models.TwoFactorEmail, Remember: true},
	}).DoAndReturn(func(context.Context, models.LoginRequest) models.LoginResult {
		<-release
		return models.LoginResult{Kind: models.LoginSuccess, UserID: "user-1"}
	})

	env.vm.Send(ContinueButtonClick{})
	s := env.waitState(t, dialogIs(screen.DialogLoading))
	assert.Equal(t, app.MsgLoading, s.Dialog.Message)

	close(release)
	env.waitState(t, noDialog)
	assert.Equal(t, LoginCompleted{Email: "alice@example.com"}, screentest.NextEvent(t, env.vm.Events()))
}

func TestLoginResult_OnlySuccessCompletesLogin(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(receiveLoginResult{Result: models.LoginResult{Kind: models.LoginError, Message: "Неверный код"}})
	env.waitState(t, dialogIs(screen.DialogError))
	env.vm.Send(receiveLoginResult{Result: models.LoginResult{Kind: models.LoginTwoFactorRequired}})
	env.waitState(t, func(s State) bool { return s.Dialog != nil && s.Dialog.Message == app.MsgTwoFactorNotSupported })

	screentest.NoEvent(t, env.vm.Events(), 50*time.Millisecond)
}

func TestContinueButtonClick_IgnoredWhileDisabled(t *testing.T) {
	env := newTestVM(t, testArgs())

	// Login не ожидается: gomock упадёт при вызове
	env.vm.Send(ContinueButtonClick{})
	env.typeCode(t, "1")
	assert.Nil(t, env.vm.State().Dialog)
}

func TestLoginResult_CaptchaRequired(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(receiveLoginResult{Result: models.LoginResult{
		Kind:           models.LoginCaptchaRequired,
		CaptchaSiteKey: "site-key",
	}})

	ev := screentest.NextEvent(t, env.vm.Events())
	assert.Equal(t, NavigateToCaptcha{URI: testWebVault.CaptchaURI("site-key")}, ev)
	assert.Nil(t, env.vm.State().Dialog)
}

func TestLoginResult_CaptchaURIIsDeterministic(t *testing.T) {
	env := newTestVM(t, testArgs())

	for range 2 {
		env.vm.Send(receiveLoginResult{Result: models.LoginResult{Kind: models.LoginCaptchaRequired, CaptchaSiteKey: "k"}})
		assert.Equal(t, NavigateToCaptcha{URI: testWebVault.CaptchaURI("k")}, screentest.NextEvent(t, env.vm.Events()))
	}
}

func TestLoginResult_Error(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "server message", message: "Код устарел", want: "Код устарел"},
		{name: "no message", message: "", want: app.MsgInvalidVerificationCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestVM(t, testArgs())

			env.vm.Send(receiveLoginResult{Result: models.LoginResult{Kind: models.LoginError, Message: tt.message}})
			s := env.waitState(t, dialogIs(screen.DialogError))
			assert.Equal(t, screen.ErrorDialog(app.MsgAnErrorHasOccurred, tt.want), s.Dialog)
		})
	}
}

func TestLoginResult_TwoFactorRequiredAgain(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(receiveLoginResult{Result: models.LoginResult{
		Kind:             models.LoginTwoFactorRequired,
		TwoFactorMethods: []models.TwoFactorAuthMethod{models.TwoFactorYubiKey},
	}})

	s := env.waitState(t, dialogIs(screen.DialogError))
	assert.Equal(t, app.MsgTwoFactorNotSupported, s.Dialog.Message)
	assert.Equal(t, []models.TwoFactorAuthMethod{models.TwoFactorYubiKey, models.TwoFactorRecoveryCode}, s.AvailableAuthMethods)
}

func TestDialogDismiss(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(receiveLoginResult{Result: models.LoginResult{Kind: models.LoginError}})
	env.waitState(t, dialogIs(screen.DialogError))

	env.vm.Send(DialogDismiss{})
	env.waitState(t, noDialog)
}

// ── Resend e-mail ────────────────────────────────────────────────────────────

func TestResendEmailClick_NoOpForOtherMethods(t *testing.T) {
	env := newTestVM(t, Args{
		Email:                "alice@example.com",
		Password:             "master-password",
		AvailableAuthMethods: []models.TwoFactorAuthMethod{models.TwoFactorAuthenticator, models.TwoFactorEmail},
	})
	before := env.vm.State()
	require.Equal(t, models.TwoFactorAuthenticator, before.AuthMethod)

	// ResendVerificationEmail не ожидается
	env.vm.Send(ResendEmailClick{})
	env.vm.Send(RememberMeToggle{Enabled: true})
	after := env.waitState(t, func(s State) bool { return s.IsRememberMeEnabled })

	after.IsRememberMeEnabled = false
	assert.Equal(t, before, after)
	screentest.NoEvent(t, env.vm.Events(), 50*time.Millisecond)
}

func TestResendEmailClick_Success(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.auth.EXPECT().
		ResendVerificationEmail(gomock.Any(), "alice@example.com", "master-password").
		Return(nil)

	env.vm.Send(ResendEmailClick{})
	assert.Equal(t, ShowToast{Message: app.MsgVerificationCodeSent}, screentest.NextEvent(t, env.vm.Events()))
	assert.Nil(t, env.vm.State().Dialog)
}

func TestResendEmailClick_Failure(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.auth.EXPECT().
		ResendVerificationEmail(gomock.Any(), "alice@example.com", "master-password").
		Return(errors.New("boom"))

	env.vm.Send(ResendEmailClick{})
	s := env.waitState(t, dialogIs(screen.DialogError))
	assert.Equal(t, screen.ErrorDialog(app.MsgAnErrorHasOccurred, app.MsgVerificationEmailNotSent), s.Dialog)
}

// ── Provider choice ──────────────────────────────────────────────────────────

func TestSelectAuthMethod(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(SelectAuthMethod{Method: models.TwoFactorAuthenticator})
	env.waitState(t, func(s State) bool { return s.AuthMethod == models.TwoFactorAuthenticator })
}

func TestSelectAuthMethod_RecoveryCodeNavigates(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.vm.Send(SelectAuthMethod{Method: models.TwoFactorRecoveryCode})

	ev := screentest.NextEvent(t, env.vm.Events())
	assert.Equal(t, NavigateToRecoveryCode{URI: testWebVault.RecoveryCodeURI()}, ev)
	assert.Equal(t, models.TwoFactorEmail, env.vm.State().AuthMethod)
}

// ── Captcha ──────────────────────────────────────────────────────────────────

func TestCaptchaToken_SuccessResubmitsLogin(t *testing.T) {
	env := newTestVM(t, testArgs())
	env.typeCode(t, "654321")

	called := make(chan models.LoginRequest, 1)
	env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.LoginRequest) models.LoginResult {
			called <- req
			return models.LoginResult{Kind: models.LoginSuccess}
		})

	env.captcha <- models.CaptchaTokenResult{Status: models.CaptchaTokenSuccess, Token: "captcha-token"}

	req := screentest.NextEvent(t, called)
	assert.Equal(t, "captcha-token", req.CaptchaToken)
	assert.Equal(t, "654321", req.TwoFactor.Code)

	s := env.waitState(t, noDialog)
	assert.Equal(t, "captcha-token", s.CaptchaToken)
}

func TestCaptchaToken_Missing(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.captcha <- models.CaptchaTokenResult{Status: models.CaptchaTokenMissing}

	s := env.waitState(t, dialogIs(screen.DialogError))
	assert.Equal(t, app.MsgCaptchaTokenMissing, s.Dialog.Message)
}

func TestCaptchaToken_CancelledDoesNothing(t *testing.T) {
	env := newTestVM(t, testArgs())
	before := env.vm.State()

	env.captcha <- models.CaptchaTokenResult{Status: models.CaptchaTokenCancelled}
	// точка синхронизации: действия обрабатываются по порядку
	env.vm.Send(DialogDismiss{})
	screentest.NoEvent(t, env.vm.Events(), 50*time.Millisecond)

	assert.Equal(t, before, env.vm.State())
}

// ── Restoration ──────────────────────────────────────────────────────────────

func TestRestore_RoundTrip(t *testing.T) {
	env := newTestVM(t, testArgs())

	env.typeCode(t, "123456")
	env.vm.Send(RememberMeToggle{Enabled: true})
	env.vm.Send(SelectAuthMethod{Method: models.TwoFactorAuthenticator})
	env.vm.Send(receiveLoginResult{Result: models.LoginResult{Kind: models.LoginError, Message: "нет"}})
	want := env.waitState(t, func(s State) bool {
		return s.IsRememberMeEnabled && s.AuthMethod == models.TwoFactorAuthenticator && s.Dialog != nil
	})
	env.vm.Close()

	restored, err := New(testArgs(), env.auth, testWebVault, env.store, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, want, restored.State())
}

func TestRestore_SlotIsPerEmail(t *testing.T) {
	env := newTestVM(t, testArgs())
	env.typeCode(t, "123456")
	env.vm.Close()

	other := testArgs()
	other.Email = "bob@example.com"
	vm, err := New(other, env.auth, testWebVault, env.store, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, initialState(other), vm.State())
}

func TestDiscard_ForgetsSlotOfThisEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	store := mock.NewMockSavedStateStore(ctrl)

	args := testArgs()
	slot := ScreenName + "/" + args.Email
	store.EXPECT().Load(slot, gomock.Any()).Return(false, nil)
	store.EXPECT().Save(slot, gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().Forget(slot).Return(nil)

	vm, err := New(args, auth, testWebVault, store, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, vm.Discard())
}

func TestDiscard_ReportsStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	store := mock.NewMockSavedStateStore(ctrl)

	store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(false, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().Forget(gomock.Any()).Return(errors.New("disk full"))

	vm, err := New(testArgs(), auth, testWebVault, store, logger.Nop())
	require.NoError(t, err)
	assert.ErrorContains(t, vm.Discard(), "disk full")
}
