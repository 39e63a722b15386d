// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/twofactor"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/viewmodel"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// twoFactorPage hosts the two-factor view-model. The view-model is created
// when the login page hands over the credentials.
type twoFactorPage struct {
	ctx      context.Context
	auth     service.AuthService
	store    viewmodel.SavedStateStore
	webVault service.WebVault
	logger   *logger.Logger

	vm      viewModel[twofactor.State, twofactor.Action, twofactor.Event]
	closeVM func()
	discard func() error
	states  <-chan twofactor.State
	state   twofactor.State

	code    textinput.Model
	spinner spinner.Model
	status  statusLine
	errMsg  string

	// captchaMode is set while the user pastes a captcha token.
	captchaMode  bool
	captchaURI   string
	captchaInput textinput.Model

	leaving bool
}

func newTwoFactorPage(ctx context.Context, auth service.AuthService, store viewmodel.SavedStateStore, webVault service.WebVault, log *logger.Logger) *twoFactorPage {
	code := textinput.New()
	code.Placeholder = "код"
	code.CharLimit = 64
	code.Width = 20

	captchaInput := textinput.New()
	captchaInput.Placeholder = "captcha token"
	captchaInput.Width = 40

	return &twoFactorPage{
		ctx:          ctx,
		auth:         auth,
		store:        store,
		webVault:     webVault,
		logger:       log,
		code:         code,
		spinner:      newSpinner(),
		captchaInput: captchaInput,
	}
}

func (m *twoFactorPage) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// open creates and starts the view-model for args.
func (m *twoFactorPage) open(args twofactor.Args) tea.Cmd {
	if m.vm != nil {
		return nil
	}

	vm, err := twofactor.New(args, m.auth, m.webVault, m.store, m.logger)
	if err == nil {
		err = vm.Start(m.ctx)
	}
	if err != nil {
		m.errMsg = fmt.Sprintf("не удалось открыть экран: %v", err)
		return nil
	}

	m.vm = vm
	m.closeVM = vm.Close
	m.discard = vm.Discard
	m.state = vm.State()
	m.code.SetValue(m.state.CodeInput)
	m.code.Focus()

	m.states = vm.Observe(m.ctx)
	tokens := m.auth.CaptchaTokenStream(m.ctx)
	return tea.Batch(waitState(m.states), waitEvent(m.ctx, vm.Events()), waitCaptchaToken(tokens))
}

func (m *twoFactorPage) close() {
	if m.closeVM != nil {
		m.closeVM()
	}
}

// forgetSnapshot drops the saved screen state once the sign-in is done.
func (m *twoFactorPage) forgetSnapshot() {
	if m.discard == nil {
		return
	}
	if err := m.discard(); err != nil {
		m.logger.Warn().Err(err).
			Str("func", "twoFactorPage.forgetSnapshot").
			Msg("saved state was not removed")
	}
}

func (m *twoFactorPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case twoFactorArgsMsg:
		return m, m.open(msg.args)
	case stateMsg[twofactor.State]:
		m.state = msg.state
		return m, waitState(m.states)
	case eventMsg[twofactor.Event]:
		if done, ok := msg.event.(twofactor.LoginCompleted); ok {
			m.leaving = true
			m.forgetSnapshot()
			return m, func() tea.Msg { return doneMsg{notice: "Вход выполнен: " + done.Email} }
		}
		return m, tea.Batch(m.handleEvent(msg.event), waitEvent(m.ctx, m.vm.Events()))
	case captchaTokenMsg:
		// the view-model submits the token; the page only leaves the paste prompt
		if msg.result.Status != models.CaptchaTokenMissing {
			m.leaveCaptcha()
		}
		return m, waitCaptchaToken(msg.next)
	case copiedMsg:
		if msg.err != nil {
			return m, m.status.setError("не удалось скопировать ссылку: " + msg.err.Error())
		}
		return m, m.status.set("Ссылка скопирована в буфер обмена: " + msg.text)
	case clearStatusMsg:
		m.status.clear(msg)
		return m, nil
	case leaveMsg:
		return m, func() tea.Msg { return doneMsg{notice: m.status.notice()} }
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.vm == nil || m.leaving {
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *twoFactorPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.captchaMode {
		return m.handleCaptchaKey(msg)
	}
	if dialogBlocksInput(m.state.Dialog) {
		return nil
	}
	if m.state.Dialog != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.vm.Send(twofactor.DialogDismiss{})
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.vm.Send(twofactor.CloseButtonClick{})
		return nil
	case key.Matches(msg, keys.enter):
		m.vm.Send(twofactor.ContinueButtonClick{})
		return nil
	case key.Matches(msg, keys.tab):
		m.vm.Send(twofactor.SelectAuthMethod{Method: nextMethod(m.state.AvailableAuthMethods, m.state.AuthMethod)})
		return nil
	case key.Matches(msg, keys.remember):
		m.vm.Send(twofactor.RememberMeToggle{Enabled: !m.state.IsRememberMeEnabled})
		return nil
	case key.Matches(msg, keys.resend):
		m.vm.Send(twofactor.ResendEmailClick{})
		return nil
	}

	before := m.code.Value()
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	if after := m.code.Value(); after != before {
		m.vm.Send(twofactor.CodeInputChanged{Input: after})
	}
	return cmd
}

func (m *twoFactorPage) handleCaptchaKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.leaveCaptcha()
		m.auth.SetCaptchaToken(models.CaptchaTokenResult{Status: models.CaptchaTokenCancelled})
		return nil
	case key.Matches(msg, keys.enter):
		token := strings.TrimSpace(m.captchaInput.Value())
		m.leaveCaptcha()
		if token == "" {
			m.auth.SetCaptchaToken(models.CaptchaTokenResult{Status: models.CaptchaTokenMissing})
			return nil
		}
		m.auth.SetCaptchaToken(models.CaptchaTokenResult{Status: models.CaptchaTokenSuccess, Token: token})
		return nil
	}

	var cmd tea.Cmd
	m.captchaInput, cmd = m.captchaInput.Update(msg)
	return cmd
}

func (m *twoFactorPage) leaveCaptcha() {
	m.captchaMode = false
	m.captchaURI = ""
	m.captchaInput.Reset()
	m.captchaInput.Blur()
	m.code.Focus()
}

func (m *twoFactorPage) handleEvent(e twofactor.Event) tea.Cmd {
	switch e := e.(type) {
	case twofactor.NavigateBack:
		m.leaving = true
		return cmdLeave()
	case twofactor.NavigateToCaptcha:
		m.captchaMode = true
		m.captchaURI = e.URI
		m.code.Blur()
		m.captchaInput.Focus()
		return cmdCopyToClipboard(e.URI)
	case twofactor.NavigateToRecoveryCode:
		return cmdCopyToClipboard(e.URI)
	case twofactor.ShowToast:
		return m.status.set(e.Message)
	}
	return nil
}

func (m *twoFactorPage) View() string {
	if m.vm == nil {
		return renderPage("ДВУХЭТАПНАЯ ПРОВЕРКА", m.errMsg, "")
	}

	s := m.state
	var b strings.Builder
	fmt.Fprintf(&b, "Аккаунт: %s\n\n", s.Email)

	b.WriteString("Способ:  ")
	for i, method := range s.AvailableAuthMethods {
		if i > 0 {
			b.WriteString(" │ ")
		}
		if method == s.AuthMethod {
			b.WriteString(selectedStyle.Render(method.String()))
		} else {
			b.WriteString(method.String())
		}
	}
	b.WriteString("\n\n")

	b.WriteString("Код:     [")
	b.WriteString(m.code.View())
	b.WriteString("]\n")
	fmt.Fprintf(&b, "%s Запомнить устройство\n", checkbox(s.IsRememberMeEnabled))

	if s.IsContinueButtonEnabled {
		b.WriteString("\n[Продолжить]\n")
	} else {
		b.WriteString(hintStyle.Render("\n[Продолжить]") + "\n")
	}

	if m.captchaMode {
		b.WriteString("\nТребуется капча. Откройте ссылку и вставьте полученный токен:\n")
		b.WriteString(m.captchaURI)
		b.WriteString("\nТокен: [")
		b.WriteString(m.captchaInput.View())
		b.WriteString("]\n")
	}
	if line := m.status.View(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}

	hotKeys := "enter: продолжить │ tab: способ │ ctrl+r: запомнить │ esc: закрыть"
	if s.AuthMethod == models.TwoFactorEmail {
		hotKeys += " │ ctrl+e: отправить код"
	}
	if m.captchaMode {
		hotKeys = "enter: отправить токен │ esc: отмена"
	}

	page := renderPage("ДВУХЭТАПНАЯ ПРОВЕРКА", strings.TrimRight(b.String(), "\n"), hotKeys)
	return withOverlay(page, renderDialog(s.Dialog, m.spinner))
}

// nextMethod returns the provider after current, wrapping around.
func nextMethod(methods []models.TwoFactorAuthMethod, current models.TwoFactorAuthMethod) models.TwoFactorAuthMethod {
	if len(methods) == 0 {
		return current
	}
	i := slices.Index(methods, current)
	return methods[(i+1)%len(methods)]
}
