// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/twofactor"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginAuth is the part of service.AuthService the login page uses.
type loginAuth interface {
	Login(ctx context.Context, req models.LoginRequest) models.LoginResult
	CaptchaTokenStream(ctx context.Context) <-chan models.CaptchaTokenResult
}

// LoginPage is the first-factor form: e-mail and master password. A
// required second factor opens the two-factor page; a required captcha
// switches the form into token entry and re-submits with the token.
type LoginPage struct {
	ctx      context.Context
	auth     loginAuth
	webVault service.WebVault

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	// captchaURI is set while the form waits for a captcha token.
	captchaURI   string
	captchaInput textinput.Model
	captchaToken string

	status statusLine
}

func newLoginPage(ctx context.Context, auth loginAuth, email string, webVault service.WebVault) *LoginPage {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 256
	emailInput.Width = 40
	emailInput.SetValue(email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	focus := 0
	if email != "" {
		focus = 1
	}
	inputs := []textinput.Model{emailInput, passwordInput}
	inputs[focus].Focus()

	captchaInput := textinput.New()
	captchaInput.Placeholder = "captcha token"
	captchaInput.Width = 40

	return &LoginPage{
		ctx:          ctx,
		auth:         auth,
		webVault:     webVault,
		inputs:       inputs,
		focus:        focus,
		captchaInput: captchaInput,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation and
// listens for captcha tokens delivered by the callback listener.
func (m *LoginPage) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitCaptchaToken(m.auth.CaptchaTokenStream(m.ctx)))
}

// Update implements [tea.Model]. Handled messages:
//   - loginResultMsg: routes the login outcome.
//   - tab / shift+tab: moves focus between e-mail and password.
//   - enter: submits the form, or the captcha token in captcha mode.
//   - esc: leaves captcha mode.
func (m *LoginPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		return m, m.handleResult(msg.result)
	case captchaTokenMsg:
		return m, tea.Batch(m.handleCaptchaToken(msg.result), waitCaptchaToken(msg.next))
	case copiedMsg:
		if msg.err != nil {
			return m, m.status.setError("не удалось скопировать ссылку: " + msg.err.Error())
		}
		return m, m.status.set("Ссылка скопирована в буфер обмена")
	case clearStatusMsg:
		m.status.clear(msg)
		return m, nil
	case tea.KeyMsg:
		if m.captchaURI != "" {
			return m, m.updateCaptcha(msg)
		}

		switch msg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginPage) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Email   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.captchaURI != "" {
		b.WriteString("\nТребуется капча. Откройте ссылку и вставьте полученный токен:\n")
		b.WriteString(m.captchaURI)
		b.WriteString("\nТокен: [")
		b.WriteString(m.captchaInput.View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
		b.WriteString("\n")
	}

	hotKeys := "tab: след. поле │ enter: подтвердить"
	if m.captchaURI != "" {
		hotKeys = "enter: отправить токен │ esc: отмена"
	}
	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LoginPage) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	pass := m.inputs[1].Value()
	if email == "" || pass == "" {
		m.errMsg = "Email и пароль обязательны"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.cmdLogin(models.LoginRequest{Email: email, Password: pass, CaptchaToken: m.captchaToken})
}

func (m *LoginPage) updateCaptcha(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.leaveCaptcha()
		return nil
	case key.Matches(msg, keys.enter):
		token := strings.TrimSpace(m.captchaInput.Value())
		if token == "" {
			m.errMsg = app.MsgCaptchaTokenMissing
			return nil
		}
		m.captchaToken = token
		m.leaveCaptcha()
		return m.submit()
	}

	var cmd tea.Cmd
	m.captchaInput, cmd = m.captchaInput.Update(msg)
	return cmd
}

// handleCaptchaToken takes a token from the callback listener. Results
// arriving while no captcha is pending are dropped.
func (m *LoginPage) handleCaptchaToken(result models.CaptchaTokenResult) tea.Cmd {
	if m.captchaURI == "" {
		return nil
	}

	switch result.Status {
	case models.CaptchaTokenSuccess:
		m.captchaToken = result.Token
		m.leaveCaptcha()
		return m.submit()
	case models.CaptchaTokenMissing:
		m.errMsg = app.MsgCaptchaTokenMissing
	case models.CaptchaTokenCancelled:
		m.leaveCaptcha()
	}
	return nil
}

func (m *LoginPage) leaveCaptcha() {
	m.captchaURI = ""
	m.captchaInput.Reset()
	m.captchaInput.Blur()
}

func (m *LoginPage) handleResult(result models.LoginResult) tea.Cmd {
	m.submitting = false

	switch result.Kind {
	case models.LoginSuccess:
		return func() tea.Msg { return doneMsg{notice: "Вход выполнен"} }
	case models.LoginTwoFactorRequired:
		args := twofactor.Args{
			Email:                strings.TrimSpace(m.inputs[0].Value()),
			Password:             m.inputs[1].Value(),
			AvailableAuthMethods: result.TwoFactorMethods,
		}
		return func() tea.Msg {
			return NavigateTo{Page: pageTwoFactor, Payload: twoFactorArgsMsg{args: args}}
		}
	case models.LoginCaptchaRequired:
		m.captchaURI = m.webVault.CaptchaURI(result.CaptchaSiteKey)
		m.captchaInput.Focus()
		return cmdCopyToClipboard(m.captchaURI)
	default:
		m.errMsg = result.Message
		if m.errMsg == "" {
			m.errMsg = app.MsgGenericError
		}
		return nil
	}
}

func (m *LoginPage) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loginResultMsg{result: auth.Login(ctx, req)}
	}
}

func (m *LoginPage) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginPage) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
