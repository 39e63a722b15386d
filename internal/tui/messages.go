package tui

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/twofactor"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// NavigateTo switches the root model to another page. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// doneMsg ends the program; notice is reported to the caller.
type doneMsg struct {
	notice string
}

// stateMsg carries a view-model state into the bubbletea loop.
type stateMsg[S any] struct {
	state S
}

// eventMsg carries a view-model event into the bubbletea loop.
type eventMsg[E any] struct {
	event E
}

type captchaTokenMsg struct {
	result models.CaptchaTokenResult
	next   <-chan models.CaptchaTokenResult
}

type loginResultMsg struct {
	result models.LoginResult
}

// twoFactorArgsMsg opens the two-factor page.
type twoFactorArgsMsg struct {
	args twofactor.Args
}

type fileStatMsg struct {
	path string
	name string
	size int64
	err  error
}

type copiedMsg struct {
	text string
	err  error
}

type leaveMsg struct{}

type clearStatusMsg struct {
	seq int
}
