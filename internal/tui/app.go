// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin       = "login"
	pageTwoFactor   = "two-factor"
	pageMoveToOrg   = "move-to-organization"
	pageAttachments = "attachments"
)

// outcome is what a finished program reports to its caller.
type outcome struct {
	notice string
	quit   bool
}

// rootModel routes messages to the active page. It owns the global keys
// (ctrl+c, the about window) and the NavigateTo and doneMsg messages.
type rootModel struct {
	pages  map[string]tea.Model
	active string
	about  aboutWindow
	result outcome
}

func newRootModel(pages map[string]tea.Model, start string, info models.AppBuildInfo) rootModel {
	return rootModel{
		pages:  pages,
		active: start,
		about:  aboutWindow{info: info},
	}
}

func (r rootModel) page() tea.Model {
	return r.pages[r.active]
}

func (r rootModel) Init() tea.Cmd {
	if p := r.page(); p != nil {
		return p.Init()
	}
	return nil
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			r.result.quit = true
			return r, tea.Quit
		}
		if r.about.handleKey(msg) {
			return r, nil
		}
	case NavigateTo:
		return r.navigate(msg)
	case doneMsg:
		r.result.notice = msg.notice
		return r, tea.Quit
	}

	p := r.page()
	if p == nil {
		return r, nil
	}
	updated, cmd := p.Update(msg)
	r.pages[r.active] = updated
	return r, cmd
}

// navigate opens msg.Page and hands it the payload. Unknown pages are
// ignored.
func (r rootModel) navigate(msg NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[msg.Page]
	if !ok {
		return r, nil
	}

	r.active = msg.Page
	r.about.open = false

	if msg.Payload == nil {
		return r, next.Init()
	}
	payload := msg.Payload
	return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
}

func (r rootModel) View() string {
	if r.about.open {
		return r.about.View()
	}
	if p := r.page(); p != nil {
		return p.View()
	}
	return renderPage("GOPASSKEEPER", "", "")
}
