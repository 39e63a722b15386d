// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/movetoorg"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// moveToOrgPage renders the organizations as tabs and the collections of
// the selected one as a checklist.
type moveToOrgPage struct {
	ctx    context.Context
	vm     viewModel[movetoorg.State, movetoorg.Action, movetoorg.Event]
	states <-chan movetoorg.State
	state  movetoorg.State

	// cursor indexes the collections of the selected organization.
	cursor  int
	spinner spinner.Model
	status  statusLine
	leaving bool
}

func newMoveToOrgPage(ctx context.Context, vm viewModel[movetoorg.State, movetoorg.Action, movetoorg.Event]) *moveToOrgPage {
	return &moveToOrgPage{
		ctx:     ctx,
		vm:      vm,
		states:  vm.Observe(ctx),
		spinner: newSpinner(),
	}
}

func (m *moveToOrgPage) Init() tea.Cmd {
	return tea.Batch(waitState(m.states), waitEvent(m.ctx, m.vm.Events()), m.spinner.Tick)
}

func (m *moveToOrgPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg[movetoorg.State]:
		m.setState(msg.state)
		return m, waitState(m.states)
	case eventMsg[movetoorg.Event]:
		return m, tea.Batch(m.handleEvent(msg.event), waitEvent(m.ctx, m.vm.Events()))
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
		if !m.leaving {
			m.handleKey(msg)
		}
	}
	return m, nil
}

func (m *moveToOrgPage) setState(s movetoorg.State) {
	m.state = s
	if n := len(m.collections()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *moveToOrgPage) content() (movetoorg.Content, bool) {
	if m.state.ViewState.Kind != screen.ViewContent {
		return movetoorg.Content{}, false
	}
	return *m.state.ViewState.Content, true
}

func (m *moveToOrgPage) collections() []movetoorg.Collection {
	c, ok := m.content()
	if !ok {
		return nil
	}
	org, _ := c.SelectedOrganization()
	return org.Collections
}

func (m *moveToOrgPage) handleKey(msg tea.KeyMsg) {
	if dialogBlocksInput(m.state.Dialog) {
		return
	}
	if m.state.Dialog != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.vm.Send(movetoorg.DismissClick{})
		}
		return
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.vm.Send(movetoorg.BackClick{})
	case key.Matches(msg, keys.left):
		m.selectOrganization(-1)
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		m.selectOrganization(+1)
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.collections())-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.space):
		if cols := m.collections(); m.cursor < len(cols) {
			m.vm.Send(movetoorg.CollectionSelect{CollectionID: cols[m.cursor].ID})
		}
	case key.Matches(msg, keys.enter):
		m.vm.Send(movetoorg.MoveClick{})
	}
}

func (m *moveToOrgPage) selectOrganization(step int) {
	c, ok := m.content()
	if !ok || len(c.Organizations) == 0 {
		return
	}
	i := slices.IndexFunc(c.Organizations, func(o movetoorg.Organization) bool {
		return o.ID == c.SelectedOrganizationID
	})
	n := len(c.Organizations)
	next := c.Organizations[((i+step)%n+n)%n]
	m.cursor = 0
	m.vm.Send(movetoorg.OrganizationSelect{OrganizationID: next.ID})
}

func (m *moveToOrgPage) handleEvent(e movetoorg.Event) tea.Cmd {
	switch e := e.(type) {
	case movetoorg.NavigateBack:
		m.leaving = true
		return cmdLeave()
	case movetoorg.ShowToast:
		return m.status.set(e.Message)
	}
	return nil
}

func (m *moveToOrgPage) View() string {
	var b strings.Builder

	switch v := m.state.ViewState; v.Kind {
	case screen.ViewLoading:
		b.WriteString(m.spinner.View() + " " + app.MsgLoading)
	case screen.ViewEmpty:
		b.WriteString(app.MsgNoOrganizations)
	case screen.ViewError:
		b.WriteString(errorStyle.Render(v.Message))
		if v.Content != nil {
			b.WriteString("\n\n")
			m.writeContent(&b, *v.Content)
		}
	case screen.ViewContent:
		m.writeContent(&b, *v.Content)
	}

	if line := m.status.View(); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	page := renderPage("ПЕРЕМЕСТИТЬ В ОРГАНИЗАЦИЮ", b.String(),
		"←/→: организация │ ↑/↓: коллекция │ space: выбрать │ enter: переместить │ esc: назад")
	return withOverlay(page, renderDialog(m.state.Dialog, m.spinner))
}

func (m *moveToOrgPage) writeContent(b *strings.Builder, c movetoorg.Content) {
	fmt.Fprintf(b, "Элемент: %s\n\n", fitText(c.Cipher.Name, 48))

	for i, org := range c.Organizations {
		if i > 0 {
			b.WriteString(" │ ")
		}
		if org.ID == c.SelectedOrganizationID {
			b.WriteString(selectedStyle.Render(org.Name))
		} else {
			b.WriteString(org.Name)
		}
	}
	b.WriteString("\n\n")

	org, _ := c.SelectedOrganization()
	if len(org.Collections) == 0 {
		b.WriteString("Нет доступных коллекций")
		return
	}
	for i, col := range org.Collections {
		fmt.Fprintf(b, "%s %s %s\n", cursor(i == m.cursor), checkbox(col.IsSelected), fitText(col.Name, 48))
	}
}
