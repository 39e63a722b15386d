// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/attachments"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// attachmentsPage lists the attachments of a cipher. A file is chosen by
// typing its path; it is checked with os.Stat before being handed over.
type attachmentsPage struct {
	ctx    context.Context
	vm     viewModel[attachments.State, attachments.Action, attachments.Event]
	states <-chan attachments.State
	state  attachments.State

	cursor    int
	choosing  bool
	pathInput textinput.Model
	confirm   confirmModel
	spinner   spinner.Model
	status    statusLine
	leaving   bool
}

func newAttachmentsPage(ctx context.Context, vm viewModel[attachments.State, attachments.Action, attachments.Event]) *attachmentsPage {
	pathInput := textinput.New()
	pathInput.Placeholder = "/путь/к/файлу"
	pathInput.CharLimit = 4096
	pathInput.Width = 48

	return &attachmentsPage{
		ctx:       ctx,
		vm:        vm,
		states:    vm.Observe(ctx),
		pathInput: pathInput,
		spinner:   newSpinner(),
	}
}

func (m *attachmentsPage) Init() tea.Cmd {
	return tea.Batch(waitState(m.states), waitEvent(m.ctx, m.vm.Events()), m.spinner.Tick)
}

func (m *attachmentsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg[attachments.State]:
		m.setState(msg.state)
		return m, waitState(m.states)
	case eventMsg[attachments.Event]:
		return m, tea.Batch(m.handleEvent(msg.event), waitEvent(m.ctx, m.vm.Events()))
	case fileStatMsg:
		if msg.err != nil {
			return m, m.status.setError("файл недоступен: " + msg.err.Error())
		}
		m.vm.Send(attachments.FileChoose{Path: msg.path, Name: msg.name, SizeBytes: msg.size})
		return m, nil
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
		if m.leaving {
			return m, nil
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *attachmentsPage) setState(s attachments.State) {
	m.state = s
	if n := len(m.items()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *attachmentsPage) items() []attachments.AttachmentItem {
	if m.state.ViewState.Kind != screen.ViewContent {
		return nil
	}
	return m.state.ViewState.Content.Attachments
}

func (m *attachmentsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.choosing {
		return m.handlePathKey(msg)
	}
	if m.confirm.active() {
		switch {
		case key.Matches(msg, keys.yes):
			m.vm.Send(attachments.DeleteClick{AttachmentID: m.confirm.attachmentID})
			m.confirm = confirmModel{}
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = confirmModel{}
		}
		return nil
	}
	if dialogBlocksInput(m.state.Dialog) {
		return nil
	}
	if m.state.Dialog != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.vm.Send(attachments.DismissDialogClick{})
		}
		return nil
	}

	items := m.items()
	switch {
	case key.Matches(msg, keys.esc):
		m.vm.Send(attachments.BackClick{})
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.add):
		if m.state.ViewState.Kind == screen.ViewContent {
			m.choosing = true
			return m.pathInput.Focus()
		}
	case key.Matches(msg, keys.save):
		m.vm.Send(attachments.SaveClick{})
	case key.Matches(msg, keys.delete):
		if m.cursor < len(items) {
			m.confirm = confirmModel{attachmentID: items[m.cursor].ID, fileName: items[m.cursor].Title}
		}
	}
	return nil
}

func (m *attachmentsPage) handlePathKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.stopChoosing()
		return nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.pathInput.Value())
		m.stopChoosing()
		if path == "" {
			return nil
		}
		return cmdStatFile(path)
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return cmd
}

func (m *attachmentsPage) stopChoosing() {
	m.choosing = false
	m.pathInput.Reset()
	m.pathInput.Blur()
}

func (m *attachmentsPage) handleEvent(e attachments.Event) tea.Cmd {
	switch e := e.(type) {
	case attachments.NavigateBack:
		m.leaving = true
		return cmdLeave()
	case attachments.ShowToast:
		return m.status.set(e.Message)
	}
	return nil
}

func (m *attachmentsPage) View() string {
	var b strings.Builder

	switch v := m.state.ViewState; v.Kind {
	case screen.ViewLoading:
		b.WriteString(m.spinner.View() + " " + app.MsgLoading)
	case screen.ViewError:
		b.WriteString(errorStyle.Render(v.Message))
		if v.Content != nil {
			b.WriteString("\n\n")
			m.writeContent(&b, *v.Content)
		}
	case screen.ViewContent:
		m.writeContent(&b, *v.Content)
	}

	if m.choosing {
		b.WriteString("\n\nФайл: [")
		b.WriteString(m.pathInput.View())
		b.WriteString("]")
	}
	if line := m.status.View(); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	hotKeys := "↑/↓: выбор │ a: выбрать файл │ s: сохранить │ d: удалить │ esc: назад"
	if m.choosing {
		hotKeys = "enter: подтвердить │ esc: отмена"
	}

	page := renderPage("ВЛОЖЕНИЯ", b.String(), hotKeys)
	return withOverlay(page, m.confirm.View()+renderDialog(m.state.Dialog, m.spinner))
}

func (m *attachmentsPage) writeContent(b *strings.Builder, c attachments.Content) {
	fmt.Fprintf(b, "Элемент: %s\n\n", fitText(c.Cipher.Name, 48))

	if len(c.Attachments) == 0 {
		b.WriteString("Нет вложений\n")
	}
	for i, a := range c.Attachments {
		fmt.Fprintf(b, "%s %-40s %10s\n", cursor(i == m.cursor), fitText(a.Title, 40), a.DisplaySize)
	}

	b.WriteString("\nНовое вложение: ")
	if c.NewAttachment == nil {
		b.WriteString(app.MsgNoFileChosen)
	} else {
		fmt.Fprintf(b, "%s (%s)", c.NewAttachment.DisplayName, humanize.IBytes(uint64(max(c.NewAttachment.SizeBytes, 0))))
	}
	if !c.IsPremiumUser {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(app.MsgPremiumRequired))
	}
}

// confirmModel asks before an attachment is deleted.
type confirmModel struct {
	attachmentID string
	fileName     string
}

func (m confirmModel) active() bool {
	return m.attachmentID != ""
}

func (m confirmModel) View() string {
	if !m.active() {
		return ""
	}
	return boxStyle.Render("Удалить вложение \"" + m.fileName + "\"?\n\ny да    n нет")
}
