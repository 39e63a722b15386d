// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// aboutWindow shows the build metadata on top of the active page.
type aboutWindow struct {
	info models.AppBuildInfo
	open bool
}

// handleKey toggles the window on f1 and closes it on esc. While the window
// is open it swallows every other key.
func (w *aboutWindow) handleKey(msg tea.KeyMsg) (handled bool) {
	switch {
	case key.Matches(msg, keys.buildInfo):
		w.open = !w.open
		return true
	case w.open && key.Matches(msg, keys.esc):
		w.open = false
		return true
	}
	return w.open
}

func (w aboutWindow) View() string {
	info := w.info.Filled()
	body := fmt.Sprintf("Приложение: GoPassKeeper Client\nВерсия:     %s\nДата:       %s\nКоммит:     %s",
		info.Version, info.Date, info.Commit)
	return renderPage("О ПРОГРАММЕ", body, "esc / f1: назад")
}
