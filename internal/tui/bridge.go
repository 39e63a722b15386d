// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// leaveDelay keeps a page alive after NavigateBack so events emitted right
// after it (a toast) still reach the status line.
const leaveDelay = 300 * time.Millisecond

// statusTTL is how long a status line stays visible.
const statusTTL = 3 * time.Second

// viewModel is the part of a screen view-model the pages use.
type viewModel[S, A, E any] interface {
	Send(A)
	Observe(ctx context.Context) <-chan S
	Events() <-chan E
}

// waitState delivers the next state of ch. A closed channel yields no
// message and ends the subscription.
func waitState[S any](ch <-chan S) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg[S]{state: s}
	}
}

// waitEvent delivers the next event of ch.
func waitEvent[E any](ctx context.Context, ch <-chan E) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case e := <-ch:
			return eventMsg[E]{event: e}
		}
	}
}

// waitCaptchaToken delivers the next captcha result of ch.
func waitCaptchaToken(ch <-chan models.CaptchaTokenResult) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return captchaTokenMsg{result: r, next: ch}
	}
}

func cmdLeave() tea.Cmd {
	return tea.Tick(leaveDelay, func(time.Time) tea.Msg {
		return leaveMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

func cmdStatFile(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return fileStatMsg{path: path, err: err}
		}
		return fileStatMsg{path: path, name: filepath.Base(path), size: info.Size()}
	}
}
