package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusLine is the toast area at the bottom of a page. Each message
// expires after statusTTL unless a newer one replaced it.
type statusLine struct {
	text  string
	isErr bool
	seq   int
	last  string
}

func (s *statusLine) set(text string) tea.Cmd {
	return s.show(text, false)
}

func (s *statusLine) setError(text string) tea.Cmd {
	return s.show(text, true)
}

func (s *statusLine) show(text string, isErr bool) tea.Cmd {
	s.seq++
	s.text = text
	s.isErr = isErr
	if !isErr {
		s.last = text
	}
	seq := s.seq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (s *statusLine) clear(msg clearStatusMsg) {
	if msg.seq == s.seq {
		s.text = ""
		s.isErr = false
	}
}

// notice is the last non-error message, reported when the program ends.
func (s *statusLine) notice() string {
	return s.last
}

func (s *statusLine) View() string {
	switch {
	case s.text == "":
		return ""
	case s.isErr:
		return errorStyle.Render("Ошибка: " + s.text)
	default:
		return "OK: " + s.text
	}
}
