package tui

import (
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/charmbracelet/bubbles/spinner"
)

// renderDialog draws a screen dialog. A nil dialog renders nothing.
func renderDialog(d *screen.DialogState, spin spinner.Model) string {
	if d == nil {
		return ""
	}
	switch d.Kind {
	case screen.DialogLoading:
		return boxStyle.Render(spin.View() + " " + d.Message)
	default:
		title := d.Title
		if title == "" {
			title = "Ошибка"
		}
		content := errorStyle.Render(title) + "\n\n" + d.Message + "\n\nenter / esc закрыть"
		return boxStyle.Render(content)
	}
}

// dialogBlocksInput reports whether keys must not reach the page: a loading
// dialog swallows everything.
func dialogBlocksInput(d *screen.DialogState) bool {
	return d != nil && d.Kind == screen.DialogLoading
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}
