package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// fakeVM записывает отправленные действия; страницы вызывают Send
// синхронно из Update, поэтому синхронизация не нужна.
type fakeVM[S, A, E any] struct {
	sent   []A
	states chan S
	events chan E
}

func newFakeVM[S, A, E any]() *fakeVM[S, A, E] {
	return &fakeVM[S, A, E]{
		states: make(chan S, 1),
		events: make(chan E, 1),
	}
}

func (f *fakeVM[S, A, E]) Send(a A) { f.sent = append(f.sent, a) }
func (f *fakeVM[S, A, E]) Observe(context.Context) <-chan S { return f.states }
func (f *fakeVM[S, A, E]) Events() <-chan E { return f.events }

func (f *fakeVM[S, A, E]) last(t *testing.T) A {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatal("no action sent")
	}
	return f.sent[len(f.sent)-1]
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// ── view helpers ─────────────────────────────────────────────────────────

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "короче лимита", in: "abc", max: 5, want: "abc"},
		{name: "ровно лимит", in: "abcde", max: 5, want: "abcde"},
		{name: "обрезка с многоточием", in: "abcdefgh", max: 6, want: "abc..."},
		{name: "кириллица по рунам", in: "приветмир", max: 6, want: "при..."},
		{name: "маленький лимит", in: "abcdef", max: 2, want: "ab"},
		{name: "нулевой лимит", in: "abc", max: 0, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestRenderPage(t *testing.T) {
	page := renderPage("ЗАГОЛОВОК", "строка 1\nстрока 2", "esc: назад")

	assert.Contains(t, page, "ЗАГОЛОВОК")
	assert.Contains(t, page, "  строка 1\n")
	assert.Contains(t, page, "  строка 2\n")
	assert.Contains(t, page, "esc: назад")
	assert.Contains(t, page, "f1: о программе")
}

func TestRenderPage_EmptyData(t *testing.T) {
	assert.Contains(t, renderPage("T", "  ", ""), "  -\n")
}

func TestWithOverlay(t *testing.T) {
	assert.Equal(t, "page", withOverlay("page", ""))
	assert.Contains(t, withOverlay("page", "box"), "box")
}

func TestCheckboxAndCursor(t *testing.T) {
	assert.Equal(t, "[x]", checkbox(true))
	assert.Equal(t, "[ ]", checkbox(false))
	assert.Equal(t, ">", cursor(true))
	assert.Equal(t, " ", cursor(false))
}

// ── dialogs ──────────────────────────────────────────────────────────────

func TestRenderDialog(t *testing.T) {
	spin := newSpinner()

	assert.Empty(t, renderDialog(nil, spin))
	assert.Contains(t, renderDialog(screen.LoadingDialog("Сохранение..."), spin), "Сохранение...")

	errBox := renderDialog(screen.ErrorDialog("", "сломалось"), spin)
	assert.Contains(t, errBox, "Ошибка")
	assert.Contains(t, errBox, "сломалось")

	titled := renderDialog(screen.ErrorDialog("Внимание", "текст"), spin)
	assert.Contains(t, titled, "Внимание")
}

func TestDialogBlocksInput(t *testing.T) {
	assert.False(t, dialogBlocksInput(nil))
	assert.False(t, dialogBlocksInput(screen.ErrorDialog("", "x")))
	assert.True(t, dialogBlocksInput(screen.LoadingDialog("x")))
}

// ── status line ──────────────────────────────────────────────────────────

func TestStatusLine(t *testing.T) {
	var s statusLine

	assert.Empty(t, s.View())

	cmd := s.set("готово")
	assert.NotNil(t, cmd)
	assert.Equal(t, "OK: готово", s.View())
	assert.Equal(t, "готово", s.notice())

	s.setError("сбой")
	assert.Contains(t, s.View(), "Ошибка: сбой")
	assert.Equal(t, "готово", s.notice(), "ошибка не становится итоговым сообщением")
}

func TestStatusLine_ClearOnlyLatest(t *testing.T) {
	var s statusLine

	s.set("первое")
	stale := clearStatusMsg{seq: s.seq}
	s.set("второе")

	s.clear(stale)
	assert.Equal(t, "OK: второе", s.View())

	s.clear(clearStatusMsg{seq: s.seq})
	assert.Empty(t, s.View())
}
