package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen"
	"github.com/MKhiriev/go-pass-keeper-client/internal/screen/movetoorg"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveVM = fakeVM[movetoorg.State, movetoorg.Action, movetoorg.Event]

func moveContent(selected string) movetoorg.Content {
	return movetoorg.Content{
		SelectedOrganizationID: selected,
		Organizations: []movetoorg.Organization{
			{ID: "org-1", Name: "Acme", Collections: []movetoorg.Collection{
				{ID: "col-1", Name: "Общая"},
				{ID: "col-2", Name: "Бухгалтерия", IsSelected: true},
			}},
			{ID: "org-2", Name: "Globex", Collections: []movetoorg.Collection{}},
			{ID: "org-3", Name: "Initech", Collections: []movetoorg.Collection{
				{ID: "col-3", Name: "IT"},
			}},
		},
		Cipher: models.Cipher{ID: "cipher-1", Name: "Почта"},
	}
}

func newTestMovePage(t *testing.T, selected string) (*moveToOrgPage, *moveVM) {
	t.Helper()

	vm := newFakeVM[movetoorg.State, movetoorg.Action, movetoorg.Event]()
	page := newMoveToOrgPage(context.Background(), vm)
	page.Update(stateMsg[movetoorg.State]{state: movetoorg.State{
		CipherID:  "cipher-1",
		ViewState: screen.ContentView(moveContent(selected)),
	}})
	return page, vm
}

func TestMoveToOrgPage_SelectOrganizationWraps(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		key      tea.KeyMsg
		want     string
	}{
		{name: "вправо", selected: "org-1", key: keyOf(tea.KeyRight), want: "org-2"},
		{name: "tab", selected: "org-2", key: keyOf(tea.KeyTab), want: "org-3"},
		{name: "вправо с последней", selected: "org-3", key: keyOf(tea.KeyRight), want: "org-1"},
		{name: "влево с первой", selected: "org-1", key: keyOf(tea.KeyLeft), want: "org-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, vm := newTestMovePage(t, tt.selected)

			page.Update(tt.key)

			assert.Equal(t, movetoorg.OrganizationSelect{OrganizationID: tt.want}, vm.last(t))
			assert.Equal(t, 0, page.cursor)
		})
	}
}

func TestMoveToOrgPage_ToggleCollectionUnderCursor(t *testing.T) {
	page, vm := newTestMovePage(t, "org-1")

	page.Update(spaceKey)
	assert.Equal(t, movetoorg.CollectionSelect{CollectionID: "col-1"}, vm.last(t))

	page.Update(keyOf(tea.KeyDown))
	page.Update(keyOf(tea.KeyDown))
	page.Update(spaceKey)
	assert.Equal(t, movetoorg.CollectionSelect{CollectionID: "col-2"}, vm.last(t))
}

func TestMoveToOrgPage_NoCollectionsNoToggle(t *testing.T) {
	page, vm := newTestMovePage(t, "org-2")

	page.Update(spaceKey)

	assert.Empty(t, vm.sent)
	assert.Contains(t, page.View(), "Нет доступных коллекций")
}

func TestMoveToOrgPage_MoveAndBack(t *testing.T) {
	page, vm := newTestMovePage(t, "org-1")

	page.Update(keyOf(tea.KeyEnter))
	assert.Equal(t, movetoorg.MoveClick{}, vm.last(t))

	page.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, movetoorg.BackClick{}, vm.last(t))
}

func TestMoveToOrgPage_ErrorDialogDismiss(t *testing.T) {
	page, vm := newTestMovePage(t, "org-1")
	page.Update(stateMsg[movetoorg.State]{state: movetoorg.State{
		ViewState: screen.ContentView(moveContent("org-1")),
		Dialog:    screen.ErrorDialog("", app.MsgSelectOneCollection),
	}})

	page.Update(spaceKey)
	assert.Empty(t, vm.sent, "пока открыт диалог, список не реагирует")

	page.Update(keyOf(tea.KeyEsc))
	assert.Equal(t, movetoorg.DismissClick{}, vm.last(t))
	assert.Contains(t, page.View(), app.MsgSelectOneCollection)
}

func TestMoveToOrgPage_LoadingIgnoresKeys(t *testing.T) {
	vm := newFakeVM[movetoorg.State, movetoorg.Action, movetoorg.Event]()
	page := newMoveToOrgPage(context.Background(), vm)
	page.Update(stateMsg[movetoorg.State]{state: movetoorg.State{ViewState: screen.LoadingView[movetoorg.Content]()}})

	page.Update(keyOf(tea.KeyRight))
	page.Update(spaceKey)

	assert.Empty(t, vm.sent)
	assert.Contains(t, page.View(), app.MsgLoading)
}

func TestMoveToOrgPage_View(t *testing.T) {
	page, _ := newTestMovePage(t, "org-1")

	view := page.View()
	assert.Contains(t, view, "Почта")
	assert.Contains(t, view, "Globex")
	assert.Contains(t, view, "[x] Бухгалтерия")
	assert.Contains(t, view, "[ ] Общая")
	assert.NotContains(t, view, "[ ] IT")

	page.Update(stateMsg[movetoorg.State]{state: movetoorg.State{ViewState: screen.EmptyView[movetoorg.Content]()}})
	assert.Contains(t, page.View(), app.MsgNoOrganizations)
}

func TestMoveToOrgPage_ToastAfterNavigateBack(t *testing.T) {
	page, _ := newTestMovePage(t, "org-1")

	page.Update(eventMsg[movetoorg.Event]{event: movetoorg.NavigateBack{}})
	page.Update(eventMsg[movetoorg.Event]{event: movetoorg.ShowToast{Message: app.MsgItemMoved}})

	_, cmd := page.Update(leaveMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, doneMsg{notice: app.MsgItemMoved}, cmd())
}
