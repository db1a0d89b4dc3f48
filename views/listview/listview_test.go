package listview

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetops/backend"
	"assetops/nav"
)

type selectedMsg struct{ id string }

func newInventory(t *testing.T) *Model[backend.Asset] {
	t.Helper()
	return New(100, 30, Config[backend.Asset]{
		ID:    nav.ViewInventory,
		Title: "Inventory",
		Columns: []Column[backend.Asset]{
			{Title: "ID", Width: 8, Value: func(a backend.Asset) string { return a.ID }},
			{Title: "Name", Width: 16, Flex: true, Value: func(a backend.Asset) string { return a.Name }},
		},
		Load: func(context.Context) ([]backend.Asset, error) { return nil, nil },
		OnSelect: func(a backend.Asset) tea.Cmd {
			return func() tea.Msg { return selectedMsg{id: a.ID} }
		},
		Actions: []Action[backend.Asset]{{
			Key:  "m",
			Desc: "map",
			Run: func(a backend.Asset, ok bool) tea.Cmd {
				if !ok {
					return nil
				}
				return func() tea.Msg { return selectedMsg{id: "map:" + a.ID} }
			},
		}},
		Key: func(a backend.Asset) string { return a.ID },
	})
}

func assets() []backend.Asset {
	return []backend.Asset{
		{ID: "AT-010", Name: "Excavator"},
		{ID: "AT-002", Name: "Forklift 7"},
		{ID: "AT-003", Name: "Generator"},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ids(items []backend.Asset) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func TestLoaded(t *testing.T) {
	m := newInventory(t)
	require.True(t, m.Loading())

	m.Update(loadedMsg[backend.Asset]{id: nav.ViewSites, items: assets()})
	assert.True(t, m.Loading(), "a load for another view is ignored")
	assert.Empty(t, m.Items())

	m.Update(loadedMsg[backend.Asset]{id: nav.ViewInventory, items: assets()})
	assert.False(t, m.Loading())
	assert.Len(t, m.Items(), 3)
	assert.Contains(t, m.View(), "Inventory (3)")
}

func TestLoadError(t *testing.T) {
	m := newInventory(t)
	m.Update(loadedMsg[backend.Asset]{id: nav.ViewInventory, err: errors.New("backend down")})

	require.True(t, m.HasActiveDialog())
	assert.Equal(t, "backend down", m.Err())
	assert.Nil(t, m.Update(key("j")))

	m.Update(key("enter"))
	assert.False(t, m.HasActiveDialog())
}

func TestSort(t *testing.T) {
	m := newInventory(t)
	m.SetItems(assets())
	assert.Equal(t, []string{"AT-010", "AT-002", "AT-003"}, ids(m.List.Filtered))

	m.Update(key("s"))
	assert.Equal(t, []string{"AT-002", "AT-003", "AT-010"}, ids(m.List.Filtered))

	m.Update(key("S"))
	assert.Equal(t, []string{"AT-010", "AT-003", "AT-002"}, ids(m.List.Filtered))

	// Reloads keep the chosen order.
	m.SetItems(assets())
	assert.Equal(t, []string{"AT-010", "AT-003", "AT-002"}, ids(m.List.Filtered))

	m.Update(key("s"))
	assert.Equal(t, []string{"AT-010", "AT-002", "AT-003"}, ids(m.List.Filtered))
}

func TestSearchCapturesInput(t *testing.T) {
	m := newInventory(t)
	m.SetItems(assets())

	m.Update(key("/"))
	require.True(t, m.CapturesInput())
	for _, r := range "fork" {
		m.Update(key(string(r)))
	}
	assert.Equal(t, []string{"AT-002"}, ids(m.List.Filtered))

	// "s" was typed into the query, not taken as sort.
	m.Update(key("s"))
	assert.Empty(t, m.List.Filtered)

	m.Update(key("esc"))
	assert.False(t, m.CapturesInput())
	assert.Len(t, m.List.Filtered, 3)
}

func TestEnterAndActions(t *testing.T) {
	m := newInventory(t)
	assert.Nil(t, m.Update(key("enter")), "nothing to open on an empty list")
	assert.Nil(t, m.Update(key("m")))

	m.SetItems(assets())
	m.Update(key("j"))

	cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, selectedMsg{id: "AT-002"}, cmd())

	cmd = m.Update(key("m"))
	require.NotNil(t, cmd)
	assert.Equal(t, selectedMsg{id: "map:AT-002"}, cmd())
}

func TestSetItemsKeepsCursorOnReload(t *testing.T) {
	m := newInventory(t)
	m.SetItems(assets())
	m.Update(key("j"))
	m.Update(key("j"))

	m.SetItems(assets()[1:])
	sel, ok := m.List.Selected()
	require.True(t, ok)
	assert.Equal(t, "AT-003", sel.ID)
}

func TestShortHelpWithoutOnSelect(t *testing.T) {
	m := New(80, 20, Config[backend.Asset]{ID: nav.ViewSites, Title: "Sites"})
	help := m.ShortHelpItems()
	require.NotEmpty(t, help)
	assert.Equal(t, "/", help[0].Key)
}
