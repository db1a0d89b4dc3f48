package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func document() map[string]any {
	return map[string]any{
		"refresh": map[string]any{"interval": "5s", "enabled": true},
		"alerts": map[string]any{
			"battery_threshold": 20,
			"categories":        []any{"battery", "geofence"},
		},
		"theme": nil,
	}
}

func keys(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key
	}
	return out
}

func TestBuild(t *testing.T) {
	root := Build("config", document())

	require.Len(t, root.Children, 3)
	assert.Equal(t, []string{"alerts", "refresh", "theme"}, keys(root.Children))
	assert.True(t, root.Expanded)

	alerts := root.Children[0]
	assert.Equal(t, []string{"battery_threshold", "categories"}, keys(alerts.Children))
	cats := alerts.Children[1]
	assert.Equal(t, []string{"[0]", "[1]"}, keys(cats.Children))
	assert.Equal(t, "geofence", cats.Children[1].Value)
	assert.Equal(t, 3, cats.Children[1].Depth)
	assert.Equal(t, "alerts.categories.[1]", cats.Children[1].Path())

	assert.Equal(t, "~", root.Children[2].Value)
	assert.Equal(t, "20", alerts.Children[0].Value)
	assert.Empty(t, root.Path())
}

func TestExpandCollapse(t *testing.T) {
	m := New(Build("config", document()))
	assert.Equal(t, []string{"config", "alerts", "refresh", "theme"}, keys(m.Visible()))

	m.HandleKey("j")
	m.HandleKey("l")
	assert.Equal(t, []string{"config", "alerts", "battery_threshold", "categories", "refresh", "theme"}, keys(m.Visible()))

	// A leaf collapses to its parent.
	m.HandleKey("j")
	require.Equal(t, "battery_threshold", m.Selected().Key)
	m.HandleKey("h")
	assert.Equal(t, "alerts", m.Selected().Key)

	m.HandleKey("h")
	assert.Equal(t, []string{"config", "alerts", "refresh", "theme"}, keys(m.Visible()))

	m.HandleKey("enter")
	assert.Len(t, m.Visible(), 6)
}

func TestExpandAll(t *testing.T) {
	m := New(Build("config", document()))
	m.ExpandAll(1)
	assert.Len(t, m.Visible(), 4)
	m.ExpandAll(2)
	assert.Len(t, m.Visible(), 8)
	m.ExpandAll(3)
	assert.Len(t, m.Visible(), 10)
}

func TestSearch(t *testing.T) {
	m := New(Build("config", document()))

	require.True(t, m.HandleKey("/"))
	require.True(t, m.Searching())
	for _, r := range "geo" {
		m.HandleKey(string(r))
	}
	assert.Equal(t, "geo", m.Term())
	assert.Equal(t, []string{"config", "alerts", "categories", "[1]"}, keys(m.Visible()))
	assert.Equal(t, "[1]", m.Selected().Key)
	assert.True(t, m.Selected().Matches)

	m.HandleKey("enter")
	assert.False(t, m.Searching())
	assert.Equal(t, "geo", m.Term())

	m.HandleKey("/")
	m.HandleKey("esc")
	assert.Empty(t, m.Term())
	assert.Contains(t, keys(m.Visible()), "refresh")
}

func TestSearchBackspace(t *testing.T) {
	m := New(Build("config", document()))
	m.HandleKey("/")
	m.HandleKey("x")
	m.HandleKey("y")
	assert.Empty(t, m.Visible())
	assert.Nil(t, m.Selected())

	m.HandleKey("backspace")
	m.HandleKey("backspace")
	assert.Empty(t, m.Term())
	assert.NotEmpty(t, m.Visible())
}

func TestUnknownKey(t *testing.T) {
	m := New(Build("config", document()))
	assert.False(t, m.HandleKey("x"))
}

func TestRender(t *testing.T) {
	m := New(Build("config", map[string]any{"site": "ST-001"}))
	m.ExpandAll(1)
	out := m.Render()
	assert.Contains(t, out, "config")
	assert.Contains(t, out, ": ST-001")
}
