package pagesview

import (
	"fmt"

	"assetops/config"
	"assetops/nav"
	"assetops/ui/components/tree"
	"assetops/views/detail"
	"assetops/views/helpbar"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// ConfigTree decodes cfg the way it is written to disk and builds an
// outline of it.
func ConfigTree(cfg config.Config) (*tree.Node, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return tree.Build("config", doc), nil
}

type settingsPage struct {
	*detail.Model
	tree *tree.Model
}

// NewSettings shows the effective configuration as a collapsible outline.
func NewSettings(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := &settingsPage{
		Model: detail.New(width, height, detail.Config{ID: nav.ViewSettings, Title: "Settings"}),
	}
	root, err := ConfigTree(deps.Config)
	if err != nil {
		m.SetError(err.Error())
		return m, nil
	}
	m.tree = tree.New(root)
	m.tree.ExpandAll(2)
	m.render()
	return m, nil
}

func (m *settingsPage) CapturesInput() bool {
	return m.tree != nil && m.tree.Searching()
}

func (m *settingsPage) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && m.tree != nil && !m.HasActiveDialog() {
		if m.tree.HandleKey(k.String()) {
			m.render()
			return nil
		}
	}
	return m.Model.Update(msg)
}

func (m *settingsPage) render() {
	header := "effective configuration (file, then environment)"
	switch {
	case m.tree.Searching():
		header = fmt.Sprintf("search: %s█", m.tree.Term())
	case m.tree.Term() != "":
		header = fmt.Sprintf("filter: %s", m.tree.Term())
	}
	m.SetHeader(header)
	if n := m.tree.Selected(); n != nil && n.Parent != nil {
		m.SetFooter(n.Path())
	}
	m.SetBody(m.tree.Render())
	m.ScrollTo(m.tree.Cursor())
}

func (m *settingsPage) ShortHelpItems() []helpbar.HelpEntry {
	if m.CapturesInput() {
		return []helpbar.HelpEntry{{Key: "enter", Desc: "apply"}, {Key: "esc", Desc: "clear"}}
	}
	return []helpbar.HelpEntry{
		{Key: "/", Desc: "search"},
		{Key: "j/k", Desc: "down/up"},
		{Key: "h/l", Desc: "fold/unfold"},
		{Key: "esc", Desc: "back"},
	}
}
