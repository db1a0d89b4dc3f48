package listview

import (
	filterlist "assetops/ui/components/filterable/list"
	"assetops/ui/components/sorting"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SetItems shows items as if they had just been loaded.
func (m *Model[T]) SetItems(items []T) {
	if m.cfg.Prepare != nil {
		items = m.cfg.Prepare(items)
	}
	m.sortItems(items)
	m.List.SetItems(items)
	l().Debugf("%s: %d items", m.cfg.ID, len(items))
}

func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg[T]:
		if msg.id != m.cfg.ID {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			l().Warnf("load %s: %v", m.cfg.ID, msg.err)
			m.err = msg.err.Error()
			return nil
		}
		m.SetItems(msg.items)
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil

	case tea.KeyMsg:
		if m.err != "" {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.err = ""
			}
			return nil
		}

		if m.List.Mode == filterlist.ModeSearching {
			m.List.HandleKey(msg)
			return nil
		}

		switch msg.String() {
		case "enter":
			if m.cfg.OnSelect == nil {
				return nil
			}
			if item, ok := m.List.Selected(); ok {
				return m.cfg.OnSelect(item)
			}
			return nil
		case "r":
			return m.Reload()
		case "s":
			m.sortCol = (m.sortCol + 1) % len(m.cfg.Columns)
			m.order = sorting.Ascending
			m.resort()
			return nil
		case "S":
			if m.sortCol >= 0 {
				m.order = m.order.Flip()
				m.resort()
			}
			return nil
		}

		for _, a := range m.cfg.Actions {
			if msg.String() == a.Key {
				item, ok := m.List.Selected()
				return a.Run(item, ok)
			}
		}

		m.List.HandleKey(msg)
		return nil
	}
	return nil
}

func (m *Model[T]) sortItems(items []T) {
	if m.sortCol < 0 || m.sortCol >= len(m.cfg.Columns) {
		return
	}
	sorting.SortStringField(items, m.order, m.cfg.Columns[m.sortCol].Value)
}

func (m *Model[T]) resort() {
	m.sortItems(m.List.Items)
	m.List.ApplyFilter()
}

func (m *Model[T]) resize(width, height int) {
	m.width = width
	m.height = height
	m.List.Viewport.Width = width
	m.List.Viewport.Height = m.contentLines()
}
