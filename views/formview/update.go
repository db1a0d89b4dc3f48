package formview

import (
	"assetops/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case spinner.TickMsg:
		if !m.saving && !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case FillMsg:
		if msg.ID != m.cfg.ID {
			return nil
		}
		m.loading = false
		for k, v := range msg.Values {
			m.form.SetValue(k, v)
		}
		return nil

	case SavedMsg:
		if msg.ID != m.cfg.ID {
			return nil
		}
		m.saving = false
		l().Infof("%s saved", m.cfg.ID)
		if msg.After != nil {
			msg.After()
		}
		return nil

	case view.ErrorMsg:
		m.saving = false
		m.loading = false
		m.err = msg.Error()
		l().Warnf("%s: %v", m.cfg.ID, msg.Err)
		return nil

	case tea.KeyMsg:
		if m.err != "" {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.err = ""
			}
			return nil
		}
		if m.saving {
			return nil
		}
		if msg.String() == "esc" {
			if m.cfg.Cancel != nil {
				m.cfg.Cancel()
			}
			return nil
		}
		submit, cmd := m.form.Update(msg)
		if !submit {
			return cmd
		}
		return m.submit()
	}

	_, cmd := m.form.Update(msg)
	return cmd
}

func (m *Model) submit() tea.Cmd {
	if m.cfg.Submit == nil {
		return nil
	}
	save, err := m.cfg.Submit(m.form.Values())
	if err != nil {
		m.err = err.Error()
		return nil
	}
	m.saving = true
	return tea.Batch(m.spinner.Tick, save)
}
