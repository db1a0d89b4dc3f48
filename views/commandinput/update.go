// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commandinput

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			val := strings.TrimSpace(m.input.Value())
			m.Hide()
			if val == "" {
				return nil
			}
			m.history = append(m.history, val)
			m.histPos = len(m.history)
			return func() tea.Msg { return SubmitMsg{Command: val} }

		case "esc":
			m.Hide()
			return nil

		case "up":
			if len(m.history) == 0 {
				return nil
			}
			if m.histPos > 0 {
				m.histPos--
			}
			m.input.SetValue(m.history[m.histPos])
			m.input.CursorEnd()
			return nil

		case "down":
			if len(m.history) == 0 {
				return nil
			}
			if m.histPos < len(m.history)-1 {
				m.histPos++
				m.input.SetValue(m.history[m.histPos])
			} else {
				m.histPos = len(m.history)
				m.input.Reset()
			}
			m.input.CursorEnd()
			return nil

		case "ctrl+n":
			if len(m.suggestions) > 0 {
				m.selected = (m.selected + 1) % len(m.suggestions)
			}
			return nil

		case "ctrl+p":
			if len(m.suggestions) > 0 {
				m.selected = (m.selected - 1 + len(m.suggestions)) % len(m.suggestions)
			}
			return nil

		case "tab":
			if len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[m.selected] + " ")
				m.input.CursorEnd()
				m.refreshSuggestions()
			}
			return nil
		}

		// Clear error when user edits
		if m.errorMsg != "" && (msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace) {
			m.errorMsg = ""
		}
		m.input, cmd = m.input.Update(msg)
		m.refreshSuggestions()
		return cmd
	}

	m.input, cmd = m.input.Update(msg)
	return cmd
}
