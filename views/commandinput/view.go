package commandinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const maxShownSuggestions = 6

var (
	cmdBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#303030")).
			Foreground(lipgloss.Color("#00d7ff")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")).
			Bold(true).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00d7ff")).Bold(true)
)

// View renders the command bar, the completion line and an optional error
// message.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}

	view := cmdBarStyle.Render(m.input.View())

	if m.errorMsg != "" {
		return view + "\n" + errStyle.Render(m.errorMsg)
	}

	if len(m.suggestions) > 0 && m.input.Value() != "" {
		shown := m.suggestions
		if len(shown) > maxShownSuggestions {
			shown = shown[:maxShownSuggestions]
		}
		parts := make([]string, len(shown))
		for i, s := range shown {
			if i == m.selected {
				parts[i] = selectedStyle.Render(s)
			} else {
				parts[i] = suggestionStyle.Render(s)
			}
		}
		view += "\n " + strings.Join(parts, "  ")
	}

	return view
}
