package commandinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SuggestFunc lists the command names starting with prefix.
type SuggestFunc func(prefix string) []string

// Model represents the command input bar (like in k9s).
type Model struct {
	input    textinput.Model
	visible  bool
	history  []string
	histPos  int
	errorMsg string

	suggest     SuggestFunc
	suggestions []string
	selected    int
}

// New creates a new command input model.
func New(suggest SuggestFunc) *Model {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.CharLimit = 256
	ti.Focus() // ensures cursor state initialized properly

	return &Model{
		input:   ti,
		suggest: suggest,
	}
}

// Visible returns true if the command bar is visible.
func (m *Model) Visible() bool { return m.visible }

// Show makes the command bar visible and focuses the input.
func (m *Model) Show() tea.Cmd {
	m.visible = true
	m.errorMsg = ""
	m.histPos = len(m.history)
	m.input.Focus()
	m.refreshSuggestions()
	return textinput.Blink
}

// Hide hides the command bar and clears its state.
func (m *Model) Hide() {
	m.visible = false
	m.errorMsg = ""
	m.input.Blur()
	m.input.Reset()
	m.suggestions = nil
	m.selected = 0
}

// ShowError reopens the bar with an error message under the prompt.
func (m *Model) ShowError(msg string) tea.Cmd {
	cmd := m.Show()
	m.errorMsg = msg
	return cmd
}

// Error returns the message currently shown, if any.
func (m *Model) Error() string { return m.errorMsg }

// Suggestions returns the current completion candidates.
func (m *Model) Suggestions() []string { return m.suggestions }

func (m *Model) refreshSuggestions() {
	m.selected = 0
	if m.suggest == nil {
		m.suggestions = nil
		return
	}
	m.suggestions = m.suggest(m.input.Value())
}
