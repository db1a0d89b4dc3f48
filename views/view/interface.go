package view

import (
	"assetops/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
)

// View is one screen of the console. Screens are pointers and mutate in
// place; Update only returns follow-up commands.
type View interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	Init() tea.Cmd
	Name() string
	ShortHelpItems() []helpbar.HelpEntry
	OnEnter() tea.Cmd
	OnExit() tea.Cmd
}

// DialogHolder is implemented by screens that can open a modal. While it
// is open the root forwards every key to the screen.
type DialogHolder interface {
	HasActiveDialog() bool
}

// InputCapturer is implemented by screens with text entry. While it
// captures, esc and q belong to the screen rather than the root.
type InputCapturer interface {
	CapturesInput() bool
}

// Capturing reports whether v wants every key for itself right now.
func Capturing(v View) bool {
	if d, ok := v.(DialogHolder); ok && d.HasActiveDialog() {
		return true
	}
	if c, ok := v.(InputCapturer); ok && c.CapturesInput() {
		return true
	}
	return false
}
