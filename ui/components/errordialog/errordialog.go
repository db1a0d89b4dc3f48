// Package errordialog draws the modal shown when a backend call fails.
package errordialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxWidth is the widest the message body gets before wrapping.
const maxWidth = 70

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("196")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
)

// Render draws msg in a red box. A short "op: cause" prefix becomes the
// title.
func Render(msg string) string {
	title := "Error"
	if op, cause, ok := strings.Cut(msg, ": "); ok && op != "" && len(op) <= 32 {
		title, msg = op, cause
	}

	body := lipgloss.NewStyle().Width(min(lipgloss.Width(msg), maxWidth)).Render(msg)
	hint := hintStyle.Render("press ") + keyStyle.Render("<Enter>") + hintStyle.Render(" to close")

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		body,
		"",
		hint,
	))
}
