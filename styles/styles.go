package styles

import "github.com/charmbracelet/lipgloss"

var (
	StatusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1).
			Width(50)

	// NoticeStyle is the one-line status message under the screen.
	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	TrendUp   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	TrendDown = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)
