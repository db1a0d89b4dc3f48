// Package helpbar renders the top band: fleet status, key hints and logo.
package helpbar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	height      int
	minColWidth int
}

const (
	defaultMinColWidth = 20
	logoWidth          = 32
	colGap             = "   "
)

const logo = `   _   ___ ___ ___ _____ 
  /_\ / __/ __| __|_   _|
 / _ \\__ \__ \ _|  | |  
/_/ \_\___/___/___| |_|  
                 ops console`

var (
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	moreStyle = lipgloss.NewStyle().Faint(true)
)

func New(width, height int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: "q", Desc: "quit"}, {Key: "?", Desc: "help"}},
		width:       width,
		height:      height,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

// Entries is the view's help followed by the global entries whose key the
// view does not bind itself.
func (m *Model) Entries() []HelpEntry {
	out := slices.Clone(m.viewHelp)
	for _, g := range m.globalHelp {
		if !slices.ContainsFunc(m.viewHelp, func(e HelpEntry) bool { return e.Key == g.Key }) {
			out = append(out, g)
		}
	}
	return out
}

// View lays the entries out in columns of height-1 rows between
// systemInfo and the logo. Entries that do not fit are summarised as
// "+N more".
func (m *Model) View(systemInfo string) string {
	entries := m.Entries()
	available := m.width - lipgloss.Width(systemInfo) - logoWidth
	if len(entries) == 0 || available < m.minColWidth {
		return systemInfo
	}

	rows := max(m.height-1, 1)
	maxCols := max(available/m.minColWidth, 1)
	shown := min(len(entries), rows*maxCols)
	hidden := len(entries) - shown
	if hidden > 0 {
		shown--
		hidden++
	}

	var cols []string
	for start := 0; start < shown; start += rows {
		col := entries[start:min(start+rows, shown)]
		if len(cols) > 0 {
			cols = append(cols, colGap)
		}
		cols = append(cols, renderColumn(col))
	}
	if hidden > 0 {
		cols = append(cols, colGap, moreStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}

	help := lipgloss.NewStyle().
		Width(available).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	return lipgloss.JoinHorizontal(lipgloss.Top, systemInfo, help, "  ", logoStyle.Render(logo))
}

func renderColumn(col []HelpEntry) string {
	keyWidth := 0
	for _, e := range col {
		keyWidth = max(keyWidth, lipgloss.Width("<"+e.Key+">"))
	}
	lines := make([]string, len(col))
	for i, e := range col {
		key := "<" + e.Key + ">"
		lines[i] = keyStyle.Render(key) + strings.Repeat(" ", keyWidth-lipgloss.Width(key)+2) + e.Desc
	}
	return strings.Join(lines, "\n")
}
