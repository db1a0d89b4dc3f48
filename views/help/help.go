// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package helpview

import (
	"fmt"
	"strings"

	"assetops/nav"
	"assetops/registry"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const ViewName = nav.ViewHelp

const wordWrap = 80

// CommandInfo is one row of the command table.
type CommandInfo struct {
	Name        string
	Description string
}

func Commands() []CommandInfo {
	all := registry.All()
	out := make([]CommandInfo, 0, len(all))
	for _, c := range all {
		out = append(out, CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	return out
}

// Markdown is the help page source.
func Markdown(cmds []CommandInfo) string {
	var b strings.Builder
	b.WriteString("# Commands\n\nType `:` followed by a command. Tab completes.\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "| `:%s` | %s |\n", c.Name, c.Description)
	}
	b.WriteString("\n# Keys\n\n")
	b.WriteString("- `esc` goes back to where the current screen was opened from\n")
	b.WriteString("- `q` goes back, and quits on the dashboard\n")
	b.WriteString("- `/` searches lists, `s` and `S` sort them\n")
	b.WriteString("- `ctrl+c` quits from anywhere\n")
	b.WriteString("\n# Views\n\n")
	for _, v := range nav.Views() {
		if v.TopLevel() {
			fmt.Fprintf(&b, "- `%s` %s\n", v, v.Title())
		}
	}
	return b.String()
}

// Render turns the markdown into terminal output. The raw source is
// returned when no renderer can be built.
func Render(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func New(width, height int, _ nav.Snapshot, _ view.Deps) (view.View, tea.Cmd) {
	md := Markdown(Commands())
	m := detail.New(width, height, detail.Config{
		ID:    ViewName,
		Title: "Help",
		Load: func() tea.Msg {
			return detail.BodyMsg{ID: ViewName, Body: Render(md)}
		},
	})
	m.SetContent(md)
	m.SetFooter("[press q or esc to go back]")
	return m, m.Init()
}
