// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package fallback is the placeholder shown when a view is entered
// without the context it needs.
package fallback

import (
	"fmt"

	"assetops/nav"
	"assetops/ui"
	opslog "assetops/utils/log"
	"assetops/views/helpbar"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func l() *opslog.Logger {
	return opslog.Component("fallback")
}

type Model struct {
	view     nav.ViewID
	missing  nav.ContextKind
	resolver *nav.Resolver
	width    int
	height   int
}

func New(width, height int, view nav.ViewID, missing nav.ContextKind, resolver *nav.Resolver) *Model {
	l().Warnf("%s entered without %s", view, missing)
	return &Model{view: view, missing: missing, resolver: resolver, width: width, height: height}
}

func (m *Model) Init() tea.Cmd    { return nil }
func (m *Model) Name() string     { return string(m.view) }
func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

// Message is the line telling the user what is missing.
func (m *Model) Message() string {
	return fmt.Sprintf("No %s selected", m.missing.Label())
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{{Key: "enter", Desc: "back to safety"}}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "enter" {
			parent, _ := m.resolver.Back()
			l().Infof("fallback on %s returned to %s", m.view, parent)
		}
	}
	return nil
}

var (
	msgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (m *Model) View() string {
	body := msgStyle.Render(m.Message()) + "\n\n" +
		hintStyle.Render("Press <Enter> to go back")
	box := ui.RenderFramedBox(m.view.Title(), "", body, "", 0)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
