// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"assetops/nav"
	"assetops/styles"
	"assetops/ui"
	fleetstatusview "assetops/views/fleetstatus"
	"assetops/views/helpbar"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.currentView == nil {
		return ""
	}

	globalHelp := []helpbar.HelpEntry{{Key: ":", Desc: "command"}, {Key: "esc", Desc: "back"}}
	switch m.currentID {
	case nav.ViewDashboard:
		globalHelp = append(globalHelp, helpbar.HelpEntry{Key: "q", Desc: "quit"})
	case nav.ViewHelp:
	default:
		globalHelp = append(globalHelp, helpbar.HelpEntry{Key: "?", Desc: "help"})
	}

	help := helpbar.New(m.width, fleetstatusview.Height).
		WithGlobalHelp(globalHelp).
		WithViewHelp(m.currentView.ShortHelpItems()).
		View(m.fleet.View())

	parts := []string{help}
	if m.commandInput.Visible() {
		// Same outer width as the full-width frames the screens draw.
		frameWidth := m.width + 4
		parts = append(parts, ui.RenderFramedBoxHeight("", "", m.commandInput.View(), "", frameWidth, 4))
	}
	parts = append(parts, m.currentView.View(), m.trail.Render(m.width))
	if m.notice != "" {
		parts = append(parts, styles.NoticeStyle.Render(m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
