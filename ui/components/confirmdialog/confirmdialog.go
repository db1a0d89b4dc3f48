// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package confirmdialog

import (
	"fmt"
	"strings"

	"assetops/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultMsg carries the answer. Tag tells apart several questions asked
// by the same screen.
type ResultMsg struct {
	Tag       string
	Confirmed bool
}

type Model struct {
	Visible bool
	Message string
	Tag     string
}

func New() *Model { return &Model{} }

// Ask shows message until the user answers.
func (m *Model) Ask(tag, message string) {
	m.Visible = true
	m.Tag = tag
	m.Message = message
}

func (m *Model) answer(yes bool) tea.Cmd {
	tag := m.Tag
	m.Visible = false
	m.Tag = ""
	m.Message = ""
	return func() tea.Msg { return ResultMsg{Tag: tag, Confirmed: yes} }
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.Visible {
		return nil
	}
	switch key.String() {
	case "y", "Y", "enter":
		return m.answer(true)
	case "n", "N", "esc":
		return m.answer(false)
	}
	return nil
}

func (m *Model) View() string {
	if !m.Visible {
		return ""
	}

	lines := []string{
		fmt.Sprintf("⚠  %s", m.Message),
		"",
		"[y] Yes   [n] No",
	}

	contentWidth := 0
	for _, l := range lines {
		contentWidth = max(contentWidth, lipgloss.Width(l))
	}

	hPad := 2
	padded := make([]string, 0, len(lines)+2)
	padded = append(padded, "")
	for _, l := range lines {
		padded = append(padded, strings.Repeat(" ", hPad)+l+strings.Repeat(" ", contentWidth-lipgloss.Width(l)+hPad))
	}
	padded = append(padded, "")

	return ui.RenderFramedBox("Confirm", "", strings.Join(padded, "\n"), "", contentWidth+hPad*2)
}
