// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package form is a vertical stack of labelled text inputs.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field declares one input. Value is the initial content.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Value       string
	ReadOnly    bool
}

// Values maps field keys to trimmed input.
type Values map[string]string

type Model struct {
	fields []Field
	inputs []textinput.Model
	focus  int
}

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	readOnlyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func New(fields ...Field) *Model {
	m := &Model{fields: fields}
	for _, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 120
		ti.SetValue(f.Value)
		m.inputs = append(m.inputs, ti)
	}
	m.focus = -1
	m.focusNext(1)
	return m
}

// Value returns the trimmed content of the field named key.
func (m *Model) Value(key string) string {
	for i, f := range m.fields {
		if f.Key == key {
			return strings.TrimSpace(m.inputs[i].Value())
		}
	}
	return ""
}

func (m *Model) SetValue(key, v string) {
	for i, f := range m.fields {
		if f.Key == key {
			m.inputs[i].SetValue(v)
		}
	}
}

func (m *Model) Values() Values {
	out := make(Values, len(m.fields))
	for i, f := range m.fields {
		out[f.Key] = strings.TrimSpace(m.inputs[i].Value())
	}
	return out
}

// Focused returns the key of the field with the cursor.
func (m *Model) Focused() string {
	if m.focus < 0 {
		return ""
	}
	return m.fields[m.focus].Key
}

func (m *Model) focusNext(step int) {
	if len(m.inputs) == 0 {
		return
	}
	if m.focus >= 0 {
		m.inputs[m.focus].Blur()
	}
	start := m.focus
	for i := 0; i < len(m.inputs); i++ {
		next := (start + step*(i+1)) % len(m.inputs)
		if next < 0 {
			next += len(m.inputs)
		}
		if !m.fields[next].ReadOnly {
			m.focus = next
			m.inputs[next].Focus()
			return
		}
	}
	m.focus = -1
}

// Update moves between fields and edits the focused one. submit is true
// when the user asked to save (ctrl+s, or enter on the last field).
func (m *Model) Update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus >= 0 {
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		}
		return false, cmd
	}

	switch key.String() {
	case "ctrl+s":
		return true, nil
	case "tab", "down":
		m.focusNext(1)
		return false, nil
	case "shift+tab", "up":
		m.focusNext(-1)
		return false, nil
	case "enter":
		if m.focus == m.lastEditable() {
			return true, nil
		}
		m.focusNext(1)
		return false, nil
	}

	if m.focus >= 0 {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return false, cmd
}

func (m *Model) lastEditable() int {
	for i := len(m.fields) - 1; i >= 0; i-- {
		if !m.fields[i].ReadOnly {
			return i
		}
	}
	return -1
}

func (m *Model) View() string {
	labelWidth := 0
	for _, f := range m.fields {
		if w := lipgloss.Width(f.Label); w > labelWidth {
			labelWidth = w
		}
	}
	lines := make([]string, 0, len(m.fields))
	for i, f := range m.fields {
		label := f.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(f.Label))
		marker := "  "
		style := labelStyle
		if i == m.focus {
			marker = "▸ "
			style = focusStyle
		}
		value := m.inputs[i].View()
		if f.ReadOnly {
			value = readOnlyStyle.Render(m.inputs[i].Value())
		}
		lines = append(lines, marker+style.Render(label)+"  "+value)
	}
	return strings.Join(lines, "\n")
}
