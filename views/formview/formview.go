// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package formview is the screen shared by every create/edit workflow: a
// form, a save request and a resolver call once the save is confirmed.
package formview

import (
	"context"

	"assetops/nav"
	"assetops/ui"
	"assetops/ui/components/errordialog"
	"assetops/ui/components/form"
	opslog "assetops/utils/log"
	"assetops/views/helpbar"
	"assetops/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func l() *opslog.Logger {
	return opslog.Component("formview")
}

type Config struct {
	ID     nav.ViewID
	Title  string
	Header string
	Fields []form.Field

	// Submit validates the values and returns the save request. A non-nil
	// error is shown without sending anything.
	Submit func(values form.Values) (tea.Cmd, error)
	// Cancel leaves the screen without saving.
	Cancel func()
	// Load optionally fetches the record being edited; its result is
	// applied through Fill.
	Load tea.Cmd
}

// SavedMsg ends a successful save. After runs on the update loop, where
// navigation is allowed.
type SavedMsg struct {
	ID    nav.ViewID
	After func()
}

// FillMsg sets field values once the edited record arrived.
type FillMsg struct {
	ID     nav.ViewID
	Values form.Values
}

type Model struct {
	cfg    Config
	form   *form.Model
	width  int
	height int

	saving  bool
	loading bool
	spinner spinner.Model
	err     string
}

func New(width, height int, cfg Config) *Model {
	return &Model{
		cfg:     cfg,
		form:    form.New(cfg.Fields...),
		width:   width,
		height:  height,
		loading: cfg.Load != nil,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.cfg.Load == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.cfg.Load)
}

func (m *Model) Name() string { return string(m.cfg.ID) }

// Form exposes the fields, mostly for tests.
func (m *Model) Form() *form.Model { return m.form }

func (m *Model) Saving() bool { return m.saving }

func (m *Model) Err() string { return m.err }

func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) HasActiveDialog() bool { return m.err != "" }

// CapturesInput is always true: every printable key belongs to a field.
func (m *Model) CapturesInput() bool { return true }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "tab", Desc: "next field"},
		{Key: "ctrl+s", Desc: "save"},
		{Key: "esc", Desc: "cancel"},
	}
}

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)

func (m *Model) View() string {
	header := ""
	if m.cfg.Header != "" {
		header = headerStyle.Render(m.cfg.Header)
	}
	footer := "ctrl+s save · esc cancel"
	switch {
	case m.saving:
		footer = m.spinner.View() + " saving…"
	case m.loading:
		footer = m.spinner.View() + " loading…"
	}
	frame := ui.ComputeFrameDimensions(m.width, m.height, 80, 20, header, footer)
	out := ui.RenderFramedBoxHeight(m.cfg.Title, header, "\n"+m.form.View(), footer, frame.FrameWidth, frame.FrameHeight)
	if m.err != "" {
		return ui.OverlayCentered(out, errordialog.Render(m.err), frame.FrameWidth, frame.FrameHeight)
	}
	return out
}

// Save wraps a backend save so that after runs with the stored record
// once the screen sees the result.
func Save[T any](id nav.ViewID, op string, call func(ctx context.Context) (T, error), after func(T)) tea.Cmd {
	return view.Request(op, call, func(v T) tea.Msg {
		return SavedMsg{ID: id, After: func() {
			if after != nil {
				after(v)
			}
		}}
	})
}

// Fill loads the record being edited and turns it into field values.
func Fill[T any](id nav.ViewID, op string, call func(ctx context.Context) (T, error), values func(T) form.Values) tea.Cmd {
	return view.Request(op, call, func(v T) tea.Msg {
		return FillMsg{ID: id, Values: values(v)}
	})
}
