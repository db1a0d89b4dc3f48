// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package detail is the read-only record screen: a scrolling body, a row
// of key actions and an optional confirm dialog.
package detail

import (
	"context"

	"assetops/nav"
	"assetops/ui"
	"assetops/ui/components/confirmdialog"
	"assetops/ui/components/errordialog"
	opslog "assetops/utils/log"
	"assetops/views/helpbar"
	"assetops/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func l() *opslog.Logger {
	return opslog.Component("detail")
}

type Action struct {
	Key  string
	Desc string
	Run  func() tea.Cmd
}

type Config struct {
	ID      nav.ViewID
	Title   string
	Actions []Action
	// Load fetches the body; its result arrives as BodyMsg.
	Load tea.Cmd
	// OnConfirm receives the answer to a question asked with Confirm.
	OnConfirm func(tag string, yes bool) tea.Cmd
}

// BodyMsg replaces the body of the screen with the same id.
type BodyMsg struct {
	ID   nav.ViewID
	Body string
}

type Model struct {
	cfg      Config
	viewport viewport.Model
	confirm  *confirmdialog.Model
	body     string
	header   string
	footer   string

	width, height int
	loading       bool
	loadingLabel  string
	spinner       spinner.Model
	err           string
}

func New(width, height int, cfg Config) *Model {
	m := &Model{
		cfg:      cfg,
		viewport: viewport.New(width, height),
		confirm:  confirmdialog.New(),
		width:    width,
		height:   height,
		loading:  cfg.Load != nil,
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	m.resize()
	return m
}

// Content wraps a backend read whose result is rendered into the body.
func Content[T any](id nav.ViewID, op string, call func(ctx context.Context) (T, error), render func(T) string) tea.Cmd {
	return view.Request(op, call, func(v T) tea.Msg {
		return BodyMsg{ID: id, Body: render(v)}
	})
}

func (m *Model) Init() tea.Cmd {
	if m.cfg.Load == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.cfg.Load)
}

// Reload fetches the body again.
func (m *Model) Reload() tea.Cmd {
	if m.cfg.Load == nil {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cfg.Load)
}

func (m *Model) Name() string     { return string(m.cfg.ID) }
func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) HasActiveDialog() bool { return m.err != "" || m.confirm.Visible }

func (m *Model) Body() string     { return m.body }
func (m *Model) Err() string      { return m.err }
func (m *Model) Loading() bool    { return m.loading }
func (m *Model) Confirming() bool { return m.confirm.Visible }

// SetBody shows body and ends the loading state.
func (m *Model) SetBody(body string) {
	m.SetContent(body)
	m.StopLoading()
}

// SetContent shows body while a load may still be running.
func (m *Model) SetContent(body string) {
	m.body = body
	m.viewport.SetContent(body)
}

// StartLoading shows the spinner with label until StopLoading, SetBody or
// an error.
func (m *Model) StartLoading(label string) tea.Cmd {
	m.loading = true
	m.loadingLabel = label
	return m.spinner.Tick
}

func (m *Model) StopLoading() {
	m.loading = false
	m.loadingLabel = ""
}

// SetLoad replaces the body request, for screens whose record changes in
// place.
func (m *Model) SetLoad(load tea.Cmd) { m.cfg.Load = load }

func (m *Model) SetHeader(header string) {
	m.header = header
	m.resize()
}

// ScrollTo brings line near the middle of the body.
func (m *Model) ScrollTo(line int) {
	m.viewport.SetYOffset(max(line-m.viewport.Height/2, 0))
}

// SetFooter replaces the action list at the bottom of the frame.
func (m *Model) SetFooter(footer string) { m.footer = footer }

func (m *Model) SetError(err string) {
	m.StopLoading()
	m.err = err
}

// Confirm asks a yes/no question; the answer goes to Config.OnConfirm.
func (m *Model) Confirm(tag, question string) { m.confirm.Ask(tag, question) }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	items := make([]helpbar.HelpEntry, 0, len(m.cfg.Actions)+2)
	for _, a := range m.cfg.Actions {
		items = append(items, helpbar.HelpEntry{Key: a.Key, Desc: a.Desc})
	}
	return append(items, helpbar.HelpEntry{Key: "↑/↓", Desc: "scroll"}, helpbar.HelpEntry{Key: "esc", Desc: "back"})
}

func (m *Model) resize() {
	frame := ui.ComputeFrameDimensions(m.width, m.height, 80, 20, m.header, "x")
	m.viewport.Width = max(frame.FrameWidth-4, 10)
	m.viewport.Height = max(frame.DesiredContentLines, 3)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case BodyMsg:
		if msg.ID != m.cfg.ID {
			return nil
		}
		m.SetBody(msg.Body)
		return nil

	case view.ErrorMsg:
		l().Warnf("%s: %v", m.cfg.ID, msg.Err)
		m.SetError(msg.Error())
		return nil

	case confirmdialog.ResultMsg:
		if m.cfg.OnConfirm != nil {
			return m.cfg.OnConfirm(msg.Tag, msg.Confirmed)
		}
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return nil

	case tea.KeyMsg:
		if m.err != "" {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.err = ""
			}
			return nil
		}
		if m.confirm.Visible {
			return m.confirm.Update(msg)
		}
		for _, a := range m.cfg.Actions {
			if a.Key == msg.String() {
				return a.Run()
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) View() string {
	footer := m.footer
	if m.loading {
		label := m.loadingLabel
		if label == "" {
			label = "loading…"
		}
		footer = m.spinner.View() + " " + label
	}
	frame := ui.ComputeFrameDimensions(m.width, m.height, 80, 20, m.header, footer)
	out := ui.RenderFramedBoxHeight(m.cfg.Title, m.header, m.viewport.View(), footer, frame.FrameWidth, frame.FrameHeight)
	switch {
	case m.err != "":
		return ui.OverlayCentered(out, errordialog.Render(m.err), frame.FrameWidth, frame.FrameHeight)
	case m.confirm.Visible:
		return ui.OverlayCentered(out, m.confirm.View(), frame.FrameWidth, frame.FrameHeight)
	}
	return out
}
