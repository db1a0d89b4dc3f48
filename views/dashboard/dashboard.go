// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package dashboardview

import (
	"context"
	"slices"

	"assetops/backend"
	"assetops/nav"
	opslog "assetops/utils/log"
	"assetops/views/helpbar"
	"assetops/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

const ViewName = nav.ViewDashboard

func l() *opslog.Logger {
	return opslog.Component("dashboard")
}

// Summary is what the dashboard shows, computed from one backend read.
type Summary struct {
	ByStatus     map[backend.AssetStatus]int
	Assets       int
	ActiveAlerts int
	OpenTasks    int
	OpenIssues   int
	Attention    []backend.Asset
	Revision     string
}

type loadedMsg struct {
	summary Summary
}

type Model struct {
	deps    view.Deps
	printer *message.Printer

	width, height int
	summary       Summary
	loaded        bool
	cursor        int
	spinner       spinner.Model
	err           string
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := &Model{
		deps:    deps,
		printer: message.NewPrinter(deps.Config.Language()),
		width:   width,
		height:  height,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	return m, m.Init()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, Load(m.deps.Backend, m.deps.Config.Alerts.LowBattery))
}

func (m *Model) Name() string     { return string(ViewName) }
func (m *Model) OnEnter() tea.Cmd { return nil }
func (m *Model) OnExit() tea.Cmd  { return nil }

func (m *Model) HasActiveDialog() bool { return m.err != "" }

// Summary returns the figures currently shown.
func (m *Model) Summary() Summary { return m.summary }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "enter", Desc: "open asset"},
		{Key: "i", Desc: "inventory"},
		{Key: "a", Desc: "active alerts"},
		{Key: "M", Desc: "map"},
		{Key: "n", Desc: "schedule maintenance"},
		{Key: "r", Desc: "refresh"},
		{Key: ":", Desc: "command"},
	}
}

// Load reads everything the dashboard needs in parallel.
func Load(svc backend.Service, lowBattery int) tea.Cmd {
	return view.Request("load dashboard", func(ctx context.Context) (Summary, error) {
		return Summarize(ctx, svc, lowBattery)
	}, func(s Summary) tea.Msg { return loadedMsg{summary: s} })
}

// Summarize flags assets below lowBattery percent or offline.
func Summarize(ctx context.Context, svc backend.Service, lowBattery int) (Summary, error) {
	var (
		assets []backend.Asset
		alerts []backend.Alert
		tasks  []backend.MaintenanceTask
		issues []backend.Issue
		rev    string
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { assets, err = svc.ListAssets(ctx); return })
	g.Go(func() (err error) { alerts, err = svc.ListAlerts(ctx); return })
	g.Go(func() (err error) { tasks, err = svc.ListMaintenance(ctx, ""); return })
	g.Go(func() (err error) { issues, err = svc.ListIssues(ctx); return })
	g.Go(func() (err error) { rev, err = svc.Revision(ctx); return })
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	s := Summary{ByStatus: map[backend.AssetStatus]int{}, Assets: len(assets), Revision: rev}
	for _, a := range assets {
		s.ByStatus[a.Status]++
		if a.Battery < lowBattery || a.Status == backend.AssetOffline {
			s.Attention = append(s.Attention, a)
		}
	}
	slices.SortStableFunc(s.Attention, func(a, b backend.Asset) int { return a.Battery - b.Battery })
	for _, a := range alerts {
		if a.Status == backend.AlertActive {
			s.ActiveAlerts++
		}
	}
	for _, t := range tasks {
		if t.Status != "done" {
			s.OpenTasks++
		}
	}
	for _, i := range issues {
		if i.Status != "closed" {
			s.OpenIssues++
		}
	}
	return s, nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg:
		m.summary = msg.summary
		m.loaded = true
		if m.cursor >= len(m.summary.Attention) {
			m.cursor = max(0, len(m.summary.Attention)-1)
		}
		l().Debugf("dashboard loaded at revision %s", msg.summary.Revision)
		return nil

	case view.ErrorMsg:
		m.err = msg.Error()
		return nil

	case spinner.TickMsg:
		if m.loaded {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil

	case tea.KeyMsg:
		if m.err != "" {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.err = ""
			}
			return nil
		}
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	r := m.deps.Router
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.summary.Attention)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.cursor < len(m.summary.Attention) {
			a := m.summary.Attention[m.cursor]
			r.NavigateToAssetDetails(&a)
		}
	case "i":
		r.HandleViewChange(nav.ViewInventory)
	case "a":
		r.NavigateToAlerts(&nav.AlertFilter{Status: string(backend.AlertActive)})
	case "M":
		r.HandleViewChange(nav.ViewMap)
	case "s":
		r.HandleViewChange(nav.ViewSites)
	case "n":
		r.NavigateToCreateMaintenance(&nav.MaintenanceRequest{From: nav.OriginDashboard})
	case "r":
		m.loaded = false
		return m.Init()
	}
	return nil
}
