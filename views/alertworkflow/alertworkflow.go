// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package alertworkflowview

import (
	"context"
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	opslog "assetops/utils/log"
	"assetops/views/alerts"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewAlertWorkflow

const (
	tagAcknowledge = "ack"
	tagResolve     = "resolve"
)

func l() *opslog.Logger {
	return opslog.Component("alert-workflow")
}

// changedMsg is the backend's answer to an acknowledge or resolve.
type changedMsg struct {
	alert backend.Alert
}

// refreshedMsg arrives once the alert list was re-read after a change.
type refreshedMsg struct {
	active int
}

type assetMsg struct {
	asset backend.Asset
}

type Model struct {
	*detail.Model
	deps  view.Deps
	alert backend.Alert
	busy  bool
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.AlertSelection](snap)
	m := &Model{deps: deps, alert: sel.Alert}
	m.Model = detail.New(width, height, detail.Config{
		ID:        ViewName,
		Title:     "Alert Workflow",
		Actions:   m.actions(),
		OnConfirm: m.confirmed,
	})
	m.render()
	return m, m.Init()
}

func (m *Model) Alert() backend.Alert { return m.alert }

// Busy is true from the moment a change is sent until the list refresh
// that follows it completed.
func (m *Model) Busy() bool { return m.busy }

func (m *Model) actions() []detail.Action {
	return []detail.Action{
		{Key: "a", Desc: "acknowledge", Run: func() tea.Cmd {
			if m.alert.Status != backend.AlertActive {
				m.deps.Notifyf("%s is already %s", m.alert.ID, m.alert.Status)
				return nil
			}
			m.Confirm(tagAcknowledge, "Acknowledge "+m.alert.ID+"?")
			return nil
		}},
		{Key: "x", Desc: "resolve", Run: func() tea.Cmd {
			if m.alert.Status == backend.AlertResolved {
				m.deps.Notifyf("%s is already resolved", m.alert.ID)
				return nil
			}
			m.Confirm(tagResolve, "Resolve "+m.alert.ID+"?")
			return nil
		}},
		{Key: "o", Desc: "open asset", Run: func() tea.Cmd {
			svc, id := m.deps.Backend, m.alert.AssetID
			return view.Request("load asset "+id, func(ctx context.Context) (backend.Asset, error) {
				return svc.GetAsset(ctx, id)
			}, func(a backend.Asset) tea.Msg { return assetMsg{asset: a} })
		}},
		{Key: "m", Desc: "show on map", Run: func() tea.Cmd {
			m.deps.Router.ShowOnMap(m.alert.AssetID)
			return nil
		}},
	}
}

func (m *Model) confirmed(tag string, yes bool) tea.Cmd {
	if !yes || m.busy {
		return nil
	}
	svc, id := m.deps.Backend, m.alert.ID
	call := svc.AcknowledgeAlert
	if tag == tagResolve {
		call = svc.ResolveAlert
	}
	m.busy = true
	return tea.Batch(m.StartLoading(tag+" "+id+"…"), view.Request(tag+" "+id, func(ctx context.Context) (backend.Alert, error) {
		return call(ctx, id)
	}, func(a backend.Alert) tea.Msg { return changedMsg{alert: a} }))
}

// refresh re-reads the alert list so the list screen is current the
// moment the workflow returns to it.
func (m *Model) refresh() tea.Cmd {
	svc := m.deps.Backend
	return view.Request("refresh alerts", func(ctx context.Context) (int, error) {
		all, err := svc.ListAlerts(ctx)
		if err != nil {
			return 0, err
		}
		return len(nav.AlertFilter{Status: string(backend.AlertActive)}.Apply(all)), nil
	}, func(n int) tea.Msg { return refreshedMsg{active: n} })
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case changedMsg:
		m.alert = msg.alert
		m.render()
		l().Infof("alert %s is now %s", msg.alert.ID, msg.alert.Status)
		return tea.Batch(m.StartLoading("refreshing alerts…"), m.refresh())

	case refreshedMsg:
		m.busy = false
		m.StopLoading()
		m.deps.Notifyf("%s %s · %d active alerts", m.alert.ID, m.alert.Status, msg.active)
		m.deps.Resolver.BackFromAlertWorkflow()
		return nil

	case assetMsg:
		m.deps.Router.NavigateToAssetDetails(&msg.asset)
		return nil

	case view.ErrorMsg:
		m.busy = false
	}
	return m.Model.Update(msg)
}

func (m *Model) render() {
	a := m.alert
	m.SetHeader(alertsview.SeverityStyle(a.Severity).Render(strings.ToUpper(a.Severity)) + " " + a.ID)
	var b strings.Builder
	fmt.Fprintf(&b, "Asset     %s\n", a.AssetID)
	fmt.Fprintf(&b, "Category  %s\n", a.Category)
	fmt.Fprintf(&b, "Status    %s\n", a.Status)
	fmt.Fprintf(&b, "Raised    %s\n\n", view.FormatTime(a.CreatedAt))
	b.WriteString(a.Message)
	m.SetContent(b.String())
}
