// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package notificationsview

import (
	"slices"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/polling"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewNotifications

// Model is the alert inbox. It polls the backend while open and redraws
// only when the set of alerts changed.
type Model struct {
	*listview.Model[backend.Alert]
	poller *polling.Poller[backend.Alert]
}

// Open keeps the alerts that still need someone, newest first.
func Open(all []backend.Alert) []backend.Alert {
	open := slices.DeleteFunc(slices.Clone(all), func(a backend.Alert) bool { return a.Status != backend.AlertActive })
	slices.SortStableFunc(open, func(a, b backend.Alert) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return open
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	list := listview.New(width, height, listview.Config[backend.Alert]{
		ID:    ViewName,
		Title: "Notifications",
		Columns: []listview.Column[backend.Alert]{
			{Title: "RAISED", Width: 16, Value: func(a backend.Alert) string { return view.FormatTime(a.CreatedAt) }},
			{Title: "SEVERITY", Width: 8, Value: func(a backend.Alert) string { return a.Severity }},
			{Title: "MESSAGE", Width: 30, Flex: true, Value: func(a backend.Alert) string { return a.Message }},
		},
		Load:    deps.Backend.ListAlerts,
		Prepare: Open,
		Key:     func(a backend.Alert) string { return a.ID },
		OnSelect: func(a backend.Alert) tea.Cmd {
			deps.Router.NavigateToAlertWorkflow(&a)
			return nil
		},
	})
	m := &Model{
		Model:  list,
		poller: polling.New(deps.Config.RefreshEvery(), deps.Backend.ListAlerts),
	}
	return m, m.Init()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.Model.Init(), m.poller.TickCmd())
}

func (m *Model) OnExit() tea.Cmd {
	m.poller.Stop()
	return m.Model.OnExit()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	items, changed, handled, cmd := m.poller.Update(msg)
	if !handled {
		return m.Model.Update(msg)
	}
	if changed {
		m.SetItems(items)
	}
	return cmd
}
