// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package alertsview

import (
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	opslog "assetops/utils/log"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ViewName = nav.ViewAlerts

func l() *opslog.Logger {
	return opslog.Component("alerts")
}

var severityColor = map[string]lipgloss.Color{
	"critical": lipgloss.Color("196"),
	"high":     lipgloss.Color("208"),
	"medium":   lipgloss.Color("220"),
	"low":      lipgloss.Color("114"),
}

// SeverityStyle colours a severity label.
func SeverityStyle(sev string) lipgloss.Style {
	if c, ok := severityColor[strings.ToLower(sev)]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle()
}

func Columns() []listview.Column[backend.Alert] {
	return []listview.Column[backend.Alert]{
		{Title: "ID", Width: 8, Value: func(a backend.Alert) string { return a.ID }},
		{Title: "ASSET", Width: 8, Value: func(a backend.Alert) string { return a.AssetID }},
		{Title: "CATEGORY", Width: 11, Value: func(a backend.Alert) string { return a.Category }},
		{Title: "SEVERITY", Width: 8, Value: func(a backend.Alert) string { return a.Severity }},
		{Title: "STATUS", Width: 12, Value: func(a backend.Alert) string { return string(a.Status) }},
		{Title: "MESSAGE", Width: 24, Flex: true, Value: func(a backend.Alert) string { return a.Message }},
	}
}

// Model is the alert list. It keeps the filter from the alertFilter slot
// and re-applies it when that slot changes while the list is shown.
type Model struct {
	*listview.Model[backend.Alert]
	filter nav.AlertFilter
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := &Model{}
	m.filter, _ = nav.Get[nav.AlertFilter](snap)
	m.Model = listview.New(width, height, listview.Config[backend.Alert]{
		ID:      ViewName,
		Title:   "Alerts",
		Columns: Columns(),
		Load:    deps.Backend.ListAlerts,
		Key:     func(a backend.Alert) string { return a.ID },
		Prepare: func(all []backend.Alert) []backend.Alert {
			return m.filter.Apply(all)
		},
		Header: m.describeFilter,
		OnSelect: func(a backend.Alert) tea.Cmd {
			deps.Router.NavigateToAlertWorkflow(&a)
			return nil
		},
		Actions: []listview.Action[backend.Alert]{
			{Key: "c", Desc: "clear filter", Run: func(backend.Alert, bool) tea.Cmd {
				deps.Router.NavigateToAlerts(nil)
				return nil
			}},
			{Key: "m", Desc: "asset on map", Run: func(a backend.Alert, ok bool) tea.Cmd {
				if ok {
					deps.Router.ShowOnMap(a.AssetID)
				}
				return nil
			}},
			{Key: "g", Desc: "configure", Run: func(backend.Alert, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewAlertConfiguration)
				return nil
			}},
		},
	})
	return m, m.Init()
}

// Filter returns the filter currently applied.
func (m *Model) Filter() nav.AlertFilter { return m.filter }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if cc, ok := msg.(view.ContextChangedMsg); ok {
		f, _ := nav.Get[nav.AlertFilter](cc.Snapshot)
		if f != m.filter {
			l().Debugf("alert filter changed to %+v", f)
			m.filter = f
			return m.Reload()
		}
		return nil
	}
	return m.Model.Update(msg)
}

func (m *Model) describeFilter() string {
	if m.filter.IsZero() {
		return ""
	}
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		}
	}
	add("category", m.filter.Category)
	add("severity", m.filter.Severity)
	add("status", m.filter.Status)
	add("search", m.filter.Search)
	return "filter: " + strings.Join(parts, " ")
}
