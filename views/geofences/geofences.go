// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package geofencesview

import (
	"context"
	"fmt"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewGeofences

// Prefill turns a stored geofence into the form prefill used for editing.
func Prefill(g backend.Geofence) *nav.GeofencePrefill {
	return &nav.GeofencePrefill{Name: g.Name, SiteID: g.SiteID, Center: g.Center, RadiusMeters: g.RadiusMeters}
}

func Columns() []listview.Column[backend.Geofence] {
	return []listview.Column[backend.Geofence]{
		{Title: "ID", Width: 8, Value: func(g backend.Geofence) string { return g.ID }},
		{Title: "NAME", Width: 20, Flex: true, Value: func(g backend.Geofence) string { return g.Name }},
		{Title: "SITE", Width: 8, Value: func(g backend.Geofence) string { return g.SiteID }},
		{Title: "RADIUS", Width: 8, Value: func(g backend.Geofence) string { return fmt.Sprintf("%dm", g.RadiusMeters) }},
		{Title: "EXIT ALERT", Width: 10, Value: func(g backend.Geofence) string {
			if g.AlertOnExit {
				return "yes"
			}
			return "no"
		}},
	}
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[backend.Geofence]{
		ID:      ViewName,
		Title:   "Geofences",
		Columns: Columns(),
		Load: func(ctx context.Context) ([]backend.Geofence, error) {
			return deps.Backend.ListGeofences(ctx, "")
		},
		OnSelect: func(g backend.Geofence) tea.Cmd {
			deps.Router.NavigateToEditGeofence(g.ID, Prefill(g), "")
			return nil
		},
		Actions: []listview.Action[backend.Geofence]{
			{Key: "n", Desc: "new geofence", Run: func(backend.Geofence, bool) tea.Cmd {
				deps.Router.NavigateToCreateGeofence(nil, "")
				return nil
			}},
			{Key: "v", Desc: "violations", Run: func(backend.Geofence, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewViolationMap)
				return nil
			}},
		},
	})
	return m, m.Init()
}
