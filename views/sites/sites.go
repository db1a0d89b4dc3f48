// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package sitesview

import (
	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewSites

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[backend.Site]{
		ID:    ViewName,
		Title: "Sites",
		Columns: []listview.Column[backend.Site]{
			{Title: "ID", Width: 8, Value: func(s backend.Site) string { return s.ID }},
			{Title: "NAME", Width: 16, Flex: true, Value: func(s backend.Site) string { return s.Name }},
			{Title: "ADDRESS", Width: 20, Flex: true, Value: func(s backend.Site) string { return s.Address }},
			{Title: "MANAGER", Width: 12, Value: func(s backend.Site) string { return s.Manager }},
			{Title: "LOCATION", Width: 18, Value: func(s backend.Site) string { return view.FormatLocation(s.Location) }},
		},
		Load: deps.Backend.ListSites,
		OnSelect: func(s backend.Site) tea.Cmd {
			deps.Router.NavigateToSiteDetails(&s)
			return nil
		},
		Actions: []listview.Action[backend.Site]{
			{Key: "n", Desc: "new site", Run: func(backend.Site, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewCreateSite)
				return nil
			}},
		},
	})
	return m, m.Init()
}
