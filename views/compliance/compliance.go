// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package complianceview

import (
	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewCompliance

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[backend.ComplianceRecord]{
		ID:    ViewName,
		Title: "Compliance",
		Columns: []listview.Column[backend.ComplianceRecord]{
			{Title: "ID", Width: 8, Value: func(r backend.ComplianceRecord) string { return r.ID }},
			{Title: "ASSET", Width: 8, Value: func(r backend.ComplianceRecord) string { return r.AssetID }},
			{Title: "KIND", Width: 14, Flex: true, Value: func(r backend.ComplianceRecord) string { return r.Kind }},
			{Title: "DUE", Width: 10, Value: func(r backend.ComplianceRecord) string { return view.FormatDate(r.Due) }},
			{Title: "PASSED", Width: 6, Value: func(r backend.ComplianceRecord) string {
				if r.Passed {
					return "yes"
				}
				return "no"
			}},
		},
		Load: deps.Backend.ListCompliance,
		Actions: []listview.Action[backend.ComplianceRecord]{
			{Key: "n", Desc: "new record", Run: func(backend.ComplianceRecord, bool) tea.Cmd {
				deps.Router.NavigateToCreateCompliance(&nav.ComplianceCreation{})
				return nil
			}},
		},
	})
	return m, m.Init()
}
