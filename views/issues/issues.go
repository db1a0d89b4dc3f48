// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package issuesview

import (
	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewIssues

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[backend.Issue]{
		ID:    ViewName,
		Title: "Issues",
		Columns: []listview.Column[backend.Issue]{
			{Title: "ID", Width: 8, Value: func(i backend.Issue) string { return i.ID }},
			{Title: "ASSET", Width: 8, Value: func(i backend.Issue) string { return i.AssetID }},
			{Title: "TITLE", Width: 24, Flex: true, Value: func(i backend.Issue) string { return i.Title }},
			{Title: "SEVERITY", Width: 8, Value: func(i backend.Issue) string { return i.Severity }},
			{Title: "STATUS", Width: 13, Value: func(i backend.Issue) string { return i.Status }},
		},
		Load: deps.Backend.ListIssues,
		OnSelect: func(i backend.Issue) tea.Cmd {
			deps.Router.NavigateToIssueDetails(i.ID)
			return nil
		},
		Actions: []listview.Action[backend.Issue]{
			{Key: "n", Desc: "report issue", Run: func(backend.Issue, bool) tea.Cmd {
				deps.Router.NavigateToReportIssue(&nav.IssueRequest{})
				return nil
			}},
			{Key: "e", Desc: "edit", Run: func(i backend.Issue, ok bool) tea.Cmd {
				if ok {
					deps.Router.NavigateToEditIssue(i.ID, &nav.IssueRequest{AssetID: i.AssetID})
				}
				return nil
			}},
		},
	})
	return m, m.Init()
}
