// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package jobsview

import (
	"strconv"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewJobs

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[backend.Job]{
		ID:    ViewName,
		Title: "Jobs",
		Columns: []listview.Column[backend.Job]{
			{Title: "ID", Width: 8, Value: func(j backend.Job) string { return j.ID }},
			{Title: "NAME", Width: 20, Flex: true, Value: func(j backend.Job) string { return j.Name }},
			{Title: "SITE", Width: 8, Value: func(j backend.Job) string { return j.SiteID }},
			{Title: "STATUS", Width: 10, Value: func(j backend.Job) string { return j.Status }},
			{Title: "ASSETS", Width: 6, Value: func(j backend.Job) string { return strconv.Itoa(len(j.AssetIDs)) }},
		},
		Load: deps.Backend.ListJobs,
		OnSelect: func(j backend.Job) tea.Cmd {
			deps.Router.NavigateToJobDetails(j.ID)
			return nil
		},
		Actions: []listview.Action[backend.Job]{
			{Key: "e", Desc: "edit", Run: func(j backend.Job, ok bool) tea.Cmd {
				if ok {
					deps.Router.NavigateToEditJob(j.ID)
				}
				return nil
			}},
			{Key: "n", Desc: "new job", Run: func(backend.Job, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewCreateJob)
				return nil
			}},
		},
	})
	return m, m.Init()
}
