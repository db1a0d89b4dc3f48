// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package maintenanceview

import (
	"context"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const ViewName = nav.ViewMaintenance

// Row is a task joined with the asset it belongs to.
type Row struct {
	Task  backend.MaintenanceTask
	Asset *backend.Asset
}

func (r Row) assetName() string {
	if r.Asset == nil {
		return r.Task.AssetID
	}
	return view.AssetLabel(r.Asset.ID, r.Asset.Name)
}

// LoadRows fetches tasks and assets in parallel and joins them. assetID
// limits the tasks to one asset when non-empty.
func LoadRows(ctx context.Context, svc backend.Service, assetID string) ([]Row, error) {
	var (
		tasks  []backend.MaintenanceTask
		assets []backend.Asset
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = svc.ListMaintenance(ctx, assetID)
		return err
	})
	g.Go(func() error {
		var err error
		assets, err = svc.ListAssets(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]backend.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		r := Row{Task: t}
		if a, ok := byID[t.AssetID]; ok {
			r.Asset = &a
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func Columns() []listview.Column[Row] {
	return []listview.Column[Row]{
		{Title: "ID", Width: 8, Value: func(r Row) string { return r.Task.ID }},
		{Title: "ASSET", Width: 18, Flex: true, Value: Row.assetName},
		{Title: "TITLE", Width: 20, Flex: true, Value: func(r Row) string { return r.Task.Title }},
		{Title: "STATUS", Width: 12, Value: func(r Row) string { return r.Task.Status }},
		{Title: "PRIORITY", Width: 8, Value: func(r Row) string { return r.Task.Priority }},
		{Title: "DUE", Width: 10, Value: func(r Row) string { return view.FormatDate(r.Task.Due) }},
	}
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[Row]{
		ID:      ViewName,
		Title:   "Maintenance",
		Columns: Columns(),
		Load: func(ctx context.Context) ([]Row, error) {
			return LoadRows(ctx, deps.Backend, "")
		},
		OnSelect: func(r Row) tea.Cmd {
			deps.Router.NavigateToEditMaintenance(&nav.MaintenanceRequest{
				Asset:  r.Asset,
				TaskID: r.Task.ID,
				From:   nav.OriginMaintenanceList,
			})
			return nil
		},
		Actions: []listview.Action[Row]{
			{Key: "n", Desc: "schedule", Run: func(Row, bool) tea.Cmd {
				deps.Router.NavigateToCreateMaintenance(&nav.MaintenanceRequest{From: nav.OriginMaintenanceList})
				return nil
			}},
		},
	})
	return m, m.Init()
}
