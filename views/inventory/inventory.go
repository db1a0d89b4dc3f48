// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package inventoryview

import (
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewInventory

// Columns is shared with the other asset tables.
func Columns() []listview.Column[backend.Asset] {
	return []listview.Column[backend.Asset]{
		{Title: "ID", Width: 8, Value: func(a backend.Asset) string { return a.ID }},
		{Title: "NAME", Width: 18, Flex: true, Value: func(a backend.Asset) string { return a.Name }},
		{Title: "TYPE", Width: 8, Value: func(a backend.Asset) string { return a.Type }},
		{Title: "STATUS", Width: 12, Value: func(a backend.Asset) string { return string(a.Status) }},
		{Title: "SITE", Width: 8, Value: func(a backend.Asset) string { return a.SiteID }},
		{Title: "BATTERY", Width: 8, Value: func(a backend.Asset) string { return fmt.Sprintf("%3d%%", a.Battery) }},
		{Title: "ASSIGNED", Width: 10, Flex: true, Value: func(a backend.Asset) string { return a.AssignedTo }},
	}
}

// HighlightMark marks the asset raised on the map.
func HighlightMark(signals *nav.Signals) func(backend.Asset) string {
	return func(a backend.Asset) string {
		if id, ok := signals.Highlighted(); ok && id == a.ID {
			return "◆"
		}
		return ""
	}
}

func config(id nav.ViewID, title string, deps view.Deps) listview.Config[backend.Asset] {
	return listview.Config[backend.Asset]{
		ID:      id,
		Title:   title,
		Columns: Columns(),
		Load:    deps.Backend.ListAssets,
		Key:     func(a backend.Asset) string { return a.ID },
		Match: func(a backend.Asset, q string) bool {
			q = strings.ToLower(q)
			return strings.Contains(strings.ToLower(a.ID), q) ||
				strings.Contains(strings.ToLower(a.Name), q) ||
				strings.Contains(strings.ToLower(a.Type), q) ||
				strings.Contains(strings.ToLower(a.AssignedTo), q) ||
				strings.Contains(strings.ToLower(strings.Join(a.Tags, " ")), q)
		},
		OnSelect: func(a backend.Asset) tea.Cmd {
			deps.Router.NavigateToAssetDetails(&a)
			return nil
		},
		Mark: HighlightMark(deps.Signals),
		Actions: []listview.Action[backend.Asset]{
			{Key: "m", Desc: "show on map", Run: func(a backend.Asset, ok bool) tea.Cmd {
				if ok {
					deps.Router.ShowOnMap(a.ID)
				}
				return nil
			}},
			{Key: "n", Desc: "new asset", Run: func(backend.Asset, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewCreateAsset)
				return nil
			}},
		},
	}
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, config(ViewName, "Inventory", deps))
	return m, m.Init()
}

// NewFind opens the inventory with the search prompt already active.
func NewFind(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, config(nav.ViewFindAsset, "Find Asset", deps))
	m.StartSearch()
	return m, m.Init()
}

