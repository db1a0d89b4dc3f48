// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package vehiclesview

import (
	"strconv"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewVehicles

// EditRequest builds the edit-vehicle payload. The completion reports the
// saved vehicle through the status line, since this list is rebuilt by
// the time the edit returns.
func EditRequest(id string, deps view.Deps) *nav.VehicleEdit {
	return &nav.VehicleEdit{
		VehicleID: id,
		OnVehicleUpdated: nav.NewCompletion(func(v backend.Vehicle) {
			deps.Notifyf("Vehicle %s saved", v.Name)
		}),
	}
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[backend.Vehicle]{
		ID:    ViewName,
		Title: "Vehicles",
		Columns: []listview.Column[backend.Vehicle]{
			{Title: "ID", Width: 8, Value: func(v backend.Vehicle) string { return v.ID }},
			{Title: "NAME", Width: 18, Flex: true, Value: func(v backend.Vehicle) string { return v.Name }},
			{Title: "PLATE", Width: 12, Value: func(v backend.Vehicle) string { return v.Plate }},
			{Title: "PAIRED", Width: 6, Value: func(v backend.Vehicle) string { return strconv.Itoa(len(v.PairedAssets)) }},
			{Title: "ASSETS", Width: 16, Flex: true, Value: func(v backend.Vehicle) string { return strings.Join(v.PairedAssets, ",") }},
		},
		Load: deps.Backend.ListVehicles,
		OnSelect: func(v backend.Vehicle) tea.Cmd {
			deps.Router.NavigateToEditVehicle(EditRequest(v.ID, deps))
			return nil
		},
		Actions: []listview.Action[backend.Vehicle]{
			{Key: "n", Desc: "new vehicle", Run: func(backend.Vehicle, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewCreateVehicle)
				return nil
			}},
			{Key: "p", Desc: "pairing", Run: func(backend.Vehicle, bool) tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewVehiclePairing)
				return nil
			}},
		},
	})
	return m, m.Init()
}
