package formsview

import (
	"context"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/ui/components/form"
	"assetops/views/formview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

func vehicleFields() []form.Field {
	return []form.Field{
		{Key: "name", Label: "Name"},
		{Key: "plate", Label: "Plate"},
		{Key: "assets", Label: "Paired assets", Placeholder: "AT-001, AT-002"},
	}
}

func vehicleOf(id string, values form.Values) (backend.Vehicle, error) {
	if err := required(values, "name", "plate"); err != nil {
		return backend.Vehicle{}, err
	}
	return backend.Vehicle{
		ID:           id,
		Name:         values["name"],
		Plate:        strings.ToUpper(values["plate"]),
		PairedAssets: splitList(values["assets"]),
	}, nil
}

func vehicleValues(v backend.Vehicle) form.Values {
	return form.Values{"name": v.Name, "plate": v.Plate, "assets": strings.Join(v.PairedAssets, ", ")}
}

func NewCreateVehicle(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	id := nav.ViewCreateVehicle
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Create Vehicle",
		Fields: vehicleFields(),
		Submit: func(values form.Values) (tea.Cmd, error) {
			v, err := vehicleOf("", values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "create vehicle",
				func(ctx context.Context) (backend.Vehicle, error) { return deps.Backend.SaveVehicle(ctx, v) },
				func(saved backend.Vehicle) {
					deps.Notifyf("Vehicle %s created", saved.ID)
					deps.Resolver.Back()
				}), nil
		},
		Cancel: func() { deps.Resolver.Back() },
	})
	return m, m.Init()
}

// editVehicle owns the edit request's completion.
type editVehicle struct {
	*formview.Model
	req nav.VehicleEdit
}

func (m *editVehicle) OnExit() tea.Cmd {
	m.req.OnVehicleUpdated.Cancel()
	return nil
}

func NewEditVehicle(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	req, _ := nav.Get[nav.VehicleEdit](snap)
	id := nav.ViewEditVehicle
	m := &editVehicle{req: req}
	m.Model = formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Edit Vehicle " + req.VehicleID,
		Fields: vehicleFields(),
		Load: formview.Fill(id, "load vehicle "+req.VehicleID,
			func(ctx context.Context) (backend.Vehicle, error) { return deps.Backend.GetVehicle(ctx, req.VehicleID) },
			vehicleValues),
		Submit: func(values form.Values) (tea.Cmd, error) {
			v, err := vehicleOf(req.VehicleID, values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "save vehicle "+req.VehicleID,
				func(ctx context.Context) (backend.Vehicle, error) { return deps.Backend.SaveVehicle(ctx, v) },
				func(saved backend.Vehicle) {
					req.OnVehicleUpdated.Deliver(saved)
					deps.Resolver.BackFromEditVehicle()
				}), nil
		},
		Cancel: func() { deps.Resolver.BackFromEditVehicle() },
	})
	return m, m.Init()
}
