package formsview

import (
	"context"

	"assetops/backend"
	"assetops/nav"
	"assetops/ui/components/form"
	"assetops/views/formview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

func maintenanceFields(req nav.MaintenanceRequest, withStatus bool) []form.Field {
	asset := form.Field{Key: "asset", Label: "Asset", Placeholder: "AT-001"}
	if req.Asset != nil {
		asset.Value = req.Asset.ID
		asset.ReadOnly = true
	}
	fs := []form.Field{
		asset,
		{Key: "title", Label: "Task", Placeholder: "replace hydraulic filter"},
		{Key: "priority", Label: "Priority", Placeholder: "low, medium, high", Value: "medium"},
		{Key: "due", Label: "Due", Placeholder: dateLayout},
	}
	if withStatus {
		fs = append(fs, form.Field{Key: "status", Label: "Status", Placeholder: "scheduled, in-progress, done"})
	}
	return fs
}

func maintenanceTask(id string, values form.Values) (backend.MaintenanceTask, error) {
	if err := required(values, "asset", "title"); err != nil {
		return backend.MaintenanceTask{}, err
	}
	due, err := parseDate(values["due"])
	if err != nil {
		return backend.MaintenanceTask{}, err
	}
	return backend.MaintenanceTask{
		ID:       id,
		AssetID:  values["asset"],
		Title:    values["title"],
		Priority: values["priority"],
		Status:   values["status"],
		Due:      due,
	}, nil
}

func maintenanceHeader(req nav.MaintenanceRequest) string {
	if req.Asset == nil {
		return ""
	}
	return assetHeader(req.Asset.ID, req.Asset.Name)
}

// NewCreateMaintenance schedules a task. Once saved the task opens in the
// edit form, which keeps the way back this form was given.
func NewCreateMaintenance(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	c, _ := nav.Get[nav.MaintenanceCreation](snap)
	req := c.MaintenanceRequest
	m := formview.New(width, height, formview.Config{
		ID:     nav.ViewCreateMaintenance,
		Title:  "Schedule Maintenance",
		Header: maintenanceHeader(req),
		Fields: maintenanceFields(req, false),
		Submit: func(values form.Values) (tea.Cmd, error) {
			t, err := maintenanceTask("", values)
			if err != nil {
				return nil, err
			}
			return formview.Save(nav.ViewCreateMaintenance, "schedule maintenance",
				func(ctx context.Context) (backend.MaintenanceTask, error) {
					return deps.Backend.SaveMaintenance(ctx, t)
				},
				func(saved backend.MaintenanceTask) {
					deps.Notifyf("Task %s scheduled", saved.ID)
					deps.Router.NavigateToEditMaintenance(&nav.MaintenanceRequest{Asset: req.Asset, TaskID: saved.ID})
				}), nil
		},
		Cancel: func() { deps.Resolver.BackFromCreateMaintenance() },
	})
	return m, m.Init()
}

func NewEditMaintenance(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	e, _ := nav.Get[nav.MaintenanceEdit](snap)
	req := e.MaintenanceRequest
	id := nav.ViewEditMaintenance
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Edit Maintenance " + req.TaskID,
		Header: maintenanceHeader(req),
		Fields: maintenanceFields(req, true),
		Load: formview.Fill(id, "load task "+req.TaskID,
			func(ctx context.Context) (backend.MaintenanceTask, error) {
				return deps.Backend.GetMaintenance(ctx, req.TaskID)
			},
			func(t backend.MaintenanceTask) form.Values {
				return form.Values{
					"asset": t.AssetID, "title": t.Title, "priority": t.Priority,
					"due": formatDate(t.Due), "status": t.Status,
				}
			}),
		Submit: func(values form.Values) (tea.Cmd, error) {
			t, err := maintenanceTask(req.TaskID, values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "save task "+req.TaskID,
				func(ctx context.Context) (backend.MaintenanceTask, error) {
					return deps.Backend.SaveMaintenance(ctx, t)
				},
				func(backend.MaintenanceTask) { deps.Resolver.BackFromEditMaintenance() }), nil
		},
		Cancel: func() { deps.Resolver.BackFromEditMaintenance() },
	})
	return m, m.Init()
}
