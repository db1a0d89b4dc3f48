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

func jobFields(withStatus bool) []form.Field {
	fs := []form.Field{
		{Key: "name", Label: "Name"},
		{Key: "site", Label: "Site", Placeholder: "ST-001"},
		{Key: "assets", Label: "Assets", Placeholder: "AT-001, AT-002"},
	}
	if withStatus {
		fs = append(fs, form.Field{Key: "status", Label: "Status", Placeholder: "planned, active, complete"})
	}
	return fs
}

func jobOf(id string, values form.Values) (backend.Job, error) {
	if err := required(values, "name", "site"); err != nil {
		return backend.Job{}, err
	}
	return backend.Job{
		ID:       id,
		Name:     values["name"],
		SiteID:   values["site"],
		Status:   values["status"],
		AssetIDs: splitList(values["assets"]),
	}, nil
}

func NewCreateJob(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	id := nav.ViewCreateJob
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Create Job",
		Fields: jobFields(false),
		Submit: func(values form.Values) (tea.Cmd, error) {
			j, err := jobOf("", values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "create job",
				func(ctx context.Context) (backend.Job, error) { return deps.Backend.SaveJob(ctx, j) },
				func(saved backend.Job) { deps.Router.NavigateToJobDetails(saved.ID) }), nil
		},
		Cancel: func() { deps.Resolver.Back() },
	})
	return m, m.Init()
}

func NewEditJob(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.JobSelection](snap)
	id := nav.ViewEditJob
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Edit Job " + sel.ID,
		Fields: jobFields(true),
		Load: formview.Fill(id, "load job "+sel.ID,
			func(ctx context.Context) (backend.Job, error) { return deps.Backend.GetJob(ctx, sel.ID) },
			func(j backend.Job) form.Values {
				return form.Values{"name": j.Name, "site": j.SiteID, "status": j.Status, "assets": strings.Join(j.AssetIDs, ", ")}
			}),
		Submit: func(values form.Values) (tea.Cmd, error) {
			j, err := jobOf(sel.ID, values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "save job "+sel.ID,
				func(ctx context.Context) (backend.Job, error) { return deps.Backend.SaveJob(ctx, j) },
				func(backend.Job) { deps.Resolver.BackFromEditJob() }), nil
		},
		Cancel: func() { deps.Resolver.BackFromEditJob() },
	})
	return m, m.Init()
}
