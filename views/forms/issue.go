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

func issueFields(req nav.IssueRequest, withStatus bool) []form.Field {
	asset := form.Field{Key: "asset", Label: "Asset", Placeholder: "AT-001", Value: req.AssetID}
	asset.ReadOnly = req.AssetID != ""
	fs := []form.Field{
		asset,
		{Key: "title", Label: "Title"},
		{Key: "severity", Label: "Severity", Placeholder: "low, medium, high, critical", Value: "medium"},
		{Key: "notes", Label: "Notes"},
	}
	if withStatus {
		fs = append(fs, form.Field{Key: "status", Label: "Status", Placeholder: "open, investigating, closed"})
	}
	return fs
}

func issueOf(id string, values form.Values) (backend.Issue, error) {
	if err := required(values, "asset", "title"); err != nil {
		return backend.Issue{}, err
	}
	return backend.Issue{
		ID:       id,
		AssetID:  values["asset"],
		Title:    values["title"],
		Severity: values["severity"],
		Status:   values["status"],
		Notes:    values["notes"],
	}, nil
}

func NewReportIssue(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	req, _ := nav.Get[nav.IssueRequest](snap)
	id := nav.ViewReportIssue
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Report Issue",
		Header: assetHeader(req.AssetID, req.AssetName),
		Fields: issueFields(req, false),
		Submit: func(values form.Values) (tea.Cmd, error) {
			issue, err := issueOf("", values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "report issue",
				func(ctx context.Context) (backend.Issue, error) { return deps.Backend.SaveIssue(ctx, issue) },
				func(saved backend.Issue) {
					deps.Notifyf("Issue %s reported", saved.ID)
					deps.Resolver.BackFromReportIssue()
				}), nil
		},
		Cancel: func() { deps.Resolver.BackFromReportIssue() },
	})
	return m, m.Init()
}

func NewEditIssue(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.IssueSelection](snap)
	req, _ := nav.Get[nav.IssueRequest](snap)
	id := nav.ViewEditIssue
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Edit Issue " + sel.ID,
		Header: assetHeader(req.AssetID, req.AssetName),
		Fields: issueFields(nav.IssueRequest{}, true),
		Load: formview.Fill(id, "load issue "+sel.ID,
			func(ctx context.Context) (backend.Issue, error) { return deps.Backend.GetIssue(ctx, sel.ID) },
			func(i backend.Issue) form.Values {
				return form.Values{
					"asset": i.AssetID, "title": i.Title, "severity": i.Severity,
					"notes": i.Notes, "status": i.Status,
				}
			}),
		Submit: func(values form.Values) (tea.Cmd, error) {
			issue, err := issueOf(sel.ID, values)
			if err != nil {
				return nil, err
			}
			return formview.Save(id, "save issue "+sel.ID,
				func(ctx context.Context) (backend.Issue, error) { return deps.Backend.SaveIssue(ctx, issue) },
				func(backend.Issue) { deps.Resolver.BackFromEditIssue() }), nil
		},
		Cancel: func() { deps.Resolver.BackFromEditIssue() },
	})
	return m, m.Init()
}
