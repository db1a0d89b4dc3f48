package formsview

import (
	"context"
	"strconv"

	"assetops/backend"
	"assetops/nav"
	"assetops/ui/components/form"
	"assetops/views/formview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

func NewCreateCompliance(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	req, _ := nav.Get[nav.ComplianceCreation](snap)
	id := nav.ViewCreateCompliance
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Create Compliance Record",
		Header: assetHeader(req.AssetID, ""),
		Fields: []form.Field{
			{Key: "asset", Label: "Asset", Placeholder: "AT-001", Value: req.AssetID, ReadOnly: req.AssetID != ""},
			{Key: "kind", Label: "Kind", Placeholder: "inspection, certification, permit", Value: "inspection"},
			{Key: "due", Label: "Due", Placeholder: dateLayout},
			{Key: "passed", Label: "Passed", Placeholder: "true/false", Value: "false"},
		},
		Submit: func(values form.Values) (tea.Cmd, error) {
			if err := required(values, "asset", "kind"); err != nil {
				return nil, err
			}
			due, err := parseDate(values["due"])
			if err != nil {
				return nil, err
			}
			passed, _ := strconv.ParseBool(values["passed"])
			r := backend.ComplianceRecord{AssetID: values["asset"], Kind: values["kind"], Due: due, Passed: passed}
			return formview.Save(id, "create compliance record",
				func(ctx context.Context) (backend.ComplianceRecord, error) { return deps.Backend.SaveCompliance(ctx, r) },
				func(saved backend.ComplianceRecord) {
					deps.Notifyf("Compliance record %s created", saved.ID)
					deps.Resolver.BackFromCreateCompliance()
				}), nil
		},
		Cancel: func() { deps.Resolver.BackFromCreateCompliance() },
	})
	return m, m.Init()
}
