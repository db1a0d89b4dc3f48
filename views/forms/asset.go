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

func NewCreateAsset(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	id := nav.ViewCreateAsset
	m := formview.New(width, height, formview.Config{
		ID:    id,
		Title: "Create Asset",
		Fields: []form.Field{
			{Key: "name", Label: "Name"},
			{Key: "type", Label: "Type", Placeholder: "excavator, generator, trailer"},
			{Key: "site", Label: "Site", Placeholder: "ST-001"},
			{Key: "tags", Label: "Tags", Placeholder: "heavy, rental"},
		},
		Submit: func(values form.Values) (tea.Cmd, error) {
			if err := required(values, "name", "type"); err != nil {
				return nil, err
			}
			a := backend.Asset{
				Name:    values["name"],
				Type:    strings.ToLower(values["type"]),
				SiteID:  values["site"],
				Battery: 100,
				Tags:    splitList(values["tags"]),
			}
			return formview.Save(id, "create asset",
				func(ctx context.Context) (backend.Asset, error) { return deps.Backend.CreateAsset(ctx, a) },
				func(saved backend.Asset) { deps.Router.NavigateToAssetDetails(&saved) }), nil
		},
		Cancel: func() { deps.Resolver.Back() },
	})
	return m, m.Init()
}

// NewLoadAsset opens an asset by id.
func NewLoadAsset(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	id := nav.ViewLoadAsset
	m := formview.New(width, height, formview.Config{
		ID:     id,
		Title:  "Load Asset",
		Fields: []form.Field{{Key: "id", Label: "Asset ID", Placeholder: "AT-001"}},
		Submit: func(values form.Values) (tea.Cmd, error) {
			if err := required(values, "id"); err != nil {
				return nil, err
			}
			assetID := strings.ToUpper(values["id"])
			return formview.Save(id, "load asset "+assetID,
				func(ctx context.Context) (backend.Asset, error) { return deps.Backend.GetAsset(ctx, assetID) },
				func(a backend.Asset) { deps.Router.NavigateToAssetDetails(&a) }), nil
		},
		Cancel: func() { deps.Resolver.Back() },
	})
	return m, m.Init()
}
