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

// NewCreateSite opens the new site on its overview tab once saved.
func NewCreateSite(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	id := nav.ViewCreateSite
	m := formview.New(width, height, formview.Config{
		ID:    id,
		Title: "Create Site",
		Fields: []form.Field{
			{Key: "name", Label: "Name"},
			{Key: "address", Label: "Address"},
			{Key: "manager", Label: "Manager"},
			{Key: "lat", Label: "Latitude"},
			{Key: "lng", Label: "Longitude"},
		},
		Submit: func(values form.Values) (tea.Cmd, error) {
			if err := required(values, "name"); err != nil {
				return nil, err
			}
			lat, err := parseFloat("latitude", values["lat"])
			if err != nil {
				return nil, err
			}
			lng, err := parseFloat("longitude", values["lng"])
			if err != nil {
				return nil, err
			}
			s := backend.Site{
				Name:     values["name"],
				Address:  values["address"],
				Manager:  values["manager"],
				Location: backend.Location{Lat: lat, Lng: lng},
			}
			return formview.Save(id, "create site",
				func(ctx context.Context) (backend.Site, error) { return deps.Backend.SaveSite(ctx, s) },
				func(saved backend.Site) { deps.Router.NavigateToSiteDetails(&saved, nav.SiteTabOverview) }), nil
		},
		Cancel: func() { deps.Resolver.Back() },
	})
	return m, m.Init()
}
