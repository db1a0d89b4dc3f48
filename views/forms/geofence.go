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

func geofenceValues(g backend.Geofence) form.Values {
	return form.Values{
		"name":   g.Name,
		"site":   g.SiteID,
		"lat":    strconv.FormatFloat(g.Center.Lat, 'f', -1, 64),
		"lng":    strconv.FormatFloat(g.Center.Lng, 'f', -1, 64),
		"radius": strconv.Itoa(g.RadiusMeters),
		"exit":   strconv.FormatBool(g.AlertOnExit),
	}
}

func geofenceFields(c nav.GeofenceCreation) []form.Field {
	fs := []form.Field{
		{Key: "name", Label: "Name"},
		{Key: "site", Label: "Site", Placeholder: "ST-001", Value: c.SiteID},
		{Key: "lat", Label: "Latitude"},
		{Key: "lng", Label: "Longitude"},
		{Key: "radius", Label: "Radius (m)", Value: "250"},
		{Key: "exit", Label: "Alert on exit", Placeholder: "true/false", Value: "true"},
	}
	if p := c.Prefill; p != nil {
		v := geofenceValues(backend.Geofence{Name: p.Name, SiteID: p.SiteID, Center: p.Center, RadiusMeters: p.RadiusMeters, AlertOnExit: true})
		if p.SiteID == "" {
			v["site"] = c.SiteID
		}
		for i := range fs {
			fs[i].Value = v[fs[i].Key]
		}
	}
	return fs
}

func geofenceOf(id string, values form.Values) (backend.Geofence, error) {
	if err := required(values, "name", "site"); err != nil {
		return backend.Geofence{}, err
	}
	lat, err := parseFloat("latitude", values["lat"])
	if err != nil {
		return backend.Geofence{}, err
	}
	lng, err := parseFloat("longitude", values["lng"])
	if err != nil {
		return backend.Geofence{}, err
	}
	radius, err := parseInt("radius", values["radius"])
	if err != nil {
		return backend.Geofence{}, err
	}
	exit, _ := strconv.ParseBool(values["exit"])
	return backend.Geofence{
		ID:           id,
		Name:         values["name"],
		SiteID:       values["site"],
		Center:       backend.Location{Lat: lat, Lng: lng},
		RadiusMeters: radius,
		AlertOnExit:  exit,
	}, nil
}

// NewGeofence serves create-geofence in both modes. In edit mode the
// stored record replaces the prefill once it is read.
func NewGeofence(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	c, _ := nav.Get[nav.GeofenceCreation](snap)
	mode, _ := nav.Get[nav.GeofenceMode](snap)
	editing, _ := nav.Get[nav.EditingGeofence](snap)
	id := nav.ViewCreateGeofence

	cfg := formview.Config{
		ID:     id,
		Title:  "Create Geofence",
		Fields: geofenceFields(c),
		Cancel: func() { deps.Resolver.BackFromCreateGeofence() },
	}
	if c.OriginTab != "" {
		cfg.Header = "from site " + c.SiteID + " · " + string(c.OriginTab)
	}

	gid := ""
	if mode.Editing {
		if editing.ID == "" {
			l().Warnf("geofence edit without an id, creating instead")
		} else {
			gid = editing.ID
			cfg.Title = "Edit Geofence " + gid
			cfg.Load = formview.Fill(id, "load geofence "+gid,
				func(ctx context.Context) (backend.Geofence, error) { return deps.Backend.GetGeofence(ctx, gid) },
				geofenceValues)
		}
	}
	cfg.Submit = func(values form.Values) (tea.Cmd, error) {
		g, err := geofenceOf(gid, values)
		if err != nil {
			return nil, err
		}
		return formview.Save(id, "save geofence",
			func(ctx context.Context) (backend.Geofence, error) { return deps.Backend.SaveGeofence(ctx, g) },
			func(saved backend.Geofence) {
				deps.Notifyf("Geofence %s saved", saved.Name)
				if mode.Editing {
					deps.Resolver.BackFromEditGeofence()
					return
				}
				deps.Resolver.BackFromCreateGeofence()
			}), nil
	}

	m := formview.New(width, height, cfg)
	return m, m.Init()
}
