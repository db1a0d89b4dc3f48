package formsview

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetops/backend"
	"assetops/nav"
	"assetops/ui/components/form"
	"assetops/views/formview"
	"assetops/views/view"
)

func TestHelpers(t *testing.T) {
	assert.EqualError(t, required(form.Values{"name": "x"}, "name", "site", "lat"), "required: site, lat")
	assert.NoError(t, required(form.Values{"name": "x"}, "name"))

	d, err := parseDate("2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2026-03-04", formatDate(d))
	_, err = parseDate("04/03/2026")
	assert.Error(t, err)
	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Empty(t, formatDate(d))

	_, err = parseInt("radius", "wide")
	assert.EqualError(t, err, `radius: "wide" is not a whole number`)
	_, err = parseFloat("latitude", "north")
	assert.Error(t, err)

	assert.Equal(t, []string{"AT-001", "AT-005"}, splitList(" AT-001, ,AT-005 "))
	assert.Nil(t, splitList(""))

	assert.Empty(t, assetHeader("", ""))
	assert.Equal(t, "Asset Excavator (AT-001)", assetHeader("AT-001", "Excavator"))
}

func TestGeofenceOf(t *testing.T) {
	g, err := geofenceOf("GF-009", form.Values{
		"name": "Gate", "site": "ST-002", "lat": "53.55", "lng": "9.99", "radius": "120", "exit": "true",
	})
	require.NoError(t, err)
	assert.Equal(t, backend.Geofence{
		ID:           "GF-009",
		Name:         "Gate",
		SiteID:       "ST-002",
		Center:       backend.Location{Lat: 53.55, Lng: 9.99},
		RadiusMeters: 120,
		AlertOnExit:  true,
	}, g)

	_, err = geofenceOf("", form.Values{"name": "Gate"})
	assert.EqualError(t, err, "required: site")
}

func TestGeofenceFieldsPrefill(t *testing.T) {
	fs := geofenceFields(nav.GeofenceCreation{
		SiteID:  "ST-001",
		Prefill: &nav.GeofencePrefill{Name: "Yard", Center: backend.Location{Lat: 1.5, Lng: 2}, RadiusMeters: 80},
	})
	got := form.Values{}
	for _, f := range fs {
		got[f.Key] = f.Value
	}
	assert.Equal(t, form.Values{
		"name": "Yard", "site": "ST-001", "lat": "1.5", "lng": "2", "radius": "80", "exit": "true",
	}, got)
}

// run executes cmd and feeds every save or fill result back to screen.
func run(screen view.View, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(screen, c)
		}
	case formview.SavedMsg, formview.FillMsg, view.ErrorMsg:
		run(screen, screen.Update(msg))
	}
}

func TestCreateGeofenceFromSiteTab(t *testing.T) {
	svc := backend.NewMemory(0)
	store := nav.NewStore(nav.ViewSites)
	router := nav.NewRouter(store, nav.NewSignals())
	router.NavigateToSiteDetails(&backend.Site{ID: "ST-002", Name: "Harbor Depot"}, nav.SiteTabGeofences)
	router.NavigateToCreateGeofence(nil, nav.SiteTabGeofences)

	var notices []string
	v, cmd := NewGeofence(80, 24, store.Snapshot(), view.Deps{
		Router:   router,
		Resolver: nav.NewResolver(store),
		Backend:  svc,
		Notify:   func(s string) { notices = append(notices, s) },
	})
	assert.Nil(t, cmd, "create mode loads nothing")
	screen := v.(*formview.Model)
	assert.Equal(t, "ST-002", screen.Form().Value("site"))

	screen.Form().SetValue("name", "Quay")
	screen.Form().SetValue("lat", "53.551")
	screen.Form().SetValue("lng", "9.992")
	run(screen, screen.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))

	require.Empty(t, screen.Err())
	assert.Equal(t, []string{"Geofence Quay saved"}, notices)
	assert.Equal(t, nav.ViewSiteDetails, store.CurrentView())
	tab, ok := nav.Get[nav.SiteTabSelection](store)
	require.True(t, ok)
	assert.Equal(t, nav.SiteTabGeofences, tab.Tab)

	fences, err := svc.ListGeofences(context.Background(), "ST-002")
	require.NoError(t, err)
	assert.Len(t, fences, 2)
}

func TestEditGeofenceLoadsRecord(t *testing.T) {
	svc := backend.NewMemory(0)
	store := nav.NewStore(nav.ViewGeofences)
	router := nav.NewRouter(store, nav.NewSignals())
	router.NavigateToEditGeofence("GF-002", nil, "")

	v, cmd := NewGeofence(80, 24, store.Snapshot(), view.Deps{
		Router:   router,
		Resolver: nav.NewResolver(store),
		Backend:  svc,
	})
	screen := v.(*formview.Model)
	run(screen, cmd)
	assert.Equal(t, "Harbor gate", screen.Form().Value("name"))
	assert.Equal(t, "150", screen.Form().Value("radius"))

	screen.Form().SetValue("radius", "175")
	run(screen, screen.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))
	assert.Equal(t, nav.ViewGeofences, store.CurrentView())

	g, err := svc.GetGeofence(context.Background(), "GF-002")
	require.NoError(t, err)
	assert.Equal(t, 175, g.RadiusMeters)
}

func TestGeofenceValidationKeepsForm(t *testing.T) {
	store := nav.NewStore(nav.ViewGeofences)
	router := nav.NewRouter(store, nav.NewSignals())
	router.NavigateToCreateGeofence(nil, "")

	v, _ := NewGeofence(80, 24, store.Snapshot(), view.Deps{
		Router:   router,
		Resolver: nav.NewResolver(store),
		Backend:  backend.NewMemory(0),
	})
	screen := v.(*formview.Model)
	screen.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, "required: name, site", screen.Err())
	assert.Equal(t, nav.ViewCreateGeofence, store.CurrentView())
}
