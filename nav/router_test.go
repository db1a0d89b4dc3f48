package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetops/backend"
)

func TestStaleSiteSelectionSurvivesUnrelatedNavigation(t *testing.T) {
	h := newHarness(t, ViewSites)

	h.router.NavigateToSiteDetails(northYard())
	h.router.NavigateToCreateGeofence(nil, "")

	assert.Equal(t, ViewCreateGeofence, h.store.CurrentView())
	site, ok := Get[SiteSelection](h.store)
	require.True(t, ok, "selected site is kept although create-geofence does not need it")
	assert.Empty(t, cmp.Diff(*northYard(), site.Site))

	h.router.HandleViewChange(ViewSettings)
	_, ok = Get[SiteSelection](h.store)
	assert.True(t, ok, "plain view change must not clear slots")
}

func TestNavigateToSiteDetailsResetsTab(t *testing.T) {
	h := newHarness(t, ViewSites)

	h.router.NavigateToSiteDetails(northYard(), SiteTabGeofences)
	tab, _ := Get[SiteTabSelection](h.store)
	assert.Equal(t, SiteTabGeofences, tab.Tab)

	h.router.SelectSiteTab(SiteTabAlerts)
	tab, _ = Get[SiteTabSelection](h.store)
	assert.Equal(t, SiteTabAlerts, tab.Tab)
	assert.Equal(t, ViewSiteDetails, h.store.CurrentView())

	h.router.SelectSiteTab("nonsense")
	tab, _ = Get[SiteTabSelection](h.store)
	assert.Equal(t, SiteTabAlerts, tab.Tab, "invalid tab is ignored")

	h.router.NavigateToSiteDetails(harborDepot())
	tab, _ = Get[SiteTabSelection](h.store)
	assert.Equal(t, SiteTabOverview, tab.Tab, "re-entry without override resets to the default tab")
}

func TestDefaultSiteTabOption(t *testing.T) {
	store := NewStore(ViewSites)
	r := NewRouter(store, nil, WithDefaultSiteTab(SiteTabAssets))

	r.NavigateToSiteDetails(northYard())
	tab, _ := Get[SiteTabSelection](store)
	assert.Equal(t, SiteTabAssets, tab.Tab)
}

func TestNavigateToSiteDetailsWithoutSiteClearsSlot(t *testing.T) {
	h := newHarness(t, ViewSites)
	h.router.NavigateToSiteDetails(northYard())
	h.router.HandleViewChange(ViewSites)

	h.router.NavigateToSiteDetails(nil)
	assert.Equal(t, ViewSiteDetails, h.store.CurrentView())
	_, ok := Get[SiteSelection](h.store)
	assert.False(t, ok)
}

func TestGeofenceCreateAndEditModes(t *testing.T) {
	h := newHarness(t, ViewSites)
	h.router.NavigateToSiteDetails(northYard(), SiteTabGeofences)

	prefill := &GeofencePrefill{Name: "Gate", RadiusMeters: 150}
	h.router.NavigateToCreateGeofence(prefill, SiteTabGeofences)

	mode, _ := Get[GeofenceMode](h.store)
	assert.False(t, mode.Editing)
	c, ok := Get[GeofenceCreation](h.store)
	require.True(t, ok)
	assert.Equal(t, "ST-001", c.SiteID, "site id comes from the selected site")
	assert.Equal(t, SiteTabGeofences, c.OriginTab)
	assert.Same(t, prefill, c.Prefill)

	h.router.NavigateToEditGeofence("GF-001", nil, "")
	mode, _ = Get[GeofenceMode](h.store)
	assert.True(t, mode.Editing)
	id, ok := Get[EditingGeofence](h.store)
	require.True(t, ok)
	assert.Equal(t, "GF-001", id.ID)
	_, ok = Get[GeofenceCreation](h.store)
	assert.False(t, ok, "no prefill and no origin empties the creation slot")
}

func TestNavigateToAlertsWithFilter(t *testing.T) {
	h := newHarness(t, ViewDashboard)

	h.router.NavigateToAlerts(&AlertFilter{Category: "battery", Status: "active"})

	assert.Equal(t, ViewAlerts, h.store.CurrentView())
	f, ok := Get[AlertFilter](h.store)
	require.True(t, ok)
	assert.Equal(t, AlertFilter{Category: "battery", Status: "active"}, f)

	alerts := []backend.Alert{
		{ID: "AL-001", Category: "battery", Status: backend.AlertActive},
		{ID: "AL-002", Category: "offline", Status: backend.AlertActive},
		{ID: "AL-004", Category: "battery", Status: backend.AlertResolved},
	}
	got := f.Apply(alerts)
	require.Len(t, got, 1)
	assert.Equal(t, "AL-001", got[0].ID)

	h.router.NavigateToAlerts(nil)
	_, ok = Get[AlertFilter](h.store)
	assert.False(t, ok, "nil filter shows everything")
}

func TestCheckOutScenario(t *testing.T) {
	h := newHarness(t, ViewInventory)
	h.router.NavigateToAssetDetails(excavator())

	var received []backend.AssetUpdate
	done := NewCompletion(func(u backend.AssetUpdate) {
		received = append(received, u)
		h.router.ApplyAssetUpdate("AT-001", u)
	})
	h.router.NavigateToCheckInOut(&CheckInOut{
		AssetID:       "AT-001",
		AssetName:     "Excavator",
		CurrentStatus: backend.AssetActive,
		Mode:          CheckOut,
		OnComplete:    done,
	})
	assert.Equal(t, ViewCheckInOut, h.store.CurrentView())

	req, ok := Get[CheckInOut](h.store)
	require.True(t, ok)
	require.NotNil(t, req.AssetContext, "selected asset is captured as context")
	assert.Equal(t, "AT-001", req.AssetContext.ID)

	// The check-out screen completes the flow.
	update := backend.AssetUpdate{Status: backend.AssetCheckedOut, AssignedTo: "crew-4"}
	assert.True(t, req.OnComplete.Deliver(update))
	assert.False(t, req.OnComplete.Deliver(update))
	assert.Equal(t, ViewAssetDetails, h.resolver.BackFromCheckInOut())

	require.Len(t, received, 1)
	sel, ok := Get[AssetSelection](h.store)
	require.True(t, ok)
	assert.Equal(t, backend.AssetCheckedOut, sel.Asset.Status)
	assert.Equal(t, "crew-4", sel.Asset.AssignedTo)
	assert.Equal(t, ViewInventory, sel.From, "origin of asset-details survives the trip")
}

func TestAssetContextIsSnapshot(t *testing.T) {
	h := newHarness(t, ViewInventory)
	a := excavator()
	h.router.NavigateToCreateMaintenance(&MaintenanceRequest{Asset: a})

	a.Tags[0] = "mutated"
	a.Attributes["serial"] = "mutated"
	a.Name = "mutated"

	c, ok := Get[MaintenanceCreation](h.store)
	require.True(t, ok)
	require.NotNil(t, c.AssetContext)
	assert.Empty(t, cmp.Diff(*excavator(), *c.AssetContext))
	assert.Equal(t, MaintenanceOrigin(ViewInventory), c.From, "origin derived from the current view")
}

func TestAssetDetailsOrigin(t *testing.T) {
	h := newHarness(t, ViewMap)
	h.router.NavigateToAssetDetails(excavator())

	sel, _ := Get[AssetSelection](h.store)
	assert.Equal(t, ViewMap, sel.From)

	// Jumping to a related asset keeps the original way back.
	h.router.NavigateToAssetDetails(forklift())
	sel, _ = Get[AssetSelection](h.store)
	assert.Equal(t, "AT-002", sel.Asset.ID)
	assert.Equal(t, ViewMap, sel.From)
}

func TestApplyAssetUpdateIgnoresOtherAsset(t *testing.T) {
	h := newHarness(t, ViewInventory)
	h.router.NavigateToAssetDetails(excavator())
	last := h.store.Last()

	h.router.ApplyAssetUpdate("AT-999", backend.AssetUpdate{Status: backend.AssetOffline})

	assert.Equal(t, last.ID, h.store.Last().ID, "no commit for a foreign asset")
	sel, _ := Get[AssetSelection](h.store)
	assert.Equal(t, backend.AssetActive, sel.Asset.Status)
}

func TestShowOnMapKeepsHighlightAcrossNavigation(t *testing.T) {
	h := newHarness(t, ViewMap)
	last := h.store.Last()

	h.router.ShowOnMap("AT-003")
	id, ok := h.signals.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "AT-003", id)
	assert.Equal(t, last.ID, h.store.Last().ID, "already on the map, no transition")

	h.router.HandleViewChange(ViewInventory)
	h.router.NavigateToAssetDetails(excavator())
	_, ok = h.signals.Highlighted()
	assert.True(t, ok, "navigation never clears the highlight")

	h.router.ShowOnMap("AT-001")
	assert.Equal(t, ViewMap, h.store.CurrentView())
	id, _ = h.signals.Highlighted()
	assert.Equal(t, "AT-001", id)

	h.signals.ClearHighlight()
	_, ok = h.signals.Highlighted()
	assert.False(t, ok)
}

func TestNilArgumentsClearSlots(t *testing.T) {
	h := newHarness(t, ViewDashboard)

	h.router.NavigateToCheckInOut(&CheckInOut{AssetID: "AT-001", Mode: CheckIn})
	h.router.NavigateToCheckInOut(nil)
	_, ok := Get[CheckInOut](h.store)
	assert.False(t, ok)

	h.router.NavigateToEditVehicle(nil)
	assert.Equal(t, ViewEditVehicle, h.store.CurrentView())

	h.router.NavigateToJobDetails("")
	assert.Equal(t, ViewJobDetails, h.store.CurrentView())
	_, ok = Get[JobSelection](h.store)
	assert.False(t, ok)

	h.router.NavigateToAlertWorkflow(nil)
	assert.Equal(t, ViewAlertWorkflow, h.store.CurrentView())
	_, ok = Get[AlertSelection](h.store)
	assert.False(t, ok)
}
