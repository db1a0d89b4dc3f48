package nav

import (
	"github.com/tiendc/go-deepcopy"

	"assetops/backend"
)

// Router has one entry point per destination view. Each assembles the
// payload the destination needs and commits it together with the view.
// Router methods never fail: a nil argument empties the slot and the
// destination shows its missing-context placeholder.
type Router struct {
	store      *Store
	signals    *Signals
	defaultTab SiteTab
}

type RouterOption func(*Router)

// WithDefaultSiteTab sets the tab site-details opens on.
func WithDefaultSiteTab(tab SiteTab) RouterOption {
	return func(r *Router) {
		if tab.Valid() {
			r.defaultTab = tab
		}
	}
}

func NewRouter(store *Store, signals *Signals, opts ...RouterOption) *Router {
	if signals == nil {
		signals = NewSignals()
	}
	r := &Router{store: store, signals: signals, defaultTab: SiteTabOverview}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) commit(view ViewID, patch Patch) {
	if _, err := r.store.SetView(view, patch); err != nil {
		l().Errorf("navigate to %s: %v", view, err)
	}
}

// snapshotAsset deep-copies a so later edits by the caller do not leak
// into the payload.
func snapshotAsset(a *backend.Asset) *backend.Asset {
	if a == nil {
		return nil
	}
	var out backend.Asset
	if err := deepcopy.Copy(&out, a); err != nil {
		l().Warnf("snapshot asset %s: %v", a.ID, err)
		out = *a
	}
	return &out
}

// HandleViewChange switches to a payload-free view. No slot is touched.
func (r *Router) HandleViewChange(view ViewID) {
	r.commit(view, nil)
}

// NavigateToAssetDetails remembers the current view as the way back.
// Re-entering from asset-details keeps the earlier origin.
func (r *Router) NavigateToAssetDetails(asset *backend.Asset) {
	if asset == nil {
		r.commit(ViewAssetDetails, Patch{}.Clear(KindSelectedAsset))
		return
	}
	from := r.store.CurrentView()
	if from == ViewAssetDetails {
		if prev, ok := Get[AssetSelection](r.store); ok {
			from = prev.From
		}
	}
	r.commit(ViewAssetDetails, NewPatch(AssetSelection{Asset: *snapshotAsset(asset), From: from}))
}

// ApplyAssetUpdate merges u into the selected asset when it is assetID.
// The current view does not change.
func (r *Router) ApplyAssetUpdate(assetID string, u backend.AssetUpdate) {
	sel, ok := Get[AssetSelection](r.store)
	if !ok || sel.Asset.ID != assetID {
		l().Debugf("asset update for %s ignored, selection is elsewhere", assetID)
		return
	}
	sel.Asset = u.Apply(sel.Asset)
	r.commit(r.store.CurrentView(), NewPatch(sel))
}

// ShowOnMap raises the highlight and opens the map unless it is already
// showing.
func (r *Router) ShowOnMap(assetID string) {
	r.signals.Highlight(assetID)
	if r.store.CurrentView() != ViewMap {
		r.commit(ViewMap, nil)
	}
}

// NavigateToSiteDetails opens site on the default tab, or on tab[0] when
// given.
func (r *Router) NavigateToSiteDetails(site *backend.Site, tab ...SiteTab) {
	active := r.defaultTab
	if len(tab) > 0 && tab[0].Valid() {
		active = tab[0]
	}
	patch := NewPatch(SiteTabSelection{Tab: active})
	if site == nil {
		patch.Clear(KindSelectedSite)
	} else {
		patch.Set(SiteSelection{Site: *site})
	}
	r.commit(ViewSiteDetails, patch)
}

// SelectSiteTab changes the site-details sub-tab in place.
func (r *Router) SelectSiteTab(tab SiteTab) {
	if !tab.Valid() {
		l().Warnf("ignoring unknown site tab %q", tab)
		return
	}
	r.commit(r.store.CurrentView(), NewPatch(SiteTabSelection{Tab: tab}))
}

func (r *Router) geofenceCreation(prefill *GeofencePrefill, originTab SiteTab) Patch {
	if prefill == nil && originTab == "" {
		return Patch{}.Clear(KindGeofenceCreation)
	}
	c := GeofenceCreation{Prefill: prefill, OriginTab: originTab}
	if originTab != "" {
		if site, ok := Get[SiteSelection](r.store); ok {
			c.SiteID = site.Site.ID
		}
	}
	if c.SiteID == "" && prefill != nil {
		c.SiteID = prefill.SiteID
	}
	return NewPatch(c)
}

// NavigateToCreateGeofence opens the geofence form in create mode. A
// non-empty originTab routes the way back to that tab of site-details.
func (r *Router) NavigateToCreateGeofence(prefill *GeofencePrefill, originTab SiteTab) {
	patch := r.geofenceCreation(prefill, originTab).Set(GeofenceMode{Editing: false})
	r.commit(ViewCreateGeofence, patch)
}

// NavigateToEditGeofence opens the same form in edit mode for id.
func (r *Router) NavigateToEditGeofence(id string, prefill *GeofencePrefill, originTab SiteTab) {
	patch := r.geofenceCreation(prefill, originTab).Set(GeofenceMode{Editing: true})
	if id == "" {
		patch.Clear(KindEditingGeofence)
	} else {
		patch.Set(EditingGeofence{ID: id})
	}
	r.commit(ViewCreateGeofence, patch)
}

// NavigateToCheckInOut hands req to the check-in-out screen. When req has
// no asset context the selected asset is captured if it matches.
func (r *Router) NavigateToCheckInOut(req *CheckInOut) {
	if req == nil {
		r.commit(ViewCheckInOut, Patch{}.Clear(KindCheckInOut))
		return
	}
	c := *req
	if c.AssetContext != nil {
		c.AssetContext = snapshotAsset(c.AssetContext)
	} else if sel, ok := Get[AssetSelection](r.store); ok && sel.Asset.ID == c.AssetID {
		c.AssetContext = snapshotAsset(&sel.Asset)
	}
	r.commit(ViewCheckInOut, NewPatch(c))
}

// originOf names the view that opened a maintenance form. Views without a
// named origin are recorded by id.
func originOf(v ViewID) MaintenanceOrigin {
	switch v {
	case ViewAssetDetails:
		return OriginAssetDetails
	case ViewDashboard:
		return OriginDashboard
	case ViewMaintenance, ViewCreateMaintenance, ViewEditMaintenance, "":
		return OriginMaintenanceList
	default:
		return MaintenanceOrigin(v)
	}
}

func (r *Router) prepareMaintenance(req MaintenanceRequest) MaintenanceRequest {
	if req.From == "" {
		req.From = originOf(r.store.CurrentView())
	}
	if req.Asset != nil {
		req.Asset = snapshotAsset(req.Asset)
		req.AssetContext = snapshotAsset(req.Asset)
	} else if req.AssetContext != nil {
		req.AssetContext = snapshotAsset(req.AssetContext)
	}
	return req
}

func (r *Router) NavigateToCreateMaintenance(req *MaintenanceRequest) {
	if req == nil {
		r.commit(ViewCreateMaintenance, Patch{}.Clear(KindMaintenanceCreation))
		return
	}
	r.commit(ViewCreateMaintenance, NewPatch(MaintenanceCreation{r.prepareMaintenance(*req)}))
}

// NavigateToEditMaintenance opens a task for editing. Coming straight from
// the create form for the same asset, the edit inherits the create form's
// origin so the way back is the same.
func (r *Router) NavigateToEditMaintenance(req *MaintenanceRequest) {
	if req == nil {
		r.commit(ViewEditMaintenance, Patch{}.Clear(KindMaintenanceEdit))
		return
	}
	c := *req
	if c.From == "" && r.store.CurrentView() == ViewCreateMaintenance {
		if created, ok := Get[MaintenanceCreation](r.store); ok && sameAsset(created.Asset, c.Asset) {
			c.From = created.From
			if c.Asset == nil {
				c.Asset = created.Asset
				c.AssetContext = created.AssetContext
			}
		}
	}
	r.commit(ViewEditMaintenance, NewPatch(MaintenanceEdit{r.prepareMaintenance(c)}))
}

func sameAsset(a, b *backend.Asset) bool {
	if a == nil || b == nil {
		return a == b || b == nil
	}
	return a.ID == b.ID
}

func (r *Router) NavigateToReportIssue(req *IssueRequest) {
	if req == nil {
		r.commit(ViewReportIssue, Patch{}.Clear(KindIssue))
		return
	}
	c := *req
	if c.From == "" {
		c.From = r.store.CurrentView()
	}
	r.commit(ViewReportIssue, NewPatch(c))
}

// NavigateToEditIssue opens issue id for editing. req optionally carries
// the asset the issue belongs to.
func (r *Router) NavigateToEditIssue(id string, req *IssueRequest) {
	patch := Patch{}
	if id == "" {
		patch.Clear(KindSelectedIssue)
	} else {
		patch.Set(IssueSelection{ID: id, From: r.store.CurrentView()})
	}
	if req != nil {
		c := *req
		if c.From == "" {
			c.From = r.store.CurrentView()
		}
		patch.Set(c)
	}
	r.commit(ViewEditIssue, patch)
}

func (r *Router) NavigateToIssueDetails(id string) {
	if id == "" {
		r.commit(ViewIssueDetails, Patch{}.Clear(KindSelectedIssue))
		return
	}
	r.commit(ViewIssueDetails, NewPatch(IssueSelection{ID: id, From: r.store.CurrentView()}))
}

func (r *Router) NavigateToAlertWorkflow(alert *backend.Alert) {
	if alert == nil {
		r.commit(ViewAlertWorkflow, Patch{}.Clear(KindAlertForWorkflow))
		return
	}
	r.commit(ViewAlertWorkflow, NewPatch(AlertSelection{Alert: *alert}))
}

// NavigateToAlerts opens the alert list preset with filter. A nil filter
// shows every alert.
func (r *Router) NavigateToAlerts(filter *AlertFilter) {
	if filter == nil {
		r.commit(ViewAlerts, Patch{}.Clear(KindAlertFilter))
		return
	}
	r.commit(ViewAlerts, NewPatch(*filter))
}

func (r *Router) NavigateToEditVehicle(req *VehicleEdit) {
	if req == nil {
		r.commit(ViewEditVehicle, Patch{}.Clear(KindVehicleEdit))
		return
	}
	r.commit(ViewEditVehicle, NewPatch(*req))
}

func (r *Router) navigateToJob(view ViewID, id string) {
	if id == "" {
		r.commit(view, Patch{}.Clear(KindSelectedJob))
		return
	}
	r.commit(view, NewPatch(JobSelection{ID: id, From: r.store.CurrentView()}))
}

func (r *Router) NavigateToJobDetails(id string) { r.navigateToJob(ViewJobDetails, id) }

func (r *Router) NavigateToEditJob(id string) { r.navigateToJob(ViewEditJob, id) }

func (r *Router) NavigateToCreateCompliance(req *ComplianceCreation) {
	if req == nil {
		r.commit(ViewCreateCompliance, Patch{}.Clear(KindComplianceCreation))
		return
	}
	c := *req
	if c.From == "" {
		c.From = r.store.CurrentView()
	}
	r.commit(ViewCreateCompliance, NewPatch(c))
}

func (r *Router) NavigateToHistoricalPlayback(asset *backend.Asset) {
	if asset == nil {
		r.commit(ViewHistoricalPlayback, Patch{}.Clear(KindPlayback))
		return
	}
	r.commit(ViewHistoricalPlayback, NewPatch(PlaybackRequest{
		Asset: *snapshotAsset(asset),
		From:  r.store.CurrentView(),
	}))
}
