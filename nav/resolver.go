package nav

import "assetops/backend"

// Resolver has one BackFromX per exitable view. Each decides the parent
// from the provenance stored in the view's payload when it was entered,
// not from a history stack. Every method returns the view it landed on.
type Resolver struct {
	store *Store
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store}
}

// assetHandoffs are forms that open asset-details once they have saved.
// Going back lands where the new asset is listed, not on the spent form.
var assetHandoffs = map[ViewID]ViewID{
	ViewCreateAsset: ViewInventory,
	ViewLoadAsset:   ViewInventory,
}

// fixedParents covers views whose parent never depends on how they were
// entered.
var fixedParents = map[ViewID]ViewID{
	ViewSiteDetails:        ViewSites,
	ViewCreateSite:         ViewSites,
	ViewCreateAsset:        ViewInventory,
	ViewLoadAsset:          ViewInventory,
	ViewFindAsset:          ViewInventory,
	ViewIssueDetails:       ViewIssues,
	ViewCreateVehicle:      ViewVehicles,
	ViewEditVehicle:        ViewVehicles,
	ViewVehiclePairing:     ViewVehicles,
	ViewJobDetails:         ViewJobs,
	ViewCreateJob:          ViewJobs,
	ViewAlertConfiguration: ViewAlerts,
	ViewViolationMap:       ViewGeofences,
}

func (r *Resolver) land(view ViewID, patch Patch) ViewID {
	if _, err := r.store.SetView(view, patch); err != nil {
		l().Errorf("back to %s: %v", view, err)
		return r.store.CurrentView()
	}
	return view
}

func (r *Resolver) provenanceLost(from ViewID, detail string, fallback ViewID) ViewID {
	l().Warnf("back from %s: %s, returning to %s", from, detail, fallback)
	return r.land(fallback, nil)
}

// restoreAsset re-seeds the asset selection with a unless it already holds
// the same asset, which is the fresher copy.
func (r *Resolver) restoreAsset(a *backend.Asset) Patch {
	if a == nil {
		return nil
	}
	sel, ok := Get[AssetSelection](r.store)
	if ok && sel.Asset.ID == a.ID {
		return nil
	}
	return NewPatch(AssetSelection{Asset: *snapshotAsset(a), From: ViewInventory})
}

func (r *Resolver) hasAsset() bool {
	_, ok := Get[AssetSelection](r.store)
	return ok
}

func (r *Resolver) BackFromAssetDetails() ViewID {
	sel, ok := Get[AssetSelection](r.store)
	if !ok {
		return r.provenanceLost(ViewAssetDetails, "no asset selected", ViewInventory)
	}
	from := sel.From
	if parent, ok := assetHandoffs[from]; ok {
		from = parent
	}
	if !from.Valid() || from == ViewAssetDetails {
		return r.provenanceLost(ViewAssetDetails, "origin "+string(sel.From)+" unknown", ViewInventory)
	}
	return r.land(from, nil)
}

func (r *Resolver) BackFromSiteDetails() ViewID { return r.land(ViewSites, nil) }

// BackFromCreateGeofence serves both create and edit mode. A form opened
// from a site-details tab goes back to that tab.
func (r *Resolver) BackFromCreateGeofence() ViewID {
	c, ok := Get[GeofenceCreation](r.store)
	if !ok || c.OriginTab == "" {
		return r.land(ViewGeofences, nil)
	}
	if _, ok := Get[SiteSelection](r.store); !ok {
		return r.provenanceLost(ViewCreateGeofence, "origin site is gone", ViewGeofences)
	}
	return r.land(ViewSiteDetails, NewPatch(SiteTabSelection{Tab: c.OriginTab}))
}

func (r *Resolver) BackFromEditGeofence() ViewID { return r.BackFromCreateGeofence() }

func (r *Resolver) BackFromCheckInOut() ViewID {
	c, ok := Get[CheckInOut](r.store)
	if !ok || c.AssetContext == nil {
		if !r.hasAsset() {
			return r.provenanceLost(ViewCheckInOut, "no asset to return to", ViewInventory)
		}
		return r.land(ViewAssetDetails, nil)
	}
	return r.land(ViewAssetDetails, r.restoreAsset(c.AssetContext))
}

var maintenanceForms = map[ViewID]bool{ViewCreateMaintenance: true, ViewEditMaintenance: true}

func (r *Resolver) backFromMaintenance(from ViewID, req MaintenanceRequest) ViewID {
	switch req.From {
	case OriginMaintenanceList:
		return r.land(ViewMaintenance, nil)
	case OriginDashboard:
		return r.land(ViewDashboard, nil)
	case OriginAssetDetails:
		asset := req.AssetContext
		if asset == nil {
			asset = req.Asset
		}
		if asset == nil && !r.hasAsset() {
			return r.provenanceLost(from, "asset to restore is gone", ViewMaintenance)
		}
		return r.land(ViewAssetDetails, r.restoreAsset(asset))
	default:
		if v := ViewID(req.From); v.Valid() && !maintenanceForms[v] {
			return r.land(v, nil)
		}
		return r.provenanceLost(from, "origin "+string(req.From)+" unknown", ViewMaintenance)
	}
}

func (r *Resolver) BackFromCreateMaintenance() ViewID {
	c, ok := Get[MaintenanceCreation](r.store)
	if !ok {
		return r.provenanceLost(ViewCreateMaintenance, "no request", ViewMaintenance)
	}
	return r.backFromMaintenance(ViewCreateMaintenance, c.MaintenanceRequest)
}

func (r *Resolver) BackFromEditMaintenance() ViewID {
	e, ok := Get[MaintenanceEdit](r.store)
	if !ok {
		return r.provenanceLost(ViewEditMaintenance, "no request", ViewMaintenance)
	}
	return r.backFromMaintenance(ViewEditMaintenance, e.MaintenanceRequest)
}

func (r *Resolver) BackFromReportIssue() ViewID {
	req, ok := Get[IssueRequest](r.store)
	if ok && req.From == ViewAssetDetails {
		if !r.hasAsset() {
			return r.provenanceLost(ViewReportIssue, "asset is gone", ViewIssues)
		}
		return r.land(ViewAssetDetails, nil)
	}
	return r.land(ViewIssues, nil)
}

func (r *Resolver) BackFromEditIssue() ViewID {
	sel, ok := Get[IssueSelection](r.store)
	if ok && sel.From == ViewIssueDetails {
		return r.land(ViewIssueDetails, nil)
	}
	return r.land(ViewIssues, nil)
}

func (r *Resolver) BackFromIssueDetails() ViewID { return r.land(ViewIssues, nil) }

// BackFromAlertWorkflow leaves the alert filter as it was.
func (r *Resolver) BackFromAlertWorkflow() ViewID { return r.land(ViewAlerts, nil) }

func (r *Resolver) BackFromCreateCompliance() ViewID {
	req, ok := Get[ComplianceCreation](r.store)
	if ok && req.From == ViewAssetDetails && r.hasAsset() {
		return r.land(ViewAssetDetails, nil)
	}
	return r.land(ViewCompliance, nil)
}

func (r *Resolver) BackFromEditVehicle() ViewID { return r.land(ViewVehicles, nil) }

func (r *Resolver) BackFromJobDetails() ViewID { return r.land(ViewJobs, nil) }

func (r *Resolver) BackFromEditJob() ViewID {
	sel, ok := Get[JobSelection](r.store)
	if ok && sel.From == ViewJobDetails {
		return r.land(ViewJobDetails, nil)
	}
	return r.land(ViewJobs, nil)
}

func (r *Resolver) BackFromHistoricalPlayback() ViewID {
	p, ok := Get[PlaybackRequest](r.store)
	if ok && p.From == ViewAssetDetails {
		return r.land(ViewAssetDetails, r.restoreAsset(&p.Asset))
	}
	return r.land(ViewMap, nil)
}

// Back resolves the parent of the current view. It reports false on the
// dashboard, which has none.
func (r *Resolver) Back() (ViewID, bool) {
	current := r.store.CurrentView()
	switch current {
	case ViewDashboard:
		return current, false
	case ViewAssetDetails:
		return r.BackFromAssetDetails(), true
	case ViewCreateGeofence:
		return r.BackFromCreateGeofence(), true
	case ViewCheckInOut:
		return r.BackFromCheckInOut(), true
	case ViewCreateMaintenance:
		return r.BackFromCreateMaintenance(), true
	case ViewEditMaintenance:
		return r.BackFromEditMaintenance(), true
	case ViewReportIssue:
		return r.BackFromReportIssue(), true
	case ViewEditIssue:
		return r.BackFromEditIssue(), true
	case ViewCreateCompliance:
		return r.BackFromCreateCompliance(), true
	case ViewEditJob:
		return r.BackFromEditJob(), true
	case ViewHistoricalPlayback:
		return r.BackFromHistoricalPlayback(), true
	case ViewAlertWorkflow:
		return r.BackFromAlertWorkflow(), true
	}
	if parent, ok := fixedParents[current]; ok {
		return r.land(parent, nil), true
	}
	return r.land(ViewDashboard, nil), true
}
