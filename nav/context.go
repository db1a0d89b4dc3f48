package nav

import (
	"strings"

	"assetops/backend"
)

// ContextKind names one context slot. Each kind has exactly one payload
// type in this file.
type ContextKind string

const (
	KindSelectedAsset       ContextKind = "selectedAsset"
	KindSelectedSite        ContextKind = "selectedSite"
	KindSiteActiveTab       ContextKind = "siteActiveTab"
	KindCheckInOut          ContextKind = "checkInOutData"
	KindMaintenanceCreation ContextKind = "maintenanceCreationData"
	KindMaintenanceEdit     ContextKind = "maintenanceEditData"
	KindGeofenceCreation    ContextKind = "geofenceCreationData"
	KindEditingGeofence     ContextKind = "editingGeofenceId"
	KindGeofenceMode        ContextKind = "isEditingGeofence"
	KindIssue               ContextKind = "issueData"
	KindSelectedIssue       ContextKind = "selectedIssueId"
	KindAlertForWorkflow    ContextKind = "selectedAlertForWorkflow"
	KindAlertFilter         ContextKind = "alertFilter"
	KindVehicleEdit         ContextKind = "vehicleEditData"
	KindSelectedJob         ContextKind = "selectedJob"
	KindComplianceCreation  ContextKind = "complianceCreationData"
	KindPlayback            ContextKind = "playbackAsset"
)

var kindLabels = map[ContextKind]string{
	KindSelectedAsset:       "asset",
	KindSelectedSite:        "site",
	KindSiteActiveTab:       "site tab",
	KindCheckInOut:          "check-in/out request",
	KindMaintenanceCreation: "maintenance request",
	KindMaintenanceEdit:     "maintenance task",
	KindGeofenceCreation:    "geofence request",
	KindEditingGeofence:     "geofence",
	KindGeofenceMode:        "geofence mode",
	KindIssue:               "issue request",
	KindSelectedIssue:       "issue",
	KindAlertForWorkflow:    "alert",
	KindAlertFilter:         "alert filter",
	KindVehicleEdit:         "vehicle",
	KindSelectedJob:         "job",
	KindComplianceCreation:  "compliance request",
	KindPlayback:            "asset for playback",
}

// Label is the noun used by missing-context placeholders ("No site selected").
func (k ContextKind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Payload is implemented by every slot value. Kind is the discriminator
// that decides which slot the payload occupies.
type Payload interface {
	Kind() ContextKind
}

// Reader is anything that can answer slot lookups: the store, a snapshot,
// a bare Slots map.
type Reader interface {
	Context(kind ContextKind) (Payload, bool)
}

// Slots maps each populated kind to its payload.
type Slots map[ContextKind]Payload

func (s Slots) Context(kind ContextKind) (Payload, bool) {
	p, ok := s[kind]
	return p, ok
}

// Get returns the payload of type P, using P's own Kind to pick the slot.
func Get[P Payload](r Reader) (P, bool) {
	var zero P
	if r == nil {
		return zero, false
	}
	p, ok := r.Context(zero.Kind())
	if !ok {
		return zero, false
	}
	typed, ok := p.(P)
	return typed, ok
}

// AssetSelection feeds asset-details. From is the view that was current
// when the asset was opened.
type AssetSelection struct {
	Asset backend.Asset
	From  ViewID
}

func (AssetSelection) Kind() ContextKind { return KindSelectedAsset }

type SiteSelection struct {
	Site backend.Site
}

func (SiteSelection) Kind() ContextKind { return KindSelectedSite }

type SiteTab string

const (
	SiteTabOverview    SiteTab = "overview"
	SiteTabAssets      SiteTab = "assets"
	SiteTabGeofences   SiteTab = "geofences"
	SiteTabAlerts      SiteTab = "alerts"
	SiteTabMaintenance SiteTab = "maintenance"
)

var SiteTabs = []SiteTab{SiteTabOverview, SiteTabAssets, SiteTabGeofences, SiteTabAlerts, SiteTabMaintenance}

func (t SiteTab) Valid() bool {
	for _, s := range SiteTabs {
		if s == t {
			return true
		}
	}
	return false
}

// Next cycles through SiteTabs.
func (t SiteTab) Next() SiteTab {
	for i, s := range SiteTabs {
		if s == t {
			return SiteTabs[(i+1)%len(SiteTabs)]
		}
	}
	return SiteTabs[0]
}

type SiteTabSelection struct {
	Tab SiteTab
}

func (SiteTabSelection) Kind() ContextKind { return KindSiteActiveTab }

type CheckMode string

const (
	CheckIn  CheckMode = "check-in"
	CheckOut CheckMode = "check-out"
)

func (m CheckMode) Valid() bool { return m == CheckIn || m == CheckOut }

// Completer is implemented by payloads that can sit in their slot while
// still lacking what their screen needs. An incomplete payload counts as
// missing.
type Completer interface {
	Complete() bool
}

// CheckInOut is the request handed to the check-in-out screen. OnComplete
// receives the asset fields the workflow changed.
type CheckInOut struct {
	AssetID       string
	AssetName     string
	CurrentStatus backend.AssetStatus
	Mode          CheckMode
	AssetContext  *backend.Asset
	OnComplete    *Completion[backend.AssetUpdate]
}

func (CheckInOut) Kind() ContextKind { return KindCheckInOut }

// Complete reports whether the screen knows what to do and who to tell.
func (c CheckInOut) Complete() bool { return c.Mode.Valid() && c.OnComplete != nil }

// MaintenanceOrigin records which screen opened a maintenance form. Besides
// the named origins it may hold the id of any other view.
type MaintenanceOrigin string

const (
	OriginMaintenanceList MaintenanceOrigin = "maintenance-list"
	OriginAssetDetails    MaintenanceOrigin = "asset-details"
	OriginDashboard       MaintenanceOrigin = "dashboard"
)

type MaintenanceRequest struct {
	Asset  *backend.Asset
	TaskID string
	From   MaintenanceOrigin
	// AssetContext is a deep copy of the asset taken when the form opened.
	AssetContext *backend.Asset
}

type MaintenanceCreation struct {
	MaintenanceRequest
}

func (MaintenanceCreation) Kind() ContextKind { return KindMaintenanceCreation }

type MaintenanceEdit struct {
	MaintenanceRequest
}

func (MaintenanceEdit) Kind() ContextKind { return KindMaintenanceEdit }

type GeofencePrefill struct {
	Name         string
	SiteID       string
	Center       backend.Location
	RadiusMeters int
}

// GeofenceCreation is shared by create and edit. A non-empty OriginTab
// means the form was opened from that tab of site-details.
type GeofenceCreation struct {
	Prefill   *GeofencePrefill
	OriginTab SiteTab
	SiteID    string
}

func (GeofenceCreation) Kind() ContextKind { return KindGeofenceCreation }

type EditingGeofence struct {
	ID string
}

func (EditingGeofence) Kind() ContextKind { return KindEditingGeofence }

type GeofenceMode struct {
	Editing bool
}

func (GeofenceMode) Kind() ContextKind { return KindGeofenceMode }

type IssueRequest struct {
	AssetID   string
	AssetName string
	From      ViewID
}

func (IssueRequest) Kind() ContextKind { return KindIssue }

type IssueSelection struct {
	ID   string
	From ViewID
}

func (IssueSelection) Kind() ContextKind { return KindSelectedIssue }

type AlertSelection struct {
	Alert backend.Alert
}

func (AlertSelection) Kind() ContextKind { return KindAlertForWorkflow }

// AlertFilter presets the alerts list. Empty fields match everything.
type AlertFilter struct {
	Category string
	Severity string
	Status   string
	Search   string
}

func (AlertFilter) Kind() ContextKind { return KindAlertFilter }

func (f AlertFilter) IsZero() bool { return f == AlertFilter{} }

func (f AlertFilter) Matches(a backend.Alert) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, a.Category) {
		return false
	}
	if f.Severity != "" && !strings.EqualFold(f.Severity, a.Severity) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(f.Status, string(a.Status)) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Message), q) &&
			!strings.Contains(strings.ToLower(a.AssetID), q) &&
			!strings.Contains(strings.ToLower(a.ID), q) {
			return false
		}
	}
	return true
}

// Apply keeps the alerts the filter matches, in order.
func (f AlertFilter) Apply(alerts []backend.Alert) []backend.Alert {
	out := make([]backend.Alert, 0, len(alerts))
	for _, a := range alerts {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	return out
}

type VehicleEdit struct {
	VehicleID        string
	OnVehicleUpdated *Completion[backend.Vehicle]
}

func (VehicleEdit) Kind() ContextKind { return KindVehicleEdit }

type JobSelection struct {
	ID   string
	From ViewID
}

func (JobSelection) Kind() ContextKind { return KindSelectedJob }

type ComplianceCreation struct {
	AssetID string
	From    ViewID
}

func (ComplianceCreation) Kind() ContextKind { return KindComplianceCreation }

type PlaybackRequest struct {
	Asset backend.Asset
	From  ViewID
}

func (PlaybackRequest) Kind() ContextKind { return KindPlayback }
