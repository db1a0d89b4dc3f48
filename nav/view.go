package nav

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ViewID names one screen of the console. Exactly one is current.
type ViewID string

const (
	ViewDashboard          ViewID = "dashboard"
	ViewInventory          ViewID = "inventory"
	ViewMap                ViewID = "map"
	ViewSites              ViewID = "sites"
	ViewAssetDetails       ViewID = "asset-details"
	ViewSiteDetails        ViewID = "site-details"
	ViewCreateSite         ViewID = "create-site"
	ViewCreateAsset        ViewID = "create-asset"
	ViewCreateGeofence     ViewID = "create-geofence"
	ViewGeofences          ViewID = "geofences"
	ViewVehicles           ViewID = "vehicles"
	ViewVehiclePairing     ViewID = "vehicle-pairing"
	ViewCreateVehicle      ViewID = "create-vehicle"
	ViewEditVehicle        ViewID = "edit-vehicle"
	ViewJobs               ViewID = "jobs"
	ViewCreateJob          ViewID = "create-job"
	ViewEditJob            ViewID = "edit-job"
	ViewJobDetails         ViewID = "job-details"
	ViewMaintenance        ViewID = "maintenance"
	ViewCreateMaintenance  ViewID = "create-maintenance"
	ViewEditMaintenance    ViewID = "edit-maintenance"
	ViewIssues             ViewID = "issues"
	ViewReportIssue        ViewID = "report-issue"
	ViewEditIssue          ViewID = "edit-issue"
	ViewIssueDetails       ViewID = "issue-details"
	ViewCompliance         ViewID = "compliance"
	ViewCreateCompliance   ViewID = "create-compliance"
	ViewReports            ViewID = "reports"
	ViewSettings           ViewID = "settings"
	ViewAlerts             ViewID = "alerts"
	ViewAlertConfiguration ViewID = "alert-configuration"
	ViewAlertWorkflow      ViewID = "alert-workflow"
	ViewNotifications      ViewID = "notifications"
	ViewCheckInOut         ViewID = "check-in-out"
	ViewHistoricalPlayback ViewID = "historical-playback"
	ViewViolationMap       ViewID = "violation-map"
	ViewLoadAsset          ViewID = "load-asset"
	ViewFindAsset          ViewID = "find-asset"
	ViewUsers              ViewID = "users"
	ViewHelp               ViewID = "help"
)

var allViews = []ViewID{
	ViewDashboard, ViewInventory, ViewMap, ViewSites, ViewAssetDetails,
	ViewSiteDetails, ViewCreateSite, ViewCreateAsset, ViewCreateGeofence,
	ViewGeofences, ViewVehicles, ViewVehiclePairing, ViewCreateVehicle,
	ViewEditVehicle, ViewJobs, ViewCreateJob, ViewEditJob, ViewJobDetails,
	ViewMaintenance, ViewCreateMaintenance, ViewEditMaintenance, ViewIssues,
	ViewReportIssue, ViewEditIssue, ViewIssueDetails, ViewCompliance,
	ViewCreateCompliance, ViewReports, ViewSettings, ViewAlerts,
	ViewAlertConfiguration, ViewAlertWorkflow, ViewNotifications,
	ViewCheckInOut, ViewHistoricalPlayback, ViewViolationMap, ViewLoadAsset,
	ViewFindAsset, ViewUsers, ViewHelp,
}

// topLevel views have no payload and sit directly under the dashboard.
var topLevel = map[ViewID]bool{
	ViewInventory: true, ViewMap: true, ViewSites: true, ViewGeofences: true,
	ViewVehicles: true, ViewJobs: true, ViewMaintenance: true, ViewIssues: true,
	ViewCompliance: true, ViewReports: true, ViewSettings: true, ViewAlerts: true,
	ViewNotifications: true, ViewUsers: true, ViewHelp: true,
}

var ErrUnknownView = errors.New("unknown view")

// Views returns every view id in menu order.
func Views() []ViewID {
	return slices.Clone(allViews)
}

func (v ViewID) String() string { return string(v) }

func (v ViewID) Valid() bool {
	return slices.Contains(allViews, v)
}

// TopLevel reports whether v is a payload-free list or page reachable
// from the dashboard.
func (v ViewID) TopLevel() bool { return topLevel[v] }

// ParseViewID accepts a view id in any case, with surrounding blanks.
func ParseViewID(s string) (ViewID, error) {
	v := ViewID(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return v, nil
}

// Title is the human label used in headers and the breadcrumb bar.
func (v ViewID) Title() string {
	words := strings.Split(string(v), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
