package app

import (
	"assetops/nav"
	opslog "assetops/utils/log"
	alertsview "assetops/views/alerts"
	alertworkflowview "assetops/views/alertworkflow"
	assetdetailsview "assetops/views/assetdetails"
	checkinoutview "assetops/views/checkinout"
	complianceview "assetops/views/compliance"
	dashboardview "assetops/views/dashboard"
	formsview "assetops/views/forms"
	geofencesview "assetops/views/geofences"
	helpview "assetops/views/help"
	inventoryview "assetops/views/inventory"
	issuedetailsview "assetops/views/issuedetails"
	issuesview "assetops/views/issues"
	jobdetailsview "assetops/views/jobdetails"
	jobsview "assetops/views/jobs"
	maintenanceview "assetops/views/maintenance"
	"assetops/views/mapview"
	notificationsview "assetops/views/notifications"
	pagesview "assetops/views/pages"
	playbackview "assetops/views/playback"
	sitedetailsview "assetops/views/sitedetails"
	sitesview "assetops/views/sites"
	usersview "assetops/views/users"
	vehiclesview "assetops/views/vehicles"
	"assetops/views/view"

	_ "assetops/commands" // triggers autoload
)

// Version is stamped at build time.
var Version = "dev"

func l() *opslog.Logger {
	return opslog.Component("app")
}

type registration struct {
	factory  view.Factory
	requires []nav.ContextKind
}

var viewRegistry = map[nav.ViewID]registration{}

// registerView binds a factory to id. requires lists the context slots the
// screen cannot render without; when one is empty the fallback is shown
// instead.
func registerView(id nav.ViewID, factory view.Factory, requires ...nav.ContextKind) {
	viewRegistry[id] = registration{factory: factory, requires: requires}
}

// Unregistered lists the view ids that have no screen.
func Unregistered() []nav.ViewID {
	var missing []nav.ViewID
	for _, id := range nav.Views() {
		if _, ok := viewRegistry[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func init() {
	registerView(nav.ViewDashboard, dashboardview.New)
	registerView(nav.ViewInventory, inventoryview.New)
	registerView(nav.ViewFindAsset, inventoryview.NewFind)
	registerView(nav.ViewMap, mapview.New)
	registerView(nav.ViewViolationMap, mapview.NewViolations)
	registerView(nav.ViewSites, sitesview.New)
	registerView(nav.ViewGeofences, geofencesview.New)
	registerView(nav.ViewMaintenance, maintenanceview.New)
	registerView(nav.ViewIssues, issuesview.New)
	registerView(nav.ViewVehicles, vehiclesview.New)
	registerView(nav.ViewJobs, jobsview.New)
	registerView(nav.ViewCompliance, complianceview.New)
	registerView(nav.ViewAlerts, alertsview.New)
	registerView(nav.ViewNotifications, notificationsview.New)
	registerView(nav.ViewUsers, usersview.New)
	registerView(nav.ViewHelp, helpview.New)

	registerView(nav.ViewAssetDetails, assetdetailsview.New, nav.KindSelectedAsset)
	registerView(nav.ViewSiteDetails, sitedetailsview.New, nav.KindSelectedSite)
	registerView(nav.ViewIssueDetails, issuedetailsview.New, nav.KindSelectedIssue)
	registerView(nav.ViewJobDetails, jobdetailsview.New, nav.KindSelectedJob)
	registerView(nav.ViewAlertWorkflow, alertworkflowview.New, nav.KindAlertForWorkflow)
	registerView(nav.ViewCheckInOut, checkinoutview.New, nav.KindCheckInOut)
	registerView(nav.ViewHistoricalPlayback, playbackview.New, nav.KindPlayback)

	registerView(nav.ViewCreateMaintenance, formsview.NewCreateMaintenance)
	registerView(nav.ViewEditMaintenance, formsview.NewEditMaintenance, nav.KindMaintenanceEdit)
	registerView(nav.ViewReportIssue, formsview.NewReportIssue)
	registerView(nav.ViewEditIssue, formsview.NewEditIssue, nav.KindSelectedIssue)
	registerView(nav.ViewCreateGeofence, formsview.NewGeofence)
	registerView(nav.ViewCreateVehicle, formsview.NewCreateVehicle)
	registerView(nav.ViewEditVehicle, formsview.NewEditVehicle, nav.KindVehicleEdit)
	registerView(nav.ViewCreateCompliance, formsview.NewCreateCompliance)
	registerView(nav.ViewCreateJob, formsview.NewCreateJob)
	registerView(nav.ViewEditJob, formsview.NewEditJob, nav.KindSelectedJob)
	registerView(nav.ViewCreateSite, formsview.NewCreateSite)
	registerView(nav.ViewCreateAsset, formsview.NewCreateAsset)
	registerView(nav.ViewLoadAsset, formsview.NewLoadAsset)

	registerView(nav.ViewReports, pagesview.NewReports)
	registerView(nav.ViewSettings, pagesview.NewSettings)
	registerView(nav.ViewAlertConfiguration, pagesview.NewAlertConfiguration)
	registerView(nav.ViewVehiclePairing, pagesview.NewVehiclePairing)
}
