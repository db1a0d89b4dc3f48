// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package backend

import "context"

// Service is the set of request functions screens call. Every call may
// block for the simulated network latency, so callers run them inside
// tea.Cmds rather than in Update.
type Service interface {
	ListAssets(ctx context.Context) ([]Asset, error)
	GetAsset(ctx context.Context, id string) (Asset, error)
	UpdateAsset(ctx context.Context, id string, u AssetUpdate) (Asset, error)
	CreateAsset(ctx context.Context, a Asset) (Asset, error)

	ListSites(ctx context.Context) ([]Site, error)
	GetSite(ctx context.Context, id string) (Site, error)
	SaveSite(ctx context.Context, s Site) (Site, error)

	ListGeofences(ctx context.Context, siteID string) ([]Geofence, error)
	GetGeofence(ctx context.Context, id string) (Geofence, error)
	SaveGeofence(ctx context.Context, g Geofence) (Geofence, error)

	ListAlerts(ctx context.Context) ([]Alert, error)
	AcknowledgeAlert(ctx context.Context, id string) (Alert, error)
	ResolveAlert(ctx context.Context, id string) (Alert, error)

	ListMaintenance(ctx context.Context, assetID string) ([]MaintenanceTask, error)
	GetMaintenance(ctx context.Context, id string) (MaintenanceTask, error)
	SaveMaintenance(ctx context.Context, t MaintenanceTask) (MaintenanceTask, error)

	ListIssues(ctx context.Context) ([]Issue, error)
	GetIssue(ctx context.Context, id string) (Issue, error)
	SaveIssue(ctx context.Context, i Issue) (Issue, error)

	ListVehicles(ctx context.Context) ([]Vehicle, error)
	GetVehicle(ctx context.Context, id string) (Vehicle, error)
	SaveVehicle(ctx context.Context, v Vehicle) (Vehicle, error)

	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id string) (Job, error)
	SaveJob(ctx context.Context, j Job) (Job, error)

	ListCompliance(ctx context.Context) ([]ComplianceRecord, error)
	SaveCompliance(ctx context.Context, r ComplianceRecord) (ComplianceRecord, error)

	// Revision returns a hash of the whole data set; it changes whenever
	// any entity changes.
	Revision(ctx context.Context) (string, error)
}
