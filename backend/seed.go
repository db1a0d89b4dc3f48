package backend

import "time"

var seedEpoch = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

func seed(m *Memory) {
	for _, s := range []Site{
		{ID: "ST-001", Name: "North Yard", Address: "12 Quarry Rd", Manager: "R. Okafor", Location: Location{Lat: 52.52, Lng: 13.40}},
		{ID: "ST-002", Name: "Harbor Depot", Address: "3 Pier Ave", Manager: "L. Brandt", Location: Location{Lat: 53.55, Lng: 9.99}},
	} {
		m.sites[s.ID] = s
	}

	for _, a := range []Asset{
		{ID: "AT-001", Name: "Excavator", Type: "heavy", Status: AssetActive, SiteID: "ST-001", Battery: 82, Location: Location{Lat: 52.521, Lng: 13.401}, Tags: []string{"tracked"}},
		{ID: "AT-002", Name: "Forklift 7", Type: "lift", Status: AssetIdle, SiteID: "ST-002", Battery: 14, Location: Location{Lat: 53.551, Lng: 9.991}},
		{ID: "AT-003", Name: "Generator", Type: "power", Status: AssetCheckedOut, SiteID: "ST-001", Battery: 63, AssignedTo: "crew-4", Attributes: map[string]string{"fuel": "diesel"}},
		{ID: "AT-004", Name: "Light Tower", Type: "power", Status: AssetMaintenance, SiteID: "ST-002", Battery: 41},
		{ID: "AT-005", Name: "Compactor", Type: "heavy", Status: AssetOffline, SiteID: "ST-001", Battery: 0},
	} {
		a.LastSeen = seedEpoch
		m.assets[a.ID] = a
	}

	for _, g := range []Geofence{
		{ID: "GF-001", Name: "North Yard perimeter", SiteID: "ST-001", Center: Location{Lat: 52.52, Lng: 13.40}, RadiusMeters: 400, AlertOnExit: true},
		{ID: "GF-002", Name: "Harbor gate", SiteID: "ST-002", Center: Location{Lat: 53.55, Lng: 9.99}, RadiusMeters: 150},
	} {
		m.geofences[g.ID] = g
	}

	for _, a := range []Alert{
		{ID: "AL-001", AssetID: "AT-002", Category: "battery", Severity: "high", Status: AlertActive, Message: "Battery below 15%"},
		{ID: "AL-002", AssetID: "AT-005", Category: "offline", Severity: "medium", Status: AlertActive, Message: "No signal for 6h"},
		{ID: "AL-003", AssetID: "AT-001", Category: "geofence", Severity: "critical", Status: AlertAcknowledged, Message: "Left North Yard perimeter"},
		{ID: "AL-004", AssetID: "AT-004", Category: "battery", Severity: "low", Status: AlertResolved, Message: "Battery below 50%"},
	} {
		a.CreatedAt = seedEpoch
		m.alerts[a.ID] = a
	}

	for _, t := range []MaintenanceTask{
		{ID: "MT-001", AssetID: "AT-004", Title: "Replace lamp ballast", Status: "in-progress", Priority: "high", Due: seedEpoch.AddDate(0, 0, 2)},
		{ID: "MT-002", AssetID: "AT-001", Title: "Hydraulic service", Status: "scheduled", Priority: "medium", Due: seedEpoch.AddDate(0, 0, 14)},
	} {
		m.maintenance[t.ID] = t
	}

	m.issues["IS-001"] = Issue{ID: "IS-001", AssetID: "AT-005", Title: "Tracker unresponsive", Severity: "medium", Status: "open"}

	m.vehicles["VH-001"] = Vehicle{ID: "VH-001", Name: "Service Van 2", Plate: "B-OP 2210", PairedAssets: []string{"AT-003"}}

	m.jobs["JB-001"] = Job{ID: "JB-001", Name: "Foundation pour", SiteID: "ST-001", Status: "active", AssetIDs: []string{"AT-001", "AT-005"}}

	m.compliance["CR-001"] = ComplianceRecord{ID: "CR-001", AssetID: "AT-002", Kind: "inspection", Due: seedEpoch.AddDate(0, 1, 0)}
}
