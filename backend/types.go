package backend

import "time"

type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetIdle        AssetStatus = "idle"
	AssetCheckedOut  AssetStatus = "checked-out"
	AssetMaintenance AssetStatus = "maintenance"
	AssetOffline     AssetStatus = "offline"
)

// Location is a WGS84 position as last reported by the asset's tracker.
type Location struct {
	Lat float64
	Lng float64
}

type Asset struct {
	ID         string
	Name       string
	Type       string
	Status     AssetStatus
	SiteID     string
	Battery    int // percent
	AssignedTo string
	Location   Location
	Tags       []string
	Attributes map[string]string
	LastSeen   time.Time
}

// AssetUpdate carries the fields a workflow changed on an asset. Empty
// fields are left untouched when applied.
type AssetUpdate struct {
	Status     AssetStatus
	AssignedTo string
	SiteID     string
	Notes      string
	// ClearAssignee empties AssignedTo; set on check-in.
	ClearAssignee bool
}

// Apply returns a copy of a with the non-empty fields of u written over it.
func (u AssetUpdate) Apply(a Asset) Asset {
	if u.Status != "" {
		a.Status = u.Status
	}
	if u.ClearAssignee {
		a.AssignedTo = ""
	}
	if u.AssignedTo != "" {
		a.AssignedTo = u.AssignedTo
	}
	if u.SiteID != "" {
		a.SiteID = u.SiteID
	}
	return a
}

type Site struct {
	ID       string
	Name     string
	Address  string
	Manager  string
	Location Location
}

type Geofence struct {
	ID           string
	Name         string
	SiteID       string
	Center       Location
	RadiusMeters int
	AlertOnExit  bool
}

type AlertStatus string

const (
	AlertActive       AlertStatus = "active"
	AlertAcknowledged AlertStatus = "acknowledged"
	AlertResolved     AlertStatus = "resolved"
)

type Alert struct {
	ID        string
	AssetID   string
	Category  string // battery, geofence, maintenance, compliance, offline
	Severity  string // low, medium, high, critical
	Status    AlertStatus
	Message   string
	CreatedAt time.Time
}

type MaintenanceTask struct {
	ID       string
	AssetID  string
	Title    string
	Status   string // scheduled, in-progress, done
	Priority string
	Due      time.Time
}

type Issue struct {
	ID       string
	AssetID  string
	Title    string
	Severity string
	Status   string // open, investigating, closed
	Notes    string
}

type Vehicle struct {
	ID           string
	Name         string
	Plate        string
	PairedAssets []string
}

type Job struct {
	ID       string
	Name     string
	SiteID   string
	Status   string // planned, active, complete
	AssetIDs []string
}

type ComplianceRecord struct {
	ID      string
	AssetID string
	Kind    string // inspection, certification, permit
	Due     time.Time
	Passed  bool
}
