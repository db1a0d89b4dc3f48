package backend

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tiendc/go-deepcopy"
)

// Memory is an in-process Service holding demo data. Each request sleeps
// for the configured latency to behave like a remote API.
type Memory struct {
	mu      sync.RWMutex
	latency time.Duration
	now     func() time.Time
	seq     int

	assets      map[string]Asset
	sites       map[string]Site
	geofences   map[string]Geofence
	alerts      map[string]Alert
	maintenance map[string]MaintenanceTask
	issues      map[string]Issue
	vehicles    map[string]Vehicle
	jobs        map[string]Job
	compliance  map[string]ComplianceRecord
}

var _ Service = (*Memory)(nil)

// NewMemory returns a Memory seeded with the demo fleet.
func NewMemory(latency time.Duration) *Memory {
	m := NewEmptyMemory(latency)
	seed(m)
	return m
}

// NewEmptyMemory returns a Memory without any data.
func NewEmptyMemory(latency time.Duration) *Memory {
	return &Memory{
		latency:     latency,
		now:         time.Now,
		seq:         100,
		assets:      map[string]Asset{},
		sites:       map[string]Site{},
		geofences:   map[string]Geofence{},
		alerts:      map[string]Alert{},
		maintenance: map[string]MaintenanceTask{},
		issues:      map[string]Issue{},
		vehicles:    map[string]Vehicle{},
		jobs:        map[string]Job{},
		compliance:  map[string]ComplianceRecord{},
	}
}

func (m *Memory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Memory) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%03d", prefix, m.seq)
}

// values returns the map's values sorted by id, deep-copied so callers
// cannot reach into the store.
func values[T any](src map[string]T) ([]T, error) {
	ids := make([]string, 0, len(src))
	for id := range src {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, strings.Compare)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		v, err := clone(src[id])
		if err != nil {
			return nil, fmt.Errorf("copy %s: %w", id, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// clone deep-copies v. The source is passed by pointer so unexported
// fields (time.Time) are reachable.
func clone[T any](v T) (T, error) {
	var out T
	if err := deepcopy.Copy(&out, &v); err != nil {
		return out, fmt.Errorf("copy: %w", err)
	}
	return out, nil
}

func (m *Memory) ListAssets(ctx context.Context) ([]Asset, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.assets)
}

func (m *Memory) GetAsset(ctx context.Context, id string) (Asset, error) {
	if err := m.wait(ctx); err != nil {
		return Asset{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	if !ok {
		return Asset{}, notFound("asset", id)
	}
	return clone(a)
}

func (m *Memory) UpdateAsset(ctx context.Context, id string, u AssetUpdate) (Asset, error) {
	if err := m.wait(ctx); err != nil {
		return Asset{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[id]
	if !ok {
		return Asset{}, notFound("asset", id)
	}
	a = u.Apply(a)
	a.LastSeen = m.now()
	m.assets[id] = a
	return clone(a)
}

func (m *Memory) ListSites(ctx context.Context) ([]Site, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.sites)
}

func (m *Memory) GetSite(ctx context.Context, id string) (Site, error) {
	if err := m.wait(ctx); err != nil {
		return Site{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sites[id]
	if !ok {
		return Site{}, notFound("site", id)
	}
	return s, nil
}

// ListGeofences returns the geofences of one site, or all of them when
// siteID is empty.
func (m *Memory) ListGeofences(ctx context.Context, siteID string) ([]Geofence, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	all, err := values(m.geofences)
	if err != nil || siteID == "" {
		return all, err
	}
	return slices.DeleteFunc(all, func(g Geofence) bool { return g.SiteID != siteID }), nil
}

func (m *Memory) SaveGeofence(ctx context.Context, g Geofence) (Geofence, error) {
	if err := m.wait(ctx); err != nil {
		return Geofence{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if g.ID == "" {
		g.ID = m.nextID("GF")
	} else if _, ok := m.geofences[g.ID]; !ok {
		return Geofence{}, notFound("geofence", g.ID)
	}
	m.geofences[g.ID] = g
	return g, nil
}

func (m *Memory) ListAlerts(ctx context.Context) ([]Alert, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.alerts)
}

func (m *Memory) AcknowledgeAlert(ctx context.Context, id string) (Alert, error) {
	return m.setAlertStatus(ctx, id, AlertAcknowledged)
}

func (m *Memory) ResolveAlert(ctx context.Context, id string) (Alert, error) {
	return m.setAlertStatus(ctx, id, AlertResolved)
}

func (m *Memory) setAlertStatus(ctx context.Context, id string, status AlertStatus) (Alert, error) {
	if err := m.wait(ctx); err != nil {
		return Alert{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.alerts[id]
	if !ok {
		return Alert{}, notFound("alert", id)
	}
	a.Status = status
	m.alerts[id] = a
	return a, nil
}

// ListMaintenance returns the tasks of one asset, or all tasks when
// assetID is empty.
func (m *Memory) ListMaintenance(ctx context.Context, assetID string) ([]MaintenanceTask, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	all, err := values(m.maintenance)
	if err != nil || assetID == "" {
		return all, err
	}
	return slices.DeleteFunc(all, func(t MaintenanceTask) bool { return t.AssetID != assetID }), nil
}

func (m *Memory) SaveMaintenance(ctx context.Context, t MaintenanceTask) (MaintenanceTask, error) {
	if err := m.wait(ctx); err != nil {
		return MaintenanceTask{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = m.nextID("MT")
	} else if _, ok := m.maintenance[t.ID]; !ok {
		return MaintenanceTask{}, notFound("maintenance task", t.ID)
	}
	if t.Status == "" {
		t.Status = "scheduled"
	}
	m.maintenance[t.ID] = t
	return t, nil
}

func (m *Memory) ListIssues(ctx context.Context) ([]Issue, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.issues)
}

func (m *Memory) GetIssue(ctx context.Context, id string) (Issue, error) {
	if err := m.wait(ctx); err != nil {
		return Issue{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.issues[id]
	if !ok {
		return Issue{}, notFound("issue", id)
	}
	return i, nil
}

func (m *Memory) SaveIssue(ctx context.Context, i Issue) (Issue, error) {
	if err := m.wait(ctx); err != nil {
		return Issue{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if i.ID == "" {
		i.ID = m.nextID("IS")
	} else if _, ok := m.issues[i.ID]; !ok {
		return Issue{}, notFound("issue", i.ID)
	}
	if i.Status == "" {
		i.Status = "open"
	}
	m.issues[i.ID] = i
	return i, nil
}

func (m *Memory) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.vehicles)
}

func (m *Memory) SaveVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	if err := m.wait(ctx); err != nil {
		return Vehicle{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v.ID == "" {
		v.ID = m.nextID("VH")
	} else if _, ok := m.vehicles[v.ID]; !ok {
		return Vehicle{}, notFound("vehicle", v.ID)
	}
	m.vehicles[v.ID] = v
	return clone(v)
}

func (m *Memory) ListJobs(ctx context.Context) ([]Job, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.jobs)
}

func (m *Memory) GetJob(ctx context.Context, id string) (Job, error) {
	if err := m.wait(ctx); err != nil {
		return Job{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return Job{}, notFound("job", id)
	}
	return clone(j)
}

func (m *Memory) ListCompliance(ctx context.Context) ([]ComplianceRecord, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return values(m.compliance)
}

func (m *Memory) SaveCompliance(ctx context.Context, r ComplianceRecord) (ComplianceRecord, error) {
	if err := m.wait(ctx); err != nil {
		return ComplianceRecord{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = m.nextID("CR")
	} else if _, ok := m.compliance[r.ID]; !ok {
		return ComplianceRecord{}, notFound("compliance record", r.ID)
	}
	m.compliance[r.ID] = r
	return r, nil
}

// CreateAsset registers a new asset. The id is assigned by the store.
func (m *Memory) CreateAsset(ctx context.Context, a Asset) (Asset, error) {
	if err := m.wait(ctx); err != nil {
		return Asset{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.nextID("AT")
	if a.Status == "" {
		a.Status = AssetIdle
	}
	a.LastSeen = m.now()
	m.assets[a.ID] = a
	return clone(a)
}

func (m *Memory) SaveSite(ctx context.Context, s Site) (Site, error) {
	if err := m.wait(ctx); err != nil {
		return Site{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = m.nextID("ST")
	} else if _, ok := m.sites[s.ID]; !ok {
		return Site{}, notFound("site", s.ID)
	}
	m.sites[s.ID] = s
	return s, nil
}

func (m *Memory) SaveJob(ctx context.Context, j Job) (Job, error) {
	if err := m.wait(ctx); err != nil {
		return Job{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if j.ID == "" {
		j.ID = m.nextID("JB")
	} else if _, ok := m.jobs[j.ID]; !ok {
		return Job{}, notFound("job", j.ID)
	}
	if j.Status == "" {
		j.Status = "planned"
	}
	m.jobs[j.ID] = j
	return clone(j)
}

// get reads one entity under the read lock and returns a copy.
func get[T any](ctx context.Context, m *Memory, src map[string]T, kind, id string) (T, error) {
	var zero T
	if err := m.wait(ctx); err != nil {
		return zero, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := src[id]
	if !ok {
		return zero, notFound(kind, id)
	}
	return clone(v)
}

func (m *Memory) GetGeofence(ctx context.Context, id string) (Geofence, error) {
	return get(ctx, m, m.geofences, "geofence", id)
}

func (m *Memory) GetMaintenance(ctx context.Context, id string) (MaintenanceTask, error) {
	return get(ctx, m, m.maintenance, "maintenance task", id)
}

func (m *Memory) GetVehicle(ctx context.Context, id string) (Vehicle, error) {
	return get(ctx, m, m.vehicles, "vehicle", id)
}
