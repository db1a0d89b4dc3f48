package backend

import (
	"context"
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// FormatRevision renders a hash the way revisions are shown in the UI.
func FormatRevision(h uint64) string {
	return fmt.Sprintf("%016x", h)
}

// HashOf hashes any value; map ordering does not affect the result.
func HashOf(v any) (uint64, error) {
	return hashstructure.Hash(v, hashstructure.FormatV2, nil)
}

func (m *Memory) Revision(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, err := HashOf(struct {
		Assets      map[string]Asset
		Sites       map[string]Site
		Geofences   map[string]Geofence
		Alerts      map[string]Alert
		Maintenance map[string]MaintenanceTask
		Issues      map[string]Issue
		Vehicles    map[string]Vehicle
		Jobs        map[string]Job
		Compliance  map[string]ComplianceRecord
	}{m.assets, m.sites, m.geofences, m.alerts, m.maintenance, m.issues, m.vehicles, m.jobs, m.compliance})
	if err != nil {
		return "", fmt.Errorf("hash revision: %w", err)
	}
	return FormatRevision(h), nil
}
