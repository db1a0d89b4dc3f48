package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSeededFleet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	assets, err := m.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 5)
	assert.Equal(t, "AT-001", assets[0].ID, "assets are sorted by id")
	assert.Equal(t, seedEpoch, assets[0].LastSeen)

	alerts, err := m.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 4)

	fences, err := m.ListGeofences(ctx, "ST-002")
	require.NoError(t, err)
	require.Len(t, fences, 1)
	assert.Equal(t, "GF-002", fences[0].ID)

	tasks, err := m.ListMaintenance(ctx, "AT-004")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "MT-001", tasks[0].ID)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	jobs, err := m.ListJobs(ctx)
	require.NoError(t, err)
	jobs[0].AssetIDs[0] = "AT-999"

	job, err := m.GetJob(ctx, "JB-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"AT-001", "AT-005"}, job.AssetIDs)
}

func TestUpdateAsset(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	now := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	got, err := m.UpdateAsset(ctx, "AT-001", AssetUpdate{Status: AssetCheckedOut, AssignedTo: "crew-9"})
	require.NoError(t, err)

	want, err := m.GetAsset(ctx, "AT-001")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stored asset differs (-stored +returned):\n%s", diff)
	}
	assert.Equal(t, AssetCheckedOut, got.Status)
	assert.Equal(t, "crew-9", got.AssignedTo)
	assert.Equal(t, "ST-001", got.SiteID, "empty update fields leave the asset alone")
	assert.Equal(t, now, got.LastSeen)

	_, err = m.UpdateAsset(ctx, "AT-404", AssetUpdate{Status: AssetIdle})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSaveAssignsIDsAndDefaults(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	task, err := m.SaveMaintenance(ctx, MaintenanceTask{AssetID: "AT-001", Title: "Grease pins"})
	require.NoError(t, err)
	assert.Equal(t, "MT-101", task.ID)
	assert.Equal(t, "scheduled", task.Status)

	issue, err := m.SaveIssue(ctx, Issue{AssetID: "AT-002", Title: "Cracked mast"})
	require.NoError(t, err)
	assert.Equal(t, "IS-102", issue.ID)
	assert.Equal(t, "open", issue.Status)

	_, err = m.SaveVehicle(ctx, Vehicle{ID: "VH-404"})
	assert.True(t, errors.Is(err, ErrNotFound))

	fence, err := m.SaveGeofence(ctx, Geofence{Name: "Overflow lot", SiteID: "ST-001", RadiusMeters: 90})
	require.NoError(t, err)
	fences, err := m.ListGeofences(ctx, "ST-001")
	require.NoError(t, err)
	assert.Len(t, fences, 2)
	assert.Equal(t, fence.ID, fences[1].ID)
}

func TestCreateAssetAndSaveJob(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	stamp := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	a, err := m.CreateAsset(ctx, Asset{Name: "Pump", Type: "water", SiteID: "ST-002"})
	require.NoError(t, err)
	assert.Equal(t, "AT-101", a.ID)
	assert.Equal(t, AssetIdle, a.Status)
	assert.Equal(t, stamp, a.LastSeen)

	j, err := m.SaveJob(ctx, Job{Name: "Trenching", SiteID: "ST-001"})
	require.NoError(t, err)
	assert.Equal(t, "planned", j.Status)

	site, err := m.SaveSite(ctx, Site{Name: "East Lot"})
	require.NoError(t, err)
	got, err := m.GetSite(ctx, site.ID)
	require.NoError(t, err)
	assert.Equal(t, "East Lot", got.Name)

	_, err = m.SaveJob(ctx, Job{ID: "JB-404"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertStatusChanges(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	a, err := m.AcknowledgeAlert(ctx, "AL-001")
	require.NoError(t, err)
	assert.Equal(t, AlertAcknowledged, a.Status)

	a, err = m.ResolveAlert(ctx, "AL-001")
	require.NoError(t, err)
	assert.Equal(t, AlertResolved, a.Status)

	_, err = m.ResolveAlert(ctx, "AL-999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AL-999")
}

func TestRevisionTracksChanges(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	r1, err := m.Revision(ctx)
	require.NoError(t, err)
	assert.Len(t, r1, 16)

	r2, err := m.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, r1, r2, "revision is stable without writes")

	_, err = m.ResolveAlert(ctx, "AL-002")
	require.NoError(t, err)
	r3, err := m.Revision(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, r1, r3)
}

func TestLatencyHonoursContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewMemory(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.ListAssets(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestEmptyMemory(t *testing.T) {
	m := NewEmptyMemory(0)
	assets, err := m.ListAssets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)

	_, err = m.GetSite(context.Background(), "ST-001")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)

	g, err := m.GetGeofence(ctx, "GF-001")
	require.NoError(t, err)
	assert.Equal(t, 400, g.RadiusMeters)
	assert.True(t, g.AlertOnExit)

	task, err := m.GetMaintenance(ctx, "MT-001")
	require.NoError(t, err)
	assert.Equal(t, "AT-004", task.AssetID)
	assert.Equal(t, seedEpoch.AddDate(0, 0, 2), task.Due)

	v, err := m.GetVehicle(ctx, "VH-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"AT-003"}, v.PairedAssets)

	// Callers get a copy.
	v.PairedAssets[0] = "AT-999"
	again, err := m.GetVehicle(ctx, "VH-001")
	require.NoError(t, err)
	assert.Equal(t, []string{"AT-003"}, again.PairedAssets)

	_, err = m.GetVehicle(ctx, "VH-404")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `vehicle "VH-404"`)
}
