package maintenanceview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"assetops/backend"
)

func TestLoadRows(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	svc := backend.NewMemory(0)

	rows, err := LoadRows(ctx, svc, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.NotNil(t, r.Asset, r.Task.ID)
		assert.Equal(t, r.Task.AssetID, r.Asset.ID)
	}

	rows, err = LoadRows(ctx, svc, "AT-004")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "MT-001", rows[0].Task.ID)
	assert.Equal(t, "Light Tower (AT-004)", rows[0].assetName())
}

func TestRowWithoutAsset(t *testing.T) {
	r := Row{Task: backend.MaintenanceTask{ID: "MT-009", AssetID: "AT-404"}}
	assert.Equal(t, "AT-404", r.assetName())
}

func TestLoadRowsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadRows(ctx, backend.NewMemory(0), "")
	require.ErrorIs(t, err, context.Canceled)
}
