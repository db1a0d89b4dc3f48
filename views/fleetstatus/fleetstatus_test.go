package fleetstatusview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"assetops/backend"
)

func TestLoadStatus(t *testing.T) {
	defer goleak.VerifyNone(t)

	msg, ok := LoadStatus(backend.NewMemory(0))().(Msg)
	require.True(t, ok)
	assert.Equal(t, 5, msg.Assets)
	assert.Equal(t, 2, msg.ActiveAlerts)
	assert.Equal(t, 1, msg.ByStatus[backend.AssetOffline])
	assert.NotEmpty(t, msg.Revision)
}

func TestReadingAndTrend(t *testing.T) {
	ctx := context.Background()
	svc := backend.NewMemory(0)
	m := New("1.2.0", svc, time.Second)
	assert.Contains(t, m.View(), "1.2.0")

	first := LoadStatus(svc)().(Msg)
	m.Update(first)
	assert.Equal(t, first.Revision, m.Revision())
	assert.Contains(t, m.View(), "5 (1 active, 1 out, 1 offline)")
	assert.NotContains(t, m.View(), "↑")

	// The same revision is not redrawn.
	m.Update(first)
	assert.Equal(t, first, m.Reading())

	_, err := svc.AcknowledgeAlert(ctx, "AL-001")
	require.NoError(t, err)
	second := LoadStatus(svc)().(Msg)
	require.NotEqual(t, first.Revision, second.Revision)
	m.Update(second)
	assert.Equal(t, 1, m.Reading().ActiveAlerts)
	assert.Contains(t, m.View(), "↓")
}

func TestError(t *testing.T) {
	m := New("dev", backend.NewMemory(0), time.Second)
	m.Update(ErrMsg{Err: errors.New("backend down")})
	assert.Contains(t, m.View(), "backend down")
	assert.Contains(t, m.View(), "N/A")
}
