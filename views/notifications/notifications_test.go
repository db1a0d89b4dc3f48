package notificationsview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"assetops/backend"
)

func TestOpen(t *testing.T) {
	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	all := []backend.Alert{
		{ID: "AL-001", Status: backend.AlertActive, CreatedAt: base},
		{ID: "AL-002", Status: backend.AlertResolved, CreatedAt: base.Add(time.Hour)},
		{ID: "AL-003", Status: backend.AlertActive, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "AL-004", Status: backend.AlertAcknowledged, CreatedAt: base.Add(3 * time.Hour)},
	}

	open := Open(all)

	ids := make([]string, len(open))
	for i, a := range open {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"AL-003", "AL-001"}, ids)
	assert.Len(t, all, 4, "input is left alone")
	assert.Equal(t, "AL-002", all[1].ID)
}
