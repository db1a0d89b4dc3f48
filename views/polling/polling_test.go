package polling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"assetops/backend"
)

type fakeSource struct {
	alerts []backend.Alert
	err    error
	calls  int
}

func (f *fakeSource) load(ctx context.Context) ([]backend.Alert, error) {
	f.calls++
	return f.alerts, f.err
}

// poll runs one tick through p and returns what Update reported for the
// result.
func poll(t *testing.T, p *Poller[backend.Alert]) ([]backend.Alert, bool) {
	t.Helper()
	_, _, handled, cmd := p.Update(TickMsg{ID: p.id})
	require.True(t, handled)
	require.NotNil(t, cmd)
	items, changed, handled, next := p.Update(cmd())
	require.True(t, handled)
	assert.NotNil(t, next, "poller must reschedule itself")
	return items, changed
}

func TestPollerReportsOnlyChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &fakeSource{alerts: []backend.Alert{{ID: "AL-001", Status: backend.AlertActive}}}
	p := New(time.Second, src.load)

	items, changed := poll(t, p)
	require.True(t, changed)
	assert.Len(t, items, 1)

	_, changed = poll(t, p)
	assert.False(t, changed)

	src.alerts = append(src.alerts, backend.Alert{ID: "AL-002", Status: backend.AlertActive})
	items, changed = poll(t, p)
	require.True(t, changed)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, src.calls)
}

func TestPollerSeed(t *testing.T) {
	src := &fakeSource{alerts: []backend.Alert{{ID: "AL-001"}}}
	p := New(time.Second, src.load)
	p.Seed(src.alerts)

	_, changed := poll(t, p)
	assert.False(t, changed)
}

func TestPollerKeepsGoingOnError(t *testing.T) {
	src := &fakeSource{err: errors.New("backend down")}
	p := New(time.Second, src.load)

	items, changed := poll(t, p)
	assert.False(t, changed)
	assert.Nil(t, items)
}

func TestPollerIgnoresOtherPollers(t *testing.T) {
	src := &fakeSource{}
	p := New(time.Second, src.load)

	_, _, handled, cmd := p.Update(TickMsg{ID: uuid.New()})
	assert.False(t, handled)
	assert.Nil(t, cmd)

	_, changed, handled, _ := p.Update(ResultMsg[backend.Alert]{ID: uuid.New(), Items: []backend.Alert{{ID: "AL-9"}}})
	assert.False(t, handled)
	assert.False(t, changed)
	assert.Zero(t, src.calls)
}

func TestStoppedPoller(t *testing.T) {
	src := &fakeSource{}
	p := New(time.Second, src.load)
	p.Stop()

	assert.Nil(t, p.TickCmd())
	_, _, handled, cmd := p.Update(TickMsg{ID: p.id})
	assert.True(t, handled)
	assert.Nil(t, cmd)
}
