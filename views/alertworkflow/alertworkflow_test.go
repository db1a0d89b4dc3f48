package alertworkflowview

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/view"
)

func setup(t *testing.T, filter nav.AlertFilter) (*Model, *nav.Store, *[]string) {
	t.Helper()
	svc := backend.NewMemory(0)
	store := nav.NewStore(nav.ViewDashboard)
	signals := nav.NewSignals()
	router := nav.NewRouter(store, signals)
	router.NavigateToAlerts(&filter)

	var alert backend.Alert
	all, err := svc.ListAlerts(context.Background())
	require.NoError(t, err)
	for _, a := range all {
		if a.ID == "AL-001" {
			alert = a
		}
	}
	require.Equal(t, backend.AlertActive, alert.Status)
	router.NavigateToAlertWorkflow(&alert)

	var notices []string
	v, _ := New(100, 30, store.Snapshot(), view.Deps{
		Router:   router,
		Resolver: nav.NewResolver(store),
		Signals:  signals,
		Backend:  svc,
		Notify:   func(s string) { notices = append(notices, s) },
	})
	return v.(*Model), store, &notices
}

// collect runs cmd and the batches it returns and keeps the messages of
// type T.
func collect[T any](cmd tea.Cmd) []T {
	if cmd == nil {
		return nil
	}
	var out []T
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect[T](c)...)
		}
	case T:
		out = append(out, msg)
	}
	return out
}

func TestAcknowledgeRefreshesBeforeReturning(t *testing.T) {
	filter := nav.AlertFilter{Category: "battery", Status: "active"}
	m, store, notices := setup(t, filter)
	require.Equal(t, nav.ViewAlertWorkflow, store.CurrentView())

	changed := collect[changedMsg](m.confirmed(tagAcknowledge, true))
	require.Len(t, changed, 1)
	assert.True(t, m.Busy())
	assert.Equal(t, backend.AlertAcknowledged, changed[0].alert.Status)

	refresh := m.Update(changed[0])
	assert.Equal(t, nav.ViewAlertWorkflow, store.CurrentView(), "still waiting for the refresh")
	assert.True(t, m.Busy())
	assert.Equal(t, backend.AlertAcknowledged, m.Alert().Status)

	refreshed := collect[refreshedMsg](refresh)
	require.Len(t, refreshed, 1)
	assert.Equal(t, nav.ViewAlertWorkflow, store.CurrentView())

	m.Update(refreshed[0])
	assert.Equal(t, nav.ViewAlerts, store.CurrentView())
	assert.False(t, m.Busy())

	got, ok := nav.Get[nav.AlertFilter](store)
	require.True(t, ok)
	assert.Equal(t, filter, got)
	require.Len(t, *notices, 1)
	assert.Contains(t, (*notices)[0], "AL-001 acknowledged")
}

func TestDeclinedOrBusyConfirmDoesNothing(t *testing.T) {
	m, store, _ := setup(t, nav.AlertFilter{})

	assert.Nil(t, m.confirmed(tagResolve, false))
	assert.False(t, m.Busy())

	require.NotNil(t, m.confirmed(tagResolve, true))
	assert.Nil(t, m.confirmed(tagResolve, true), "one change at a time")
	assert.Equal(t, nav.ViewAlertWorkflow, store.CurrentView())
}

func TestErrorClearsBusy(t *testing.T) {
	m, store, _ := setup(t, nav.AlertFilter{})

	m.confirmed(tagAcknowledge, true)
	require.True(t, m.Busy())

	m.Update(view.ErrorMsg{Op: "ack AL-001", Err: backend.ErrNotFound})
	assert.False(t, m.Busy())
	assert.Equal(t, nav.ViewAlertWorkflow, store.CurrentView())
}

func TestOpenAssetKeepsWorkflowAsWayBack(t *testing.T) {
	m, store, _ := setup(t, nav.AlertFilter{})

	assets := collect[assetMsg](m.actions()[2].Run())
	require.Len(t, assets, 1)
	m.Update(assets[0])
	require.Equal(t, nav.ViewAssetDetails, store.CurrentView())

	sel, ok := nav.Get[nav.AssetSelection](store)
	require.True(t, ok)
	assert.Equal(t, nav.ViewAlertWorkflow, sel.From)
	assert.Equal(t, nav.ViewAlertWorkflow, nav.NewResolver(store).BackFromAssetDetails())
}
