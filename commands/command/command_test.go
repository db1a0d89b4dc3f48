package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetops/args"
	"assetops/nav"
	"assetops/registry"
)

func newContext(start nav.ViewID) (registry.Context, *nav.Store) {
	store := nav.NewStore(start)
	signals := nav.NewSignals()
	return registry.Context{
		Router:   nav.NewRouter(store, signals),
		Resolver: nav.NewResolver(store),
		Signals:  signals,
	}, store
}

func flags(kv ...string) args.Args {
	a := args.Args{Flags: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		a.Flags[kv[i]] = kv[i+1]
	}
	return a
}

func TestAlertsPresetsFilter(t *testing.T) {
	ctx, store := newContext(nav.ViewDashboard)

	_, err := Alerts{}.Execute(ctx, flags("severity", "high", "status", "active"))
	require.NoError(t, err)
	require.Equal(t, nav.ViewAlerts, store.CurrentView())

	f, ok := nav.Get[nav.AlertFilter](store)
	require.True(t, ok)
	assert.Equal(t, nav.AlertFilter{Severity: "high", Status: "active"}, f)
}

func TestAlertsPositionalsSearch(t *testing.T) {
	ctx, store := newContext(nav.ViewDashboard)

	_, err := Alerts{}.Execute(ctx, args.Args{Positionals: []string{"low", "battery"}})
	require.NoError(t, err)
	f, ok := nav.Get[nav.AlertFilter](store)
	require.True(t, ok)
	assert.Equal(t, "low battery", f.Search)
}

func TestAlertsWithoutFlagsClearsFilter(t *testing.T) {
	ctx, store := newContext(nav.ViewDashboard)
	_, err := Alerts{}.Execute(ctx, flags("category", "battery"))
	require.NoError(t, err)

	_, err = Alerts{}.Execute(ctx, args.Args{})
	require.NoError(t, err)
	_, ok := nav.Get[nav.AlertFilter](store)
	assert.False(t, ok)
}

func TestAlertsRejectsUnknownFlags(t *testing.T) {
	ctx, store := newContext(nav.ViewDashboard)
	_, err := Alerts{}.Execute(ctx, flags("colour", "red"))
	require.EqualError(t, err, "alerts: unknown flag --colour")
	assert.Equal(t, nav.ViewDashboard, store.CurrentView())
}

func TestHighlight(t *testing.T) {
	ctx, store := newContext(nav.ViewInventory)

	_, err := Highlight{}.Execute(ctx, args.Args{})
	require.Error(t, err)

	_, err = Highlight{}.Execute(ctx, args.Args{Positionals: []string{"AT-003"}})
	require.NoError(t, err)
	assert.Equal(t, nav.ViewMap, store.CurrentView())
	id, ok := ctx.Signals.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "AT-003", id)

	_, err = ClearHighlight{}.Execute(ctx, args.Args{})
	require.NoError(t, err)
	_, ok = ctx.Signals.Highlighted()
	assert.False(t, ok)
}

func TestViewCommands(t *testing.T) {
	ctx, store := newContext(nav.ViewDashboard)

	cmd, ok := registry.Get("sites")
	require.True(t, ok)
	_, err := cmd.Execute(ctx, args.Args{})
	require.NoError(t, err)
	assert.Equal(t, nav.ViewSites, store.CurrentView())

	_, err = cmd.Execute(ctx, args.Args{Positionals: []string{"extra"}})
	require.Error(t, err)

	// Views that need a selection are reached through their lists only.
	_, ok = registry.Get(string(nav.ViewAssetDetails))
	assert.False(t, ok)

	home, ok := registry.Get("home")
	require.True(t, ok)
	_, err = home.Execute(ctx, args.Args{})
	require.NoError(t, err)
	assert.Equal(t, nav.ViewDashboard, store.CurrentView())
}

func TestStartCommandsOpenFreshRequests(t *testing.T) {
	ctx, store := newContext(nav.ViewDashboard)

	cmd, ok := registry.Get(string(nav.ViewReportIssue))
	require.True(t, ok)
	_, err := cmd.Execute(ctx, args.Args{})
	require.NoError(t, err)
	assert.Equal(t, nav.ViewReportIssue, store.CurrentView())
	_, ok = nav.Get[nav.IssueRequest](store)
	assert.True(t, ok)
}
