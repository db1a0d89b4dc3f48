package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetops/backend"
	"assetops/config"
	"assetops/nav"
	"assetops/views/commandinput"
	"assetops/views/fallback"
	sitedetailsview "assetops/views/sitedetails"
)

// nudge is an unrelated message that only makes the model sync.
type nudge struct{}

func newModel(t *testing.T) *Model {
	t.Helper()
	m := New(config.Default(), backend.NewMemory(0))
	t.Cleanup(m.Close)
	m.Init()
	require.Equal(t, nav.ViewDashboard, m.Store().CurrentView())
	require.NotNil(t, m.CurrentView())
	return m
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestEveryViewHasAScreen(t *testing.T) {
	assert.Empty(t, Unregistered())
}

func TestMissingContextShowsFallback(t *testing.T) {
	tests := []struct {
		view    nav.ViewID
		message string
		parent  nav.ViewID
	}{
		{nav.ViewAssetDetails, "No asset selected", nav.ViewInventory},
		{nav.ViewCheckInOut, "No check-in/out request selected", nav.ViewInventory},
		{nav.ViewEditMaintenance, "No maintenance task selected", nav.ViewMaintenance},
		{nav.ViewEditIssue, "No issue selected", nav.ViewIssues},
		{nav.ViewEditVehicle, "No vehicle selected", nav.ViewVehicles},
		{nav.ViewAlertWorkflow, "No alert selected", nav.ViewAlerts},
		{nav.ViewJobDetails, "No job selected", nav.ViewJobs},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			m := newModel(t)

			m.Router().HandleViewChange(tt.view)
			m.Update(nudge{})

			fb, ok := m.CurrentView().(*fallback.Model)
			require.True(t, ok, "got %T", m.CurrentView())
			assert.Equal(t, tt.message, fb.Message())
			assert.Contains(t, m.View(), tt.message)

			press(m, "enter")
			assert.Equal(t, tt.parent, m.Store().CurrentView())
			assert.Equal(t, string(tt.parent), m.CurrentView().Name())
		})
	}
}

func TestIncompleteCheckInOutShowsFallback(t *testing.T) {
	tests := []struct {
		name string
		req  *nav.CheckInOut
	}{
		{"no mode", &nav.CheckInOut{
			AssetID:    "AT-001",
			AssetName:  "Excavator",
			OnComplete: nav.NewCompletion(func(backend.AssetUpdate) {}),
		}},
		{"unknown mode", &nav.CheckInOut{
			AssetID:    "AT-001",
			Mode:       "borrow",
			OnComplete: nav.NewCompletion(func(backend.AssetUpdate) {}),
		}},
		{"nobody waiting", &nav.CheckInOut{AssetID: "AT-001", AssetName: "Excavator", Mode: nav.CheckOut}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)

			m.Router().NavigateToCheckInOut(tt.req)
			m.Update(nudge{})

			require.Equal(t, nav.ViewCheckInOut, m.Store().CurrentView())
			fb, ok := m.CurrentView().(*fallback.Model)
			require.True(t, ok, "got %T", m.CurrentView())
			assert.Equal(t, "No check-in/out request selected", fb.Message())

			press(m, "enter")
			assert.Equal(t, nav.ViewInventory, m.Store().CurrentView())
		})
	}
}

func TestEscGoesBackAndQQuitsOnDashboard(t *testing.T) {
	m := newModel(t)

	m.Router().HandleViewChange(nav.ViewSites)
	m.Update(nudge{})
	require.Equal(t, string(nav.ViewSites), m.CurrentView().Name())

	assert.Nil(t, press(m, "esc"))
	assert.Equal(t, nav.ViewDashboard, m.Store().CurrentView())
	assert.Equal(t, string(nav.ViewDashboard), m.CurrentView().Name())

	// esc on the dashboard is a no-op; q quits.
	press(m, "esc")
	assert.Equal(t, nav.ViewDashboard, m.Store().CurrentView())
	assert.NotNil(t, press(m, "q"))
}

func TestHelpKey(t *testing.T) {
	m := newModel(t)
	press(m, "?")
	assert.Equal(t, nav.ViewHelp, m.Store().CurrentView())
}

func TestCommandBar(t *testing.T) {
	m := newModel(t)

	press(m, ":")
	require.True(t, m.commandInput.Visible())

	// While the bar is open q is typed, not taken as quit.
	press(m, "q")
	assert.Equal(t, nav.ViewDashboard, m.Store().CurrentView())
	press(m, "esc")
	require.False(t, m.commandInput.Visible())

	m.Update(commandinput.SubmitMsg{Command: "sites"})
	assert.Equal(t, nav.ViewSites, m.Store().CurrentView())
	assert.Equal(t, string(nav.ViewSites), m.CurrentView().Name())

	m.Update(commandinput.SubmitMsg{Command: "launch rockets"})
	assert.True(t, m.commandInput.Visible())
	assert.Contains(t, m.commandInput.Error(), "unknown command")
	assert.Equal(t, nav.ViewSites, m.Store().CurrentView())
}

func TestSameViewCommitKeepsScreen(t *testing.T) {
	m := newModel(t)

	m.Router().NavigateToSiteDetails(&backend.Site{ID: "ST-001", Name: "North Yard"})
	m.Update(nudge{})
	screen, ok := m.CurrentView().(*sitedetailsview.Model)
	require.True(t, ok, "got %T", m.CurrentView())
	require.Equal(t, nav.SiteTabOverview, screen.Tab())

	m.Router().SelectSiteTab(nav.SiteTabAlerts)
	m.Update(nudge{})

	assert.Same(t, screen, m.CurrentView())
	assert.Equal(t, nav.SiteTabAlerts, screen.Tab())
}

func TestBreadcrumbFollowsMounts(t *testing.T) {
	m := newModel(t)

	m.Router().HandleViewChange(nav.ViewInventory)
	m.Update(nudge{})
	m.Router().HandleViewChange(nav.ViewMap)
	m.Update(nudge{})

	assert.Equal(t, []nav.ViewID{nav.ViewDashboard, nav.ViewInventory, nav.ViewMap}, m.trail.Views())
}

func TestNoticeExpires(t *testing.T) {
	m := newModel(t)
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return start }

	m.deps.Notifyf("asset %s checked out", "AT-002")
	require.Equal(t, "asset AT-002 checked out", m.Notice())

	m.Update(noticeTickMsg(start.Add(time.Second)))
	assert.NotEmpty(t, m.Notice())

	m.Update(noticeTickMsg(start.Add(noticeTTL)))
	assert.Empty(t, m.Notice())
}
