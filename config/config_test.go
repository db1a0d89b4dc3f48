package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"assetops/nav"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ASSETOPS_START_VIEW", "ASSETOPS_LATENCY", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, nav.ViewDashboard, cfg.StartViewID())
	assert.Equal(t, nav.SiteTabOverview, cfg.SiteTab())
	assert.Equal(t, 150*time.Millisecond, cfg.LatencyDuration())
	assert.Equal(t, language.English, cfg.Language())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
start_view: alerts
default_site_tab: geofences
backend:
  latency: 0s
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, nav.ViewAlerts, cfg.StartViewID())
	assert.Equal(t, nav.SiteTabGeofences, cfg.SiteTab())
	assert.Equal(t, time.Duration(0), cfg.LatencyDuration())
	assert.True(t, cfg.Backend.Seed, "unset keys keep their defaults")
	assert.Equal(t, "5s", cfg.UI.RefreshInterval)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_view: [oops"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASSETOPS_START_VIEW", "map")
	t.Setenv("ASSETOPS_LATENCY", "1s")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, nav.ViewMap, cfg.StartViewID())
	assert.Equal(t, time.Second, cfg.LatencyDuration())
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.StartView = "inventory"
	cfg.UI.BreadcrumbDepth = 3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"unknown view", func(c *Config) { c.StartView = "bridge" }, nav.ErrUnknownView},
		{"view needing context", func(c *Config) { c.StartView = "check-in-out" }, nil},
		{"bad tab", func(c *Config) { c.DefaultSiteTab = "weather" }, nil},
		{"bad latency", func(c *Config) { c.Backend.Latency = "soon" }, nil},
		{"bad refresh", func(c *Config) { c.UI.RefreshInterval = "often" }, nil},
		{"bad locale", func(c *Config) { c.UI.Locale = "!!" }, nil},
		{"battery below zero", func(c *Config) { c.Alerts.LowBattery = -1 }, nil},
		{"battery above 100", func(c *Config) { c.Alerts.LowBattery = 101 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}
