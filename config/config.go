// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"assetops/nav"
)

type Config struct {
	// StartView is the screen shown at launch. It must not need context.
	StartView string `yaml:"start_view"`
	// DefaultSiteTab is the tab site-details opens on.
	DefaultSiteTab string `yaml:"default_site_tab"`

	Backend BackendConfig `yaml:"backend"`
	UI      UIConfig      `yaml:"ui"`
	Alerts  AlertRules    `yaml:"alerts"`
	Logging LoggingConfig `yaml:"logging"`
}

type BackendConfig struct {
	// Latency is added to every simulated backend call, e.g. "250ms".
	Latency string `yaml:"latency"`
	Seed    bool   `yaml:"seed"`
}

type UIConfig struct {
	RefreshInterval string `yaml:"refresh_interval"`
	Locale          string `yaml:"locale"`
	BreadcrumbDepth int    `yaml:"breadcrumb_depth"`
}

// AlertRules decide which assets the dashboard flags.
type AlertRules struct {
	// LowBattery is the battery percentage below which an asset needs
	// attention.
	LowBattery int `yaml:"low_battery"`
	// Categories lists the alert categories shown on the alerts screen.
	Categories []string `yaml:"categories"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		StartView:      string(nav.ViewDashboard),
		DefaultSiteTab: string(nav.SiteTabOverview),
		Backend: BackendConfig{
			Latency: "150ms",
			Seed:    true,
		},
		UI: UIConfig{
			RefreshInterval: "5s",
			Locale:          "en",
			BreadcrumbDepth: 6,
		},
		Alerts: AlertRules{
			LowBattery: 20,
			Categories: []string{"battery", "geofence", "maintenance", "compliance", "offline"},
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/assetops/config.yaml or its home
// directory equivalent.
func DefaultPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "assetops", "config.yaml")
	}
	return "assetops.yaml"
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ASSETOPS_START_VIEW"); v != "" {
		c.StartView = v
	}
	if v := os.Getenv("ASSETOPS_LATENCY"); v != "" {
		c.Backend.Latency = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" && c.Logging.Level == "" {
		c.Logging.Level = v
	}
}

// Validate checks the values the program cannot start without.
func (c *Config) Validate() error {
	view, err := nav.ParseViewID(c.StartView)
	if err != nil {
		return fmt.Errorf("start_view: %w", err)
	}
	if !view.TopLevel() && view != nav.ViewDashboard {
		return fmt.Errorf("start_view: %s needs context and cannot be the first screen", view)
	}
	if !nav.SiteTab(c.DefaultSiteTab).Valid() {
		return fmt.Errorf("default_site_tab: unknown tab %q (valid: %v)", c.DefaultSiteTab, nav.SiteTabs)
	}
	if _, err := time.ParseDuration(c.Backend.Latency); err != nil {
		return fmt.Errorf("backend.latency: %w", err)
	}
	if _, err := time.ParseDuration(c.UI.RefreshInterval); err != nil {
		return fmt.Errorf("ui.refresh_interval: %w", err)
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("ui.locale: %w", err)
	}
	if c.Alerts.LowBattery < 0 || c.Alerts.LowBattery > 100 {
		return fmt.Errorf("alerts.low_battery: %d is not a percentage", c.Alerts.LowBattery)
	}
	return nil
}

func (c *Config) StartViewID() nav.ViewID {
	v, err := nav.ParseViewID(c.StartView)
	if err != nil {
		return nav.ViewDashboard
	}
	return v
}

func (c *Config) SiteTab() nav.SiteTab {
	if t := nav.SiteTab(c.DefaultSiteTab); t.Valid() {
		return t
	}
	return nav.SiteTabOverview
}

func (c *Config) LatencyDuration() time.Duration {
	d, err := time.ParseDuration(c.Backend.Latency)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func (c *Config) RefreshEvery() time.Duration {
	d, err := time.ParseDuration(c.UI.RefreshInterval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
