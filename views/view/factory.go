// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import (
	"fmt"

	"assetops/backend"
	"assetops/config"
	"assetops/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// Deps is what every screen may reach: the navigation controller, the
// backend and the loaded configuration.
type Deps struct {
	Router   *nav.Router
	Resolver *nav.Resolver
	Signals  *nav.Signals
	Backend  backend.Service
	Config   config.Config
	// Notify shows a short message in the status line. Completions use it
	// because the screen that started a trip is gone when they fire.
	Notify func(text string)
}

// Notifyf formats and forwards to Notify when one is set.
func (d Deps) Notifyf(format string, a ...any) {
	if d.Notify != nil {
		d.Notify(fmt.Sprintf(format, a...))
	}
}

// Factory builds the screen for a view from a snapshot of the navigation
// context taken at commit time.
type Factory func(width, height int, snap nav.Snapshot, deps Deps) (View, tea.Cmd)
