// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"assetops/args"
	"assetops/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// aliasCommand is a simple wrapper to provide aliases for commands
type aliasCommand struct {
	name   string
	target registry.Command
}

func (a aliasCommand) Name() string        { return a.name }
func (a aliasCommand) Description() string { return a.target.Description() }
func (a aliasCommand) Execute(ctx registry.Context, args args.Args) (tea.Cmd, error) {
	return a.target.Execute(ctx, args)
}

func registerWithAliases(cmd registry.Command, aliases ...string) {
	registry.Register(cmd)
	for _, name := range aliases {
		registry.Register(aliasCommand{name: name, target: cmd})
	}
}
