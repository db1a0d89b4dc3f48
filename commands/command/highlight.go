package command

import (
	"errors"

	"assetops/args"
	"assetops/registry"

	tea "github.com/charmbracelet/bubbletea"
)

type Highlight struct{}

func (Highlight) Name() string        { return "highlight" }
func (Highlight) Description() string { return "Show an asset on the map: highlight <assetID>" }

func (Highlight) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	id := a.First()
	if id == "" {
		return nil, errors.New("highlight: asset id required")
	}
	ctx.Router.ShowOnMap(id)
	return nil, nil
}

type ClearHighlight struct{}

func (ClearHighlight) Name() string        { return "clear-highlight" }
func (ClearHighlight) Description() string { return "Remove the map highlight" }

func (ClearHighlight) Execute(ctx registry.Context, _ args.Args) (tea.Cmd, error) {
	ctx.Signals.ClearHighlight()
	return nil, nil
}

func init() {
	registerWithAliases(Highlight{}, "hl")
	registry.Register(ClearHighlight{})
}
