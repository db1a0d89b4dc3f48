package command

import (
	"assetops/args"
	"assetops/nav"
	"assetops/registry"

	tea "github.com/charmbracelet/bubbletea"
)

type Help struct{}

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all available commands" }

func (Help) Execute(ctx registry.Context, _ args.Args) (tea.Cmd, error) {
	ctx.Router.HandleViewChange(nav.ViewHelp)
	return nil, nil
}

type Back struct{}

func (Back) Name() string        { return "back" }
func (Back) Description() string { return "Return to the parent screen" }

func (Back) Execute(ctx registry.Context, _ args.Args) (tea.Cmd, error) {
	ctx.Resolver.Back()
	return nil, nil
}

type Quit struct{}

func (Quit) Name() string        { return "quit" }
func (Quit) Description() string { return "Exit assetops" }

func (Quit) Execute(registry.Context, args.Args) (tea.Cmd, error) {
	return tea.Quit, nil
}

func init() {
	registerWithAliases(Help{}, "h")
	registry.Register(Back{})
	registerWithAliases(Quit{}, "q", "exit")
}
