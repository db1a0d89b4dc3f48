package registry

import (
	"slices"
	"strings"

	"assetops/args"
	"assetops/nav"

	tea "github.com/charmbracelet/bubbletea"
)

// Context is what a command may act on. Commands run inside Update, so
// they navigate through the router directly.
type Context struct {
	Router   *nav.Router
	Resolver *nav.Resolver
	Signals  *nav.Signals
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx Context, args args.Args) (tea.Cmd, error)
}

var apiRegistry = map[string]Command{}

// Register a new command (called from the command packages' init).
func Register(cmd Command) {
	apiRegistry[cmd.Name()] = cmd
}

// Get returns a command by name
func Get(name string) (Command, bool) {
	cmd, ok := apiRegistry[name]
	return cmd, ok
}

// All returns every registered command sorted by name.
func All() []Command {
	cmds := make([]Command, 0, len(apiRegistry))
	for _, c := range apiRegistry {
		cmds = append(cmds, c)
	}
	slices.SortFunc(cmds, func(a, b Command) int { return strings.Compare(a.Name(), b.Name()) })
	return cmds
}

// Suggest returns all command names that start with a given prefix, sorted.
func Suggest(prefix string) []string {
	prefix = strings.TrimSpace(prefix)
	var out []string
	for name := range apiRegistry {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
