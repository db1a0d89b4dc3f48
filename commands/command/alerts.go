package command

import (
	"fmt"
	"slices"
	"strings"

	"assetops/args"
	"assetops/nav"
	"assetops/registry"

	tea "github.com/charmbracelet/bubbletea"
)

var alertFlags = []string{"category", "severity", "status", "search"}

// Alerts opens the alert list, optionally preset with a filter. Without
// flags the filter is cleared.
type Alerts struct{}

func (Alerts) Name() string { return "alerts" }
func (Alerts) Description() string {
	return "List alerts [--category= --severity= --status= --search=]"
}

func (Alerts) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	if unknown := a.Unknown(alertFlags...); len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("alerts: unknown flag --%s", strings.Join(unknown, ", --"))
	}
	f := nav.AlertFilter{
		Category: a.Get("category"),
		Severity: a.Get("severity"),
		Status:   a.Get("status"),
		Search:   strings.Join(a.Positionals, " "),
	}
	if s := a.Get("search"); s != "" {
		f.Search = s
	}
	if f.IsZero() {
		ctx.Router.NavigateToAlerts(nil)
		return nil, nil
	}
	ctx.Router.NavigateToAlerts(&f)
	return nil, nil
}

func init() {
	registerWithAliases(Alerts{}, "al")
}
