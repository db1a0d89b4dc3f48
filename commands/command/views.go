package command

import (
	"fmt"

	"assetops/args"
	"assetops/nav"
	"assetops/registry"

	tea "github.com/charmbracelet/bubbletea"
)

// Views that render without any context and may be opened by name.
var standalone = map[nav.ViewID]bool{
	nav.ViewDashboard:          true,
	nav.ViewCreateSite:         true,
	nav.ViewCreateAsset:        true,
	nav.ViewLoadAsset:          true,
	nav.ViewFindAsset:          true,
	nav.ViewCreateVehicle:      true,
	nav.ViewVehiclePairing:     true,
	nav.ViewCreateJob:          true,
	nav.ViewAlertConfiguration: true,
	nav.ViewViolationMap:       true,
}

// viewCommand switches to a payload-free view.
type viewCommand struct {
	id nav.ViewID
}

func (c viewCommand) Name() string { return string(c.id) }
func (c viewCommand) Description() string {
	return fmt.Sprintf("Open %s", c.id.Title())
}

func (c viewCommand) Execute(ctx registry.Context, a args.Args) (tea.Cmd, error) {
	if len(a.Positionals) > 0 {
		return nil, fmt.Errorf("%s takes no arguments", c.id)
	}
	ctx.Router.HandleViewChange(c.id)
	return nil, nil
}

// startCommand opens a creation screen with a fresh request, so stale
// provenance from an earlier trip is not reused.
type startCommand struct {
	id    nav.ViewID
	desc  string
	start func(r *nav.Router)
}

func (c startCommand) Name() string        { return string(c.id) }
func (c startCommand) Description() string { return c.desc }

func (c startCommand) Execute(ctx registry.Context, _ args.Args) (tea.Cmd, error) {
	c.start(ctx.Router)
	return nil, nil
}

func init() {
	for _, id := range nav.Views() {
		if id == nav.ViewAlerts || id == nav.ViewHelp {
			continue
		}
		if id.TopLevel() || standalone[id] {
			registry.Register(viewCommand{id: id})
		}
	}

	registry.Register(startCommand{
		id:   nav.ViewCreateGeofence,
		desc: "Draw a new geofence",
		start: func(r *nav.Router) {
			r.NavigateToCreateGeofence(nil, "")
		},
	})
	registry.Register(startCommand{
		id:   nav.ViewCreateMaintenance,
		desc: "Schedule maintenance",
		start: func(r *nav.Router) {
			r.NavigateToCreateMaintenance(&nav.MaintenanceRequest{})
		},
	})
	registry.Register(startCommand{
		id:   nav.ViewReportIssue,
		desc: "Report an issue",
		start: func(r *nav.Router) {
			r.NavigateToReportIssue(&nav.IssueRequest{})
		},
	})
	registry.Register(startCommand{
		id:   nav.ViewCreateCompliance,
		desc: "Record a compliance item",
		start: func(r *nav.Router) {
			r.NavigateToCreateCompliance(&nav.ComplianceCreation{})
		},
	})

	dash, _ := registry.Get(string(nav.ViewDashboard))
	registry.Register(aliasCommand{name: "home", target: dash})
	inv, _ := registry.Get(string(nav.ViewInventory))
	registry.Register(aliasCommand{name: "assets", target: inv})
	registry.Register(aliasCommand{name: "inv", target: inv})
}
