package mapview

import (
	"context"
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Violation is an asset outside a fence of its own site.
type Violation struct {
	Asset    backend.Asset
	Fence    backend.Geofence
	Distance float64
}

// Violations checks every asset against the exit-alerting fences of its
// site.
func Violations(assets []backend.Asset, fences []backend.Geofence) []Violation {
	bySite := map[string][]backend.Geofence{}
	for _, g := range fences {
		if g.AlertOnExit {
			bySite[g.SiteID] = append(bySite[g.SiteID], g)
		}
	}
	var out []Violation
	for _, a := range assets {
		for _, g := range bySite[a.SiteID] {
			if d := DistanceMeters(a.Location, g.Center); d > float64(g.RadiusMeters) {
				out = append(out, Violation{Asset: a, Fence: g, Distance: d})
			}
		}
	}
	return out
}

type violationsMsg struct {
	assets     []backend.Asset
	violations []Violation
}

type violationMap struct {
	*detail.Model
	deps       view.Deps
	violations []Violation
	cursor     int
	plot       string
}

func NewViolations(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := &violationMap{deps: deps}
	svc := deps.Backend
	m.Model = detail.New(width, height, detail.Config{
		ID:    nav.ViewViolationMap,
		Title: "Geofence Violations",
		Load: view.Request("check geofences", func(ctx context.Context) (violationsMsg, error) {
			var (
				assets []backend.Asset
				fences []backend.Geofence
			)
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				assets, err = svc.ListAssets(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				fences, err = svc.ListGeofences(ctx, "")
				return err
			})
			if err := g.Wait(); err != nil {
				return violationsMsg{}, err
			}
			return violationsMsg{assets: assets, violations: Violations(assets, fences)}, nil
		}, func(v violationsMsg) tea.Msg { return v }),
		Actions: []detail.Action{
			{Key: "enter", Desc: "show on map", Run: func() tea.Cmd {
				if m.cursor < len(m.violations) {
					deps.Router.ShowOnMap(m.violations[m.cursor].Asset.ID)
				}
				return nil
			}},
			{Key: "r", Desc: "refresh", Run: func() tea.Cmd { return m.Reload() }},
		},
	})
	return m, m.Init()
}

func (m *violationMap) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case violationsMsg:
		m.violations = msg.violations
		m.cursor = 0
		m.render(msg.assets)
		m.StopLoading()
		return nil
	case tea.KeyMsg:
		if m.HasActiveDialog() {
			break
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.violations)-1 {
				m.cursor++
			}
			m.render(nil)
			return nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.render(nil)
			return nil
		}
	}
	return m.Model.Update(msg)
}

func (m *violationMap) render(assets []backend.Asset) {
	m.SetHeader(fmt.Sprintf("%d assets outside their site fences", len(m.violations)))
	var b strings.Builder
	if assets != nil {
		markers := make([]Marker, 0, len(assets))
		for _, a := range assets {
			markers = append(markers, Marker{At: a.Location, Rune: '·'})
		}
		for _, v := range m.violations {
			markers = append(markers, Marker{At: v.Fence.Center, Rune: '+'}, Marker{At: v.Asset.Location, Rune: '!'})
		}
		b.WriteString(strings.Join(Plot(markers, plotCols, plotRows/2), "\n") + "\n\n")
		m.plot = b.String()
	} else {
		b.WriteString(m.plot)
	}
	for i, v := range m.violations {
		line := fmt.Sprintf("%-8s %-18s %-18s %6.0fm > %dm", v.Asset.ID, v.Asset.Name, v.Fence.Name, v.Distance, v.Fence.RadiusMeters)
		if i == m.cursor {
			line = highlightStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	m.SetContent(strings.TrimRight(b.String(), "\n"))
}
