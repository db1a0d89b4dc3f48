// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package sitedetailsview

import (
	"context"
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/geofences"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

const ViewName = nav.ViewSiteDetails

// Data is everything located at one site.
type Data struct {
	Assets      []backend.Asset
	Geofences   []backend.Geofence
	Alerts      []backend.Alert
	Maintenance []backend.MaintenanceTask
}

type loadedMsg struct {
	siteID string
	data   Data
}

type Model struct {
	*detail.Model
	deps   view.Deps
	site   backend.Site
	tab    nav.SiteTab
	data   Data
	cursor int
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.SiteSelection](snap)
	tab, ok := nav.Get[nav.SiteTabSelection](snap)
	m := &Model{deps: deps, site: sel.Site, tab: tab.Tab}
	if !ok || !m.tab.Valid() {
		m.tab = nav.SiteTabOverview
	}
	m.Model = detail.New(width, height, detail.Config{
		ID:      ViewName,
		Title:   "Site",
		Load:    m.load(),
		Actions: m.actions(),
	})
	m.render()
	return m, m.Init()
}

func (m *Model) Tab() nav.SiteTab { return m.tab }

// Load reads the site's assets first, then everything hanging off them.
func Load(ctx context.Context, svc backend.Service, siteID string) (Data, error) {
	var (
		d      Data
		assets []backend.Asset
		alerts []backend.Alert
		tasks  []backend.MaintenanceTask
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = svc.ListAssets(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		d.Geofences, err = svc.ListGeofences(ctx, siteID)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = svc.ListAlerts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = svc.ListMaintenance(ctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	here := map[string]bool{}
	for _, a := range assets {
		if a.SiteID == siteID {
			d.Assets = append(d.Assets, a)
			here[a.ID] = true
		}
	}
	for _, a := range alerts {
		if here[a.AssetID] && a.Status != backend.AlertResolved {
			d.Alerts = append(d.Alerts, a)
		}
	}
	for _, t := range tasks {
		if here[t.AssetID] {
			d.Maintenance = append(d.Maintenance, t)
		}
	}
	return d, nil
}

func (m *Model) load() tea.Cmd {
	id, svc := m.site.ID, m.deps.Backend
	return view.Request("load site "+id, func(ctx context.Context) (Data, error) {
		return Load(ctx, svc, id)
	}, func(d Data) tea.Msg { return loadedMsg{siteID: id, data: d} })
}

// rows is how many selectable lines the current tab has.
func (m *Model) rows() int {
	switch m.tab {
	case nav.SiteTabAssets:
		return len(m.data.Assets)
	case nav.SiteTabGeofences:
		return len(m.data.Geofences)
	case nav.SiteTabAlerts:
		return len(m.data.Alerts)
	}
	return 0
}

func (m *Model) actions() []detail.Action {
	r := m.deps.Router
	return []detail.Action{
		{Key: "tab", Desc: "next tab", Run: func() tea.Cmd {
			r.SelectSiteTab(m.tab.Next())
			return nil
		}},
		{Key: "enter", Desc: "open", Run: func() tea.Cmd {
			m.open()
			return nil
		}},
		{Key: "n", Desc: "new geofence", Run: func() tea.Cmd {
			r.NavigateToCreateGeofence(&nav.GeofencePrefill{
				Name:         m.site.Name + " perimeter",
				SiteID:       m.site.ID,
				Center:       m.site.Location,
				RadiusMeters: 250,
			}, m.tab)
			return nil
		}},
		{Key: "r", Desc: "refresh", Run: func() tea.Cmd { return m.Reload() }},
	}
}

func (m *Model) open() {
	r := m.deps.Router
	if m.cursor >= m.rows() {
		return
	}
	switch m.tab {
	case nav.SiteTabAssets:
		a := m.data.Assets[m.cursor]
		r.NavigateToAssetDetails(&a)
	case nav.SiteTabGeofences:
		g := m.data.Geofences[m.cursor]
		r.NavigateToEditGeofence(g.ID, geofencesview.Prefill(g), m.tab)
	case nav.SiteTabAlerts:
		a := m.data.Alerts[m.cursor]
		r.NavigateToAlertWorkflow(&a)
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.siteID != m.site.ID {
			return nil
		}
		m.data = msg.data
		m.render()
		m.StopLoading()
		return nil

	case view.ContextChangedMsg:
		tab, ok := nav.Get[nav.SiteTabSelection](msg.Snapshot)
		if ok && tab.Tab != m.tab {
			m.tab = tab.Tab
			m.cursor = 0
			m.render()
		}
		if sel, ok := nav.Get[nav.SiteSelection](msg.Snapshot); ok && sel.Site.ID != m.site.ID {
			m.site = sel.Site
			m.data = Data{}
			m.SetLoad(m.load())
			m.render()
			return m.Reload()
		}
		return nil

	case tea.KeyMsg:
		if m.HasActiveDialog() {
			break
		}
		switch msg.String() {
		case "j", "down":
			if m.cursor < m.rows()-1 {
				m.cursor++
				m.render()
			}
			return nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.render()
			}
			return nil
		case "1", "2", "3", "4", "5":
			i := int(msg.String()[0] - '1')
			if i < len(nav.SiteTabs) {
				m.deps.Router.SelectSiteTab(nav.SiteTabs[i])
			}
			return nil
		}
	}
	return m.Model.Update(msg)
}

var (
	activeTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("81")).Bold(true).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))
)

func (m *Model) tabBar() string {
	parts := make([]string, 0, len(nav.SiteTabs))
	for i, t := range nav.SiteTabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if t == m.tab {
			parts = append(parts, activeTab.Render(label))
		} else {
			parts = append(parts, inactiveTab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) line(b *strings.Builder, i int, s string) {
	if i == m.cursor {
		s = selStyle.Render(s)
	}
	b.WriteString(s + "\n")
}

func (m *Model) render() {
	m.SetHeader(view.AssetLabel(m.site.ID, m.site.Name) + "\n" + m.tabBar())

	var b strings.Builder
	d := m.data
	switch m.tab {
	case nav.SiteTabOverview:
		fmt.Fprintf(&b, "Address   %s\n", m.site.Address)
		fmt.Fprintf(&b, "Manager   %s\n", m.site.Manager)
		fmt.Fprintf(&b, "Location  %s\n\n", view.FormatLocation(m.site.Location))
		fmt.Fprintf(&b, "%d assets · %d geofences · %d open alerts · %d tasks\n",
			len(d.Assets), len(d.Geofences), len(d.Alerts), len(d.Maintenance))
	case nav.SiteTabAssets:
		for i, a := range d.Assets {
			m.line(&b, i, fmt.Sprintf("%-8s %-18s %-12s %3d%%", a.ID, a.Name, a.Status, a.Battery))
		}
	case nav.SiteTabGeofences:
		for i, g := range d.Geofences {
			m.line(&b, i, fmt.Sprintf("%-8s %-20s r=%dm %s", g.ID, g.Name, g.RadiusMeters, view.FormatLocation(g.Center)))
		}
	case nav.SiteTabAlerts:
		for i, a := range d.Alerts {
			m.line(&b, i, fmt.Sprintf("%-8s %-8s %-9s %s", a.ID, a.AssetID, a.Severity, a.Message))
		}
	case nav.SiteTabMaintenance:
		for _, t := range d.Maintenance {
			fmt.Fprintf(&b, "%-8s %-8s %-12s %s\n", t.ID, t.AssetID, t.Status, t.Title)
		}
	}
	if b.Len() == 0 {
		b.WriteString("nothing here\n")
	}
	m.SetContent(strings.TrimRight(b.String(), "\n"))
}
