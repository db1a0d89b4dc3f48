// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package pagesview holds the read-only pages: reports, settings, alert
// configuration and vehicle pairing.
package pagesview

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/vehicles"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

// Report is the fleet utilisation summary.
type Report struct {
	ByType        map[string]int
	BySite        map[string]int
	ComplianceDue []backend.ComplianceRecord
	Overdue       int
}

// BuildReport counts assets per type and site and lists compliance
// records due before horizon.
func BuildReport(assets []backend.Asset, records []backend.ComplianceRecord, now time.Time, horizon time.Duration) Report {
	r := Report{ByType: map[string]int{}, BySite: map[string]int{}}
	for _, a := range assets {
		r.ByType[a.Type]++
		r.BySite[a.SiteID]++
	}
	for _, c := range records {
		if c.Passed || c.Due.IsZero() {
			continue
		}
		if c.Due.Before(now) {
			r.Overdue++
		}
		if c.Due.Before(now.Add(horizon)) {
			r.ComplianceDue = append(r.ComplianceDue, c)
		}
	}
	slices.SortFunc(r.ComplianceDue, func(a, b backend.ComplianceRecord) int { return a.Due.Compare(b.Due) })
	return r
}

func renderCounts(p *message.Printer, b *strings.Builder, title string, counts map[string]int) {
	b.WriteString(title + "\n")
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		label := k
		if label == "" {
			label = "(none)"
		}
		b.WriteString(p.Sprintf("  %-16s %6d\n", label, counts[k]))
	}
	b.WriteString("\n")
}

func NewReports(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	svc := deps.Backend
	p := message.NewPrinter(deps.Config.Language())
	m := detail.New(width, height, detail.Config{
		ID:    nav.ViewReports,
		Title: "Reports",
		Load: detail.Content(nav.ViewReports, "build report", func(ctx context.Context) (Report, error) {
			var (
				assets  []backend.Asset
				records []backend.ComplianceRecord
			)
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				assets, err = svc.ListAssets(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				records, err = svc.ListCompliance(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return Report{}, err
			}
			return BuildReport(assets, records, time.Now(), 30*24*time.Hour), nil
		}, func(r Report) string {
			var b strings.Builder
			renderCounts(p, &b, "Assets by type", r.ByType)
			renderCounts(p, &b, "Assets by site", r.BySite)
			b.WriteString(p.Sprintf("Compliance due within 30 days (%d overdue)\n", r.Overdue))
			for _, c := range r.ComplianceDue {
				fmt.Fprintf(&b, "  %-8s %-8s %-14s %s\n", c.ID, c.AssetID, c.Kind, view.FormatDate(c.Due))
			}
			return strings.TrimRight(b.String(), "\n")
		}),
	})
	return m, m.Init()
}

func NewAlertConfiguration(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	rules := deps.Config.Alerts
	m := detail.New(width, height, detail.Config{
		ID:    nav.ViewAlertConfiguration,
		Title: "Alert Configuration",
		Actions: []detail.Action{
			{Key: "enter", Desc: "active alerts", Run: func() tea.Cmd {
				deps.Router.NavigateToAlerts(&nav.AlertFilter{Status: string(backend.AlertActive)})
				return nil
			}},
		},
	})
	var b strings.Builder
	fmt.Fprintf(&b, "Low battery below  %d%%\n\n", rules.LowBattery)
	b.WriteString("Categories\n")
	for _, c := range rules.Categories {
		fmt.Fprintf(&b, "  %s\n", c)
	}
	m.SetBody(strings.TrimRight(b.String(), "\n"))
	return m, nil
}

// Pairing is one vehicle with the assets it carries.
type Pairing struct {
	Vehicle backend.Vehicle
	Assets  []backend.Asset
}

// Pairings joins vehicles with assets and returns the assets no vehicle
// carries.
func Pairings(vehicles []backend.Vehicle, assets []backend.Asset) ([]Pairing, []backend.Asset) {
	byID := make(map[string]backend.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	paired := map[string]bool{}
	out := make([]Pairing, 0, len(vehicles))
	for _, v := range vehicles {
		p := Pairing{Vehicle: v}
		for _, id := range v.PairedAssets {
			if a, ok := byID[id]; ok {
				p.Assets = append(p.Assets, a)
				paired[id] = true
			}
		}
		out = append(out, p)
	}
	var free []backend.Asset
	for _, a := range assets {
		if !paired[a.ID] {
			free = append(free, a)
		}
	}
	return out, free
}

type pairingsMsg struct {
	pairings []Pairing
	free     []backend.Asset
}

type pairingPage struct {
	*detail.Model
	pairings []Pairing
	free     []backend.Asset
	cursor   int
}

func NewVehiclePairing(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	svc := deps.Backend
	m := &pairingPage{}
	m.Model = detail.New(width, height, detail.Config{
		ID:    nav.ViewVehiclePairing,
		Title: "Vehicle Pairing",
		Load: view.Request("load pairings", func(ctx context.Context) (pairingsMsg, error) {
			var (
				vs []backend.Vehicle
				as []backend.Asset
			)
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				vs, err = svc.ListVehicles(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				as, err = svc.ListAssets(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return pairingsMsg{}, err
			}
			p, free := Pairings(vs, as)
			return pairingsMsg{pairings: p, free: free}, nil
		}, func(msg pairingsMsg) tea.Msg { return msg }),
		Actions: []detail.Action{
			{Key: "enter", Desc: "edit pairing", Run: func() tea.Cmd {
				if m.cursor < len(m.pairings) {
					deps.Router.NavigateToEditVehicle(vehiclesview.EditRequest(m.pairings[m.cursor].Vehicle.ID, deps))
				}
				return nil
			}},
		},
	})
	return m, m.Init()
}

func (m *pairingPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pairingsMsg:
		m.pairings, m.free = msg.pairings, msg.free
		m.render()
		m.StopLoading()
		return nil
	case tea.KeyMsg:
		if m.HasActiveDialog() {
			break
		}
		switch msg.String() {
		case "j", "down":
			m.cursor = min(m.cursor+1, max(len(m.pairings)-1, 0))
			m.render()
			return nil
		case "k", "up":
			m.cursor = max(m.cursor-1, 0)
			m.render()
			return nil
		}
	}
	return m.Model.Update(msg)
}

func (m *pairingPage) render() {
	var b strings.Builder
	for i, p := range m.pairings {
		marker := "  "
		if i == m.cursor {
			marker = "▶ "
		}
		names := make([]string, 0, len(p.Assets))
		for _, a := range p.Assets {
			names = append(names, a.ID)
		}
		fmt.Fprintf(&b, "%s%-8s %-18s %-10s %s\n", marker, p.Vehicle.ID, p.Vehicle.Name, p.Vehicle.Plate, strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "\nUnpaired assets (%d)\n", len(m.free))
	for _, a := range m.free {
		fmt.Fprintf(&b, "  %-8s %s\n", a.ID, a.Name)
	}
	m.SetContent(strings.TrimRight(b.String(), "\n"))
}
