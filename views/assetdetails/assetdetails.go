// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package assetdetailsview

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"assetops/backend"
	"assetops/nav"
	opslog "assetops/utils/log"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

const ViewName = nav.ViewAssetDetails

func l() *opslog.Logger {
	return opslog.Component("asset-details")
}

// Related is everything attached to one asset.
type Related struct {
	Tasks      []backend.MaintenanceTask
	Alerts     []backend.Alert
	Compliance []backend.ComplianceRecord
}

type relatedMsg struct {
	assetID string
	related Related
}

type Model struct {
	*detail.Model
	deps    view.Deps
	asset   backend.Asset
	hash    uint64
	related Related
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.AssetSelection](snap)
	m := &Model{deps: deps}
	m.setAsset(sel.Asset)
	m.Model = detail.New(width, height, detail.Config{
		ID:      ViewName,
		Title:   "Asset",
		Load:    m.load(),
		Actions: m.actions(),
	})
	m.render()
	return m, m.Init()
}

// Asset is the asset currently shown.
func (m *Model) Asset() backend.Asset { return m.asset }

func (m *Model) setAsset(a backend.Asset) bool {
	h, err := backend.HashOf(a)
	if err != nil {
		l().Warnf("hash asset %s: %v", a.ID, err)
	}
	if h == m.hash && a.ID == m.asset.ID && err == nil {
		return false
	}
	m.asset = a
	m.hash = h
	return true
}

// LoadRelated reads tasks, alerts and compliance records of assetID.
func LoadRelated(ctx context.Context, svc backend.Service, assetID string) (Related, error) {
	var (
		r          Related
		alerts     []backend.Alert
		compliance []backend.ComplianceRecord
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		r.Tasks, err = svc.ListMaintenance(ctx, assetID)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = svc.ListAlerts(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		compliance, err = svc.ListCompliance(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Related{}, err
	}
	for _, a := range alerts {
		if a.AssetID == assetID && a.Status != backend.AlertResolved {
			r.Alerts = append(r.Alerts, a)
		}
	}
	for _, c := range compliance {
		if c.AssetID == assetID {
			r.Compliance = append(r.Compliance, c)
		}
	}
	return r, nil
}

func (m *Model) load() tea.Cmd {
	id, svc := m.asset.ID, m.deps.Backend
	return view.Request("load asset "+id, func(ctx context.Context) (Related, error) {
		return LoadRelated(ctx, svc, id)
	}, func(r Related) tea.Msg { return relatedMsg{assetID: id, related: r} })
}

// checkInOut builds the request for the check-in-out screen. The
// completion writes the changed fields back into the asset selection.
func (m *Model) checkInOut() *nav.CheckInOut {
	a := m.asset
	mode := nav.CheckOut
	if a.Status == backend.AssetCheckedOut {
		mode = nav.CheckIn
	}
	router, deps := m.deps.Router, m.deps
	return &nav.CheckInOut{
		AssetID:       a.ID,
		AssetName:     a.Name,
		CurrentStatus: a.Status,
		Mode:          mode,
		AssetContext:  &a,
		OnComplete: nav.NewCompletion(func(u backend.AssetUpdate) {
			router.ApplyAssetUpdate(a.ID, u)
			deps.Notifyf("%s is now %s", a.Name, u.Status)
		}),
	}
}

func (m *Model) openTask() (backend.MaintenanceTask, bool) {
	i := slices.IndexFunc(m.related.Tasks, func(t backend.MaintenanceTask) bool { return t.Status != "done" })
	if i < 0 {
		return backend.MaintenanceTask{}, false
	}
	return m.related.Tasks[i], true
}

func (m *Model) actions() []detail.Action {
	r := m.deps.Router
	return []detail.Action{
		{Key: "c", Desc: "check in/out", Run: func() tea.Cmd {
			r.NavigateToCheckInOut(m.checkInOut())
			return nil
		}},
		{Key: "n", Desc: "schedule maintenance", Run: func() tea.Cmd {
			a := m.asset
			r.NavigateToCreateMaintenance(&nav.MaintenanceRequest{Asset: &a})
			return nil
		}},
		{Key: "e", Desc: "edit open task", Run: func() tea.Cmd {
			t, ok := m.openTask()
			if !ok {
				m.deps.Notifyf("%s has no open maintenance", m.asset.ID)
				return nil
			}
			a := m.asset
			r.NavigateToEditMaintenance(&nav.MaintenanceRequest{Asset: &a, TaskID: t.ID})
			return nil
		}},
		{Key: "i", Desc: "report issue", Run: func() tea.Cmd {
			r.NavigateToReportIssue(&nav.IssueRequest{AssetID: m.asset.ID, AssetName: m.asset.Name})
			return nil
		}},
		{Key: "o", Desc: "compliance record", Run: func() tea.Cmd {
			r.NavigateToCreateCompliance(&nav.ComplianceCreation{AssetID: m.asset.ID})
			return nil
		}},
		{Key: "p", Desc: "playback", Run: func() tea.Cmd {
			a := m.asset
			r.NavigateToHistoricalPlayback(&a)
			return nil
		}},
		{Key: "m", Desc: "show on map", Run: func() tea.Cmd {
			r.ShowOnMap(m.asset.ID)
			return nil
		}},
		{Key: "r", Desc: "refresh", Run: func() tea.Cmd {
			return m.Reload()
		}},
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case relatedMsg:
		if msg.assetID != m.asset.ID {
			return nil
		}
		m.related = msg.related
		m.render()
		m.StopLoading()
		return nil

	case view.ContextChangedMsg:
		sel, ok := nav.Get[nav.AssetSelection](msg.Snapshot)
		if !ok {
			return nil
		}
		prev := m.asset.ID
		if !m.setAsset(sel.Asset) {
			return nil
		}
		l().Debugf("asset %s changed, re-rendering", sel.Asset.ID)
		if prev != sel.Asset.ID {
			m.related = Related{}
			m.SetLoad(m.load())
		}
		m.render()
		return m.Reload()
	}
	return m.Model.Update(msg)
}

var (
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	alertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func field(b *strings.Builder, k, v string) {
	if v == "" {
		v = "-"
	}
	b.WriteString(keyStyle.Render(k) + v + "\n")
}

func (m *Model) render() {
	a := m.asset
	m.SetHeader(view.AssetLabel(a.ID, a.Name))

	var b strings.Builder
	field(&b, "Type", a.Type)
	field(&b, "Status", string(a.Status))
	field(&b, "Site", a.SiteID)
	field(&b, "Battery", fmt.Sprintf("%d%%", a.Battery))
	field(&b, "Assigned", a.AssignedTo)
	field(&b, "Location", view.FormatLocation(a.Location))
	field(&b, "Last seen", view.FormatTime(a.LastSeen))
	field(&b, "Tags", strings.Join(a.Tags, ", "))
	keys := make([]string, 0, len(a.Attributes))
	for k := range a.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		field(&b, k, a.Attributes[k])
	}

	b.WriteString("\n" + sectionStyle.Render("Alerts") + "\n")
	if len(m.related.Alerts) == 0 {
		b.WriteString("  none\n")
	}
	for _, al := range m.related.Alerts {
		b.WriteString(alertStyle.Render(fmt.Sprintf("  %s %-8s %s", al.ID, al.Severity, al.Message)) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Maintenance") + "\n")
	if len(m.related.Tasks) == 0 {
		b.WriteString("  none\n")
	}
	for _, t := range m.related.Tasks {
		b.WriteString(fmt.Sprintf("  %s %-12s %s  due %s\n", t.ID, t.Status, t.Title, view.FormatDate(t.Due)))
	}

	b.WriteString("\n" + sectionStyle.Render("Compliance") + "\n")
	if len(m.related.Compliance) == 0 {
		b.WriteString("  none\n")
	}
	for _, c := range m.related.Compliance {
		state := "pending"
		if c.Passed {
			state = "passed"
		}
		b.WriteString(fmt.Sprintf("  %s %-13s %-8s due %s\n", c.ID, c.Kind, state, view.FormatDate(c.Due)))
	}

	m.SetContent(strings.TrimRight(b.String(), "\n"))
}
