// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package mapview

import (
	"fmt"
	"slices"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const ViewName = nav.ViewMap

const (
	plotCols = 60
	plotRows = 14
)

var statusRune = map[backend.AssetStatus]rune{
	backend.AssetActive:      'A',
	backend.AssetIdle:        'i',
	backend.AssetCheckedOut:  'c',
	backend.AssetMaintenance: 'm',
	backend.AssetOffline:     'x',
}

var highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Bold(true)

type assetsMsg struct {
	assets []backend.Asset
}

type Model struct {
	*detail.Model
	deps   view.Deps
	assets []backend.Asset
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := &Model{deps: deps}
	m.Model = detail.New(width, height, detail.Config{
		ID:    ViewName,
		Title: "Map",
		Load: view.Request("load assets", deps.Backend.ListAssets, func(a []backend.Asset) tea.Msg {
			return assetsMsg{assets: a}
		}),
		Actions: []detail.Action{
			{Key: "enter", Desc: "open highlighted", Run: func() tea.Cmd {
				if a, ok := m.highlighted(); ok {
					deps.Router.NavigateToAssetDetails(&a)
				}
				return nil
			}},
			{Key: "p", Desc: "playback", Run: func() tea.Cmd {
				if a, ok := m.highlighted(); ok {
					deps.Router.NavigateToHistoricalPlayback(&a)
				}
				return nil
			}},
			{Key: "n", Desc: "next asset", Run: func() tea.Cmd {
				m.cycle()
				return nil
			}},
			{Key: "c", Desc: "clear highlight", Run: func() tea.Cmd {
				deps.Signals.ClearHighlight()
				m.render()
				return nil
			}},
			{Key: "v", Desc: "violations", Run: func() tea.Cmd {
				deps.Router.HandleViewChange(nav.ViewViolationMap)
				return nil
			}},
			{Key: "r", Desc: "refresh", Run: func() tea.Cmd { return m.Reload() }},
		},
	})
	m.render()
	return m, m.Init()
}

func (m *Model) highlighted() (backend.Asset, bool) {
	id, ok := m.deps.Signals.Highlighted()
	if !ok {
		return backend.Asset{}, false
	}
	i := slices.IndexFunc(m.assets, func(a backend.Asset) bool { return a.ID == id })
	if i < 0 {
		return backend.Asset{}, false
	}
	return m.assets[i], true
}

// cycle moves the highlight to the next asset.
func (m *Model) cycle() {
	if len(m.assets) == 0 {
		return
	}
	next := 0
	if id, ok := m.deps.Signals.Highlighted(); ok {
		if i := slices.IndexFunc(m.assets, func(a backend.Asset) bool { return a.ID == id }); i >= 0 {
			next = (i + 1) % len(m.assets)
		}
	}
	m.deps.Signals.Highlight(m.assets[next].ID)
	m.render()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case assetsMsg:
		m.assets = msg.assets
		m.render()
		m.StopLoading()
		return nil
	case view.ContextChangedMsg:
		// ShowOnMap while already here only moves the highlight.
		m.render()
		return nil
	}
	return m.Model.Update(msg)
}

func (m *Model) render() {
	hl, hasHL := m.deps.Signals.Highlighted()
	markers := make([]Marker, 0, len(m.assets))
	var focus *backend.Asset
	for i, a := range m.assets {
		if hasHL && a.ID == hl {
			focus = &m.assets[i]
			continue
		}
		markers = append(markers, Marker{At: a.Location, Rune: statusRune[a.Status]})
	}
	if focus != nil {
		markers = append(markers, Marker{At: focus.Location, Rune: '◆'})
	}

	lines := Plot(markers, plotCols, plotRows)
	for i, line := range lines {
		lines[i] = strings.ReplaceAll(line, "◆", highlightStyle.Render("◆"))
	}

	header := "A active · i idle · c checked out · m maintenance · x offline"
	switch {
	case focus != nil:
		header = fmt.Sprintf("◆ %s at %s", view.AssetLabel(focus.ID, focus.Name), view.FormatLocation(focus.Location))
	case hasHL:
		header = fmt.Sprintf("◆ %s is not on the map", hl)
	}
	m.SetHeader(header)
	m.SetContent(strings.Join(lines, "\n"))
}
