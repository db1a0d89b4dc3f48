// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package playbackview

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/mapview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewHistoricalPlayback

const (
	trackPoints = 24
	trackStep   = time.Hour
	frameEvery  = 400 * time.Millisecond
)

// Point is one recorded position.
type Point struct {
	At       time.Time
	Location backend.Location
}

// Track rebuilds the last day of positions of a, ending at its current
// location. The same asset always gets the same track.
func Track(a backend.Asset) []Point {
	seed, _ := backend.HashOf(a.ID)
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	end := a.LastSeen
	if end.IsZero() {
		end = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	pts := make([]Point, trackPoints)
	loc := a.Location
	for i := trackPoints - 1; i >= 0; i-- {
		pts[i] = Point{At: end.Add(-time.Duration(trackPoints-1-i) * trackStep), Location: loc}
		loc.Lat += (rng.Float64() - 0.5) * 0.004
		loc.Lng += (rng.Float64() - 0.5) * 0.004
	}
	return pts
}

type frameMsg struct {
	gen int
}

type Model struct {
	*detail.Model
	asset   backend.Asset
	track   []Point
	pos     int
	playing bool
	gen     int
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	req, _ := nav.Get[nav.PlaybackRequest](snap)
	m := &Model{asset: req.Asset, track: Track(req.Asset)}
	m.Model = detail.New(width, height, detail.Config{
		ID:    ViewName,
		Title: "Playback",
		Actions: []detail.Action{
			{Key: " ", Desc: "play/pause", Run: m.toggle},
			{Key: "right", Desc: "step", Run: func() tea.Cmd { m.step(1); return nil }},
			{Key: "left", Desc: "back", Run: func() tea.Cmd { m.step(-1); return nil }},
			{Key: "m", Desc: "show on map", Run: func() tea.Cmd {
				deps.Router.ShowOnMap(req.Asset.ID)
				return nil
			}},
		},
	})
	m.render()
	return m, m.Init()
}

func (m *Model) Position() int { return m.pos }
func (m *Model) Playing() bool { return m.playing }

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(frameEvery, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (m *Model) toggle() tea.Cmd {
	m.playing = !m.playing
	m.gen++
	m.render()
	if !m.playing {
		return nil
	}
	if m.pos == len(m.track)-1 {
		m.pos = 0
	}
	return m.tick()
}

func (m *Model) step(d int) {
	m.pos = min(max(m.pos+d, 0), len(m.track)-1)
	m.render()
}

// OnExit stops the frame ticker.
func (m *Model) OnExit() tea.Cmd {
	m.playing = false
	m.gen++
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if f, ok := msg.(frameMsg); ok {
		if !m.playing || f.gen != m.gen {
			return nil
		}
		m.step(1)
		if m.pos == len(m.track)-1 {
			m.playing = false
			m.render()
			return nil
		}
		return m.tick()
	}
	return m.Model.Update(msg)
}

func (m *Model) render() {
	if len(m.track) == 0 {
		return
	}
	p := m.track[m.pos]
	state := "paused"
	if m.playing {
		state = "playing"
	}
	m.SetHeader(fmt.Sprintf("%s · %s · %d/%d %s",
		view.AssetLabel(m.asset.ID, m.asset.Name), view.FormatTime(p.At), m.pos+1, len(m.track), state))

	markers := make([]mapview.Marker, 0, m.pos+1)
	for i, q := range m.track[:m.pos+1] {
		r := '•'
		if i == m.pos {
			r = '◆'
		}
		markers = append(markers, mapview.Marker{At: q.Location, Rune: r})
	}
	lines := mapview.Plot(markers, 60, 12)
	m.SetContent(strings.Join(lines, "\n") + "\n\n" + view.FormatLocation(p.Location))
}
