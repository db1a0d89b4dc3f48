// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package breadcrumb records the screens visited, newest last. It is a
// display aid only; the way back is decided by the resolver.
package breadcrumb

import (
	"strings"

	"assetops/nav"
	"assetops/ui"

	"github.com/charmbracelet/lipgloss"
)

type Trail struct {
	views []nav.ViewID
	depth int
}

// New keeps at most depth entries; depth < 1 means 1.
func New(depth int) *Trail {
	return &Trail{depth: max(depth, 1)}
}

// Visit appends v. Coming back to a view already on the trail cuts the
// trail there, so loops do not grow it. The dashboard restarts it.
func (t *Trail) Visit(v nav.ViewID) {
	if v == nav.ViewDashboard {
		t.views = t.views[:0]
	}
	for i, seen := range t.views {
		if seen == v {
			t.views = t.views[:i+1]
			return
		}
	}
	t.views = append(t.views, v)
	if over := len(t.views) - t.depth; over > 0 {
		t.views = t.views[over:]
	}
}

// Views returns the trail (shallow copy).
func (t *Trail) Views() []nav.ViewID {
	cpy := make([]nav.ViewID, len(t.views))
	copy(cpy, t.views)
	return cpy
}

// Peek returns the newest entry.
func (t *Trail) Peek() (nav.ViewID, bool) {
	if len(t.views) == 0 {
		return "", false
	}
	return t.views[len(t.views)-1], true
}

func (t *Trail) Len() int {
	return len(t.views)
}

func (t *Trail) Reset() {
	t.views = nil
}

// Render draws the trail as coloured segments, cut on the left to width.
func (t *Trail) Render(width int) string {
	parts := make([]string, 0, len(t.views))
	for i, v := range t.views {
		parts = append(parts, ui.Rainbow[i%len(ui.Rainbow)].Render(" "+v.Title()+" "))
	}
	for len(parts) > 1 && lipgloss.Width(strings.Join(parts, " ")) > width {
		parts = parts[1:]
	}
	return strings.Join(parts, " ")
}
