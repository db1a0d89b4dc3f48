// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package filterlist is a cursor list with incremental search over a
// viewport.
package filterlist

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type ModeType int

const (
	ModeNormal ModeType = iota
	ModeSearching
)

type FilterableList[T any] struct {
	Viewport viewport.Model

	Items    []T
	Filtered []T
	Cursor   int
	Query    string
	Mode     ModeType

	// RenderItem draws one row.
	RenderItem func(item T, selected bool) string
	// Match reports whether item satisfies one search term.
	Match func(item T, term string) bool
	// Key identifies an item across reloads so the cursor stays on it.
	// Optional.
	Key func(item T) string
}

// SetItems replaces the backing items and re-applies the current query so
// a refresh keeps the user's search and, with Key set, the selection.
func (f *FilterableList[T]) SetItems(items []T) {
	var keep string
	if cur, ok := f.Selected(); ok && f.Key != nil {
		keep = f.Key(cur)
	}
	f.Items = items
	f.ApplyFilter()
	if keep == "" {
		return
	}
	if i := slices.IndexFunc(f.Filtered, func(it T) bool { return f.Key(it) == keep }); i >= 0 {
		f.Cursor = i
		f.ensureCursorVisible()
	}
}

// Selected returns the item under the cursor.
func (f *FilterableList[T]) Selected() (T, bool) {
	var zero T
	if f.Cursor < 0 || f.Cursor >= len(f.Filtered) {
		return zero, false
	}
	return f.Filtered[f.Cursor], true
}

// ApplyFilter keeps the items matching every whitespace-separated term of
// the query.
func (f *FilterableList[T]) ApplyFilter() {
	terms := strings.Fields(f.Query)
	if len(terms) == 0 || f.Match == nil {
		f.Filtered = f.Items
	} else {
		f.Filtered = nil
		for _, item := range f.Items {
			if f.matchAll(item, terms) {
				f.Filtered = append(f.Filtered, item)
			}
		}
	}
	f.Cursor = max(min(f.Cursor, len(f.Filtered)-1), 0)
	f.ensureCursorVisible()
}

func (f *FilterableList[T]) matchAll(item T, terms []string) bool {
	for _, t := range terms {
		if !f.Match(item, t) {
			return false
		}
	}
	return true
}

func (f *FilterableList[T]) clearSearch() {
	f.Query = ""
	f.Filtered = f.Items
	f.Cursor = 0
	f.Viewport.GotoTop()
}

func (f *FilterableList[T]) HandleKey(msg tea.KeyMsg) {
	if f.Mode == ModeSearching {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			f.Query += string(msg.Runes)
			f.ApplyFilter()
		case tea.KeyBackspace:
			if q := []rune(f.Query); len(q) > 0 {
				f.Query = string(q[:len(q)-1])
			}
			f.ApplyFilter()
		case tea.KeyEnter:
			// keep the filter, leave typing mode
			f.Mode = ModeNormal
		case tea.KeyEsc:
			f.Mode = ModeNormal
			f.clearSearch()
		}
		return
	}

	last := max(len(f.Filtered)-1, 0)
	page := max(f.Viewport.Height, 1)
	switch msg.String() {
	case "up", "k":
		f.Cursor = max(f.Cursor-1, 0)
	case "down", "j":
		f.Cursor = min(f.Cursor+1, last)
	case "pgup", "u":
		f.Cursor = max(f.Cursor-page, 0)
	case "pgdown", "d":
		f.Cursor = min(f.Cursor+page, last)
	case "home", "g":
		f.Cursor = 0
	case "end", "G":
		f.Cursor = last
	case "/":
		f.Mode = ModeSearching
		f.clearSearch()
		return
	default:
		return
	}
	f.ensureCursorVisible()
}

func (f *FilterableList[T]) View() string {
	lines := make([]string, len(f.Filtered))
	for i, item := range f.Filtered {
		lines[i] = f.RenderItem(item, i == f.Cursor)
	}
	f.Viewport.SetContent(strings.Join(lines, "\n"))
	return f.Viewport.View()
}

func (f *FilterableList[T]) ensureCursorVisible() {
	h := max(f.Viewport.Height, 1)
	switch {
	case f.Cursor < f.Viewport.YOffset:
		f.Viewport.YOffset = f.Cursor
	case f.Cursor >= f.Viewport.YOffset+h:
		f.Viewport.YOffset = f.Cursor - h + 1
	}
}
