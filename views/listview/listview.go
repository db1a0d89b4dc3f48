// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package listview is the table screen shared by every entity list: a
// filterable, sortable list loaded from the backend.
package listview

import (
	"context"
	"strings"

	"assetops/nav"
	filterlist "assetops/ui/components/filterable/list"
	"assetops/ui/components/sorting"
	opslog "assetops/utils/log"
	"assetops/views/helpbar"
	"assetops/views/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func l() *opslog.Logger {
	return opslog.Component("listview")
}

// Column describes one table column. Width is the preferred width; Flex
// columns absorb spare space or give it up first.
type Column[T any] struct {
	Title string
	Width int
	Flex  bool
	Value func(T) string
}

// Action binds a key to the item under the cursor. ok is false when the
// list is empty.
type Action[T any] struct {
	Key  string
	Desc string
	Run  func(item T, ok bool) tea.Cmd
}

type Config[T any] struct {
	ID      nav.ViewID
	Title   string
	Columns []Column[T]
	Load    func(ctx context.Context) ([]T, error)

	// Optional.
	Match    func(item T, query string) bool
	OnSelect func(item T) tea.Cmd
	Actions  []Action[T]
	Header   func() string
	Mark     func(item T) string
	// Key keeps the cursor on the same item across reloads.
	Key func(item T) string
	// Prepare runs on every load before the items are shown.
	Prepare func(items []T) []T
}

type Model[T any] struct {
	cfg  Config[T]
	List filterlist.FilterableList[T]

	width, height int
	sortCol       int
	order         sorting.SortOrder

	loading bool
	spinner spinner.Model
	err     string
}

type loadedMsg[T any] struct {
	id    nav.ViewID
	items []T
	err   error
}

func New[T any](width, height int, cfg Config[T]) *Model[T] {
	m := &Model[T]{
		cfg:     cfg,
		width:   width,
		height:  height,
		sortCol: -1,
		loading: true,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.List.Match = cfg.Match
	if m.List.Match == nil {
		m.List.Match = m.matchColumns
	}
	m.List.RenderItem = m.renderRow
	m.List.Key = cfg.Key
	m.resize(width, height)
	return m
}

// matchColumns is the default search: any column containing the query,
// case-insensitively.
func (m *Model[T]) matchColumns(item T, query string) bool {
	q := strings.ToLower(query)
	for _, c := range m.cfg.Columns {
		if strings.Contains(strings.ToLower(c.Value(item)), q) {
			return true
		}
	}
	return false
}

// Reload fetches the items again.
func (m *Model[T]) Reload() tea.Cmd {
	m.loading = true
	id, load := m.cfg.ID, m.cfg.Load
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), view.RequestTimeout)
		defer cancel()
		items, err := load(ctx)
		return loadedMsg[T]{id: id, items: items, err: err}
	})
}

func (m *Model[T]) Init() tea.Cmd { return m.Reload() }

func (m *Model[T]) Name() string { return string(m.cfg.ID) }

func (m *Model[T]) Loading() bool { return m.loading }

func (m *Model[T]) Err() string { return m.err }

// Items returns everything loaded, ignoring the search filter.
func (m *Model[T]) Items() []T { return m.List.Items }

func (m *Model[T]) OnEnter() tea.Cmd { return nil }
func (m *Model[T]) OnExit() tea.Cmd  { return nil }

func (m *Model[T]) HasActiveDialog() bool { return m.err != "" }

func (m *Model[T]) CapturesInput() bool { return m.List.Mode == filterlist.ModeSearching }

func (m *Model[T]) ShortHelpItems() []helpbar.HelpEntry {
	entries := []helpbar.HelpEntry{
		{Key: "enter", Desc: "open"},
		{Key: "/", Desc: "search"},
		{Key: "s/S", Desc: "sort/reverse"},
		{Key: "r", Desc: "refresh"},
	}
	if m.cfg.OnSelect == nil {
		entries = entries[1:]
	}
	for _, a := range m.cfg.Actions {
		entries = append(entries, helpbar.HelpEntry{Key: a.Key, Desc: a.Desc})
	}
	return entries
}

// StartSearch opens the list in search mode.
func (m *Model[T]) StartSearch() {
	m.List.Mode = filterlist.ModeSearching
	m.List.Query = ""
}
