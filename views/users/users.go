// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package usersview

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/listview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewUsers

// Assignee is a crew or person holding checked-out assets.
type Assignee struct {
	Name   string
	Assets []string
}

// Assignees groups assets by who holds them.
func Assignees(assets []backend.Asset) []Assignee {
	held := map[string][]string{}
	for _, a := range assets {
		if a.AssignedTo == "" {
			continue
		}
		held[a.AssignedTo] = append(held[a.AssignedTo], a.ID)
	}
	out := make([]Assignee, 0, len(held))
	for name, ids := range held {
		slices.Sort(ids)
		out = append(out, Assignee{Name: name, Assets: ids})
	}
	slices.SortFunc(out, func(a, b Assignee) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func New(width, height int, _ nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	m := listview.New(width, height, listview.Config[Assignee]{
		ID:    ViewName,
		Title: "Users",
		Columns: []listview.Column[Assignee]{
			{Title: "NAME", Width: 16, Flex: true, Value: func(a Assignee) string { return a.Name }},
			{Title: "HOLDING", Width: 7, Value: func(a Assignee) string { return strconv.Itoa(len(a.Assets)) }},
			{Title: "ASSETS", Width: 24, Flex: true, Value: func(a Assignee) string { return strings.Join(a.Assets, ", ") }},
		},
		Load: func(ctx context.Context) ([]Assignee, error) {
			assets, err := deps.Backend.ListAssets(ctx)
			if err != nil {
				return nil, err
			}
			return Assignees(assets), nil
		},
	})
	return m, m.Init()
}
