// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package issuedetailsview

import (
	"context"
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewIssueDetails

func Render(i backend.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title     %s\n", i.Title)
	fmt.Fprintf(&b, "Asset     %s\n", i.AssetID)
	fmt.Fprintf(&b, "Severity  %s\n", i.Severity)
	fmt.Fprintf(&b, "Status    %s\n\n", i.Status)
	if i.Notes == "" {
		b.WriteString("no notes")
	}
	b.WriteString(i.Notes)
	return b.String()
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.IssueSelection](snap)
	m := detail.New(width, height, detail.Config{
		ID:    ViewName,
		Title: "Issue " + sel.ID,
		Load: detail.Content(ViewName, "load issue "+sel.ID, func(ctx context.Context) (backend.Issue, error) {
			return deps.Backend.GetIssue(ctx, sel.ID)
		}, Render),
		Actions: []detail.Action{
			{Key: "e", Desc: "edit", Run: func() tea.Cmd {
				deps.Router.NavigateToEditIssue(sel.ID, nil)
				return nil
			}},
		},
	})
	m.SetFooter("e edit · esc back")
	return m, m.Init()
}
