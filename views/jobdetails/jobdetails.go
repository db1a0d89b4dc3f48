// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package jobdetailsview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assetops/backend"
	"assetops/nav"
	"assetops/views/detail"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const ViewName = nav.ViewJobDetails

// Details is a job with its assets resolved.
type Details struct {
	Job    backend.Job
	Assets []backend.Asset
}

// LoadDetails reads the job and each of its assets concurrently. Unknown
// asset ids are skipped.
func LoadDetails(ctx context.Context, svc backend.Service, id string) (Details, error) {
	job, err := svc.GetJob(ctx, id)
	if err != nil {
		return Details{}, err
	}
	assets := make([]backend.Asset, len(job.AssetIDs))
	found := make([]bool, len(job.AssetIDs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, aid := range job.AssetIDs {
		g.Go(func() error {
			a, err := svc.GetAsset(ctx, aid)
			if err != nil {
				if errors.Is(err, backend.ErrNotFound) {
					return nil
				}
				return err
			}
			assets[i], found[i] = a, true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Details{}, err
	}
	d := Details{Job: job}
	for i, ok := range found {
		if ok {
			d.Assets = append(d.Assets, assets[i])
		}
	}
	return d, nil
}

func Render(d Details) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name    %s\n", d.Job.Name)
	fmt.Fprintf(&b, "Site    %s\n", d.Job.SiteID)
	fmt.Fprintf(&b, "Status  %s\n\n", d.Job.Status)
	fmt.Fprintf(&b, "Assets (%d)\n", len(d.Assets))
	for _, a := range d.Assets {
		fmt.Fprintf(&b, "  %-8s %-18s %s\n", a.ID, a.Name, a.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	sel, _ := nav.Get[nav.JobSelection](snap)
	m := detail.New(width, height, detail.Config{
		ID:    ViewName,
		Title: "Job " + sel.ID,
		Load: detail.Content(ViewName, "load job "+sel.ID, func(ctx context.Context) (Details, error) {
			return LoadDetails(ctx, deps.Backend, sel.ID)
		}, Render),
		Actions: []detail.Action{
			{Key: "e", Desc: "edit", Run: func() tea.Cmd {
				deps.Router.NavigateToEditJob(sel.ID)
				return nil
			}},
		},
	})
	return m, m.Init()
}
