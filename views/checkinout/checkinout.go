// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package checkinoutview

import (
	"context"
	"errors"

	"assetops/backend"
	"assetops/nav"
	"assetops/ui/components/form"
	opslog "assetops/utils/log"
	"assetops/views/formview"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

const ViewName = nav.ViewCheckInOut

var ErrNoAssignee = errors.New("check-out needs an assignee")

func l() *opslog.Logger {
	return opslog.Component("check-in-out")
}

// Model is the check-in/out form. It owns the request's completion: the
// completion is delivered once the backend confirmed the update, and
// cancelled when the screen goes away without one.
type Model struct {
	*formview.Model
	req nav.CheckInOut
}

// Update computes the asset change a submitted form stands for.
func Update(mode nav.CheckMode, values form.Values) (backend.AssetUpdate, error) {
	if mode == nav.CheckIn {
		return backend.AssetUpdate{
			Status:        backend.AssetIdle,
			SiteID:        values["site"],
			Notes:         values["notes"],
			ClearAssignee: true,
		}, nil
	}
	if values["assignee"] == "" {
		return backend.AssetUpdate{}, ErrNoAssignee
	}
	return backend.AssetUpdate{
		Status:     backend.AssetCheckedOut,
		AssignedTo: values["assignee"],
		Notes:      values["notes"],
	}, nil
}

func fields(req nav.CheckInOut) []form.Field {
	fs := []form.Field{
		{Key: "asset", Label: "Asset", Value: view.AssetLabel(req.AssetID, req.AssetName), ReadOnly: true},
		{Key: "status", Label: "Status", Value: string(req.CurrentStatus), ReadOnly: true},
	}
	if req.Mode == nav.CheckIn {
		site := ""
		if req.AssetContext != nil {
			site = req.AssetContext.SiteID
		}
		fs = append(fs, form.Field{Key: "site", Label: "Return to site", Placeholder: "ST-001", Value: site})
	} else {
		fs = append(fs, form.Field{Key: "assignee", Label: "Assign to", Placeholder: "operator name"})
	}
	return append(fs, form.Field{Key: "notes", Label: "Notes"})
}

func New(width, height int, snap nav.Snapshot, deps view.Deps) (view.View, tea.Cmd) {
	req, _ := nav.Get[nav.CheckInOut](snap)
	m := &Model{req: req}
	m.Model = formview.New(width, height, formview.Config{
		ID:     ViewName,
		Title:  title(req.Mode),
		Header: view.AssetLabel(req.AssetID, req.AssetName),
		Fields: fields(req),
		Submit: func(values form.Values) (tea.Cmd, error) {
			u, err := Update(req.Mode, values)
			if err != nil {
				return nil, err
			}
			svc := deps.Backend
			return formview.Save(ViewName, string(req.Mode)+" "+req.AssetID,
				func(ctx context.Context) (backend.Asset, error) {
					return svc.UpdateAsset(ctx, req.AssetID, u)
				},
				func(backend.Asset) {
					if !req.OnComplete.Deliver(u) {
						l().Warnf("%s of %s confirmed but nobody was waiting", req.Mode, req.AssetID)
					}
					deps.Resolver.BackFromCheckInOut()
				}), nil
		},
		Cancel: func() { deps.Resolver.BackFromCheckInOut() },
	})
	return m, m.Init()
}

func title(mode nav.CheckMode) string {
	if mode == nav.CheckIn {
		return "Check In"
	}
	return "Check Out"
}

// OnExit drops the completion if it was never delivered.
func (m *Model) OnExit() tea.Cmd {
	if m.req.OnComplete.Pending() {
		l().Debugf("cancelling %s completion for %s", m.req.Mode, m.req.AssetID)
	}
	m.req.OnComplete.Cancel()
	return nil
}
