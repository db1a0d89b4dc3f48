// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import "assetops/nav"

// ContextChangedMsg reaches the current screen when a commit kept the view
// but changed its context (tab switch, asset refresh).
type ContextChangedMsg struct {
	Snapshot nav.Snapshot
}

// ErrorMsg carries a failed backend call back to the screen that issued it.
type ErrorMsg struct {
	Op  string
	Err error
}

func (e ErrorMsg) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}
