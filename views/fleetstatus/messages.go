// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package fleetstatusview

import (
	"time"

	"assetops/backend"
)

// Msg is one fleet reading.
type Msg struct {
	ByStatus     map[backend.AssetStatus]int
	Assets       int
	ActiveAlerts int
	Revision     string
}

type ErrMsg struct {
	Err error
}

type TickMsg time.Time

type SpinnerTickMsg time.Time
