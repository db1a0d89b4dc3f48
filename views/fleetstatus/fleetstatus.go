// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package fleetstatusview is the header panel with fleet counts, active
// alerts and the backend revision.
package fleetstatusview

import opslog "assetops/utils/log"

const ViewName = "fleetstatus"

func l() *opslog.Logger {
	return opslog.Component("fleetstatus")
}
