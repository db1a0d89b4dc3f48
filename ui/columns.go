// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

// DistributeColumns fits preferred column widths into totalWidth, leaving
// gapCount gaps of gapWidth. Spare space is shared evenly by the flex
// columns (the last column when there are none). When the columns are too
// wide the widest flex column gives up a cell at a time, then the fixed
// ones do. No column drops below one cell. cols is not modified.
func DistributeColumns(totalWidth, gapCount, gapWidth int, cols []int, flexIndices []int) []int {
	out := make([]int, len(cols))
	copy(out, cols)
	if totalWidth <= 0 || len(out) == 0 {
		return out
	}
	for i := range out {
		out[i] = max(out[i], 1)
	}

	available := totalWidth - gapCount*gapWidth
	sum := 0
	for _, w := range out {
		sum += w
	}

	switch {
	case available <= 0 || sum == available:
		return out
	case sum < available:
		grow := flexIndices
		if len(grow) == 0 {
			grow = []int{len(out) - 1}
		}
		spare := available - sum
		for n, idx := range grow {
			share := spare / len(grow)
			if n < spare%len(grow) {
				share++
			}
			out[idx] += share
		}
		return out
	}

	for sum > available && shrinkWidest(out, flexIndices) {
		sum--
	}
	for i := range out {
		for sum > available && out[i] > 1 {
			out[i]--
			sum--
		}
	}
	return out
}

// shrinkWidest takes one cell from the widest of idx and reports whether
// any could give.
func shrinkWidest(widths []int, idx []int) bool {
	widest := -1
	for _, i := range idx {
		if widths[i] > 1 && (widest < 0 || widths[i] > widths[widest]) {
			widest = i
		}
	}
	if widest < 0 {
		return false
	}
	widths[widest]--
	return true
}
