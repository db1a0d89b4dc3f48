// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package sorting orders table rows by a column's text.
package sorting

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// SortOrder represents the sort direction
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// Arrow is the column header marker for the order.
func (o SortOrder) Arrow() string {
	if o == Ascending {
		return "▲"
	}
	return "▼"
}

func (o SortOrder) Flip() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// SortStringField sorts items by field, stably, comparing digit runs by
// value so "TRK-9" sorts before "TRK-10".
func SortStringField[T any](items []T, order SortOrder, field func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := Natural(field(a), field(b))
		if order == Descending {
			return -c
		}
		return c
	})
}

// Natural compares a and b case-insensitively, treating each run of digits
// as one number.
func Natural(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	for a != "" && b != "" {
		da, db := digitPrefix(a), digitPrefix(b)
		if da != "" && db != "" {
			na, nb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
			if c := cmp.Compare(len(na), len(nb)); c != 0 {
				return c
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			a, b = a[len(da):], b[len(db):]
			continue
		}
		ra, rb := []rune(a)[0], []rune(b)[0]
		if ra != rb {
			return cmp.Compare(ra, rb)
		}
		a, b = a[len(string(ra)):], b[len(string(rb)):]
	}
	return cmp.Compare(len(a), len(b))
}

func digitPrefix(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if i < 0 {
		return s
	}
	return s[:i]
}
