// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package formsview holds the create and edit workflows. Each is a
// formview screen whose way out is the matching resolver call.
package formsview

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"assetops/ui/components/form"
	opslog "assetops/utils/log"
	"assetops/views/view"
)

func l() *opslog.Logger {
	return opslog.Component("forms")
}

const dateLayout = "2006-01-02"

func required(values form.Values, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if values[k] == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required: %s", strings.Join(missing, ", "))
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseFloat(key, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, s)
	}
	return f, nil
}

func parseInt(key, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", key, s)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func assetHeader(id, name string) string {
	if id == "" {
		return ""
	}
	return "Asset " + view.AssetLabel(id, name)
}
