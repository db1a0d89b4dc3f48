package view

import (
	"fmt"
	"time"

	"assetops/backend"
)

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func FormatLocation(l backend.Location) string {
	return fmt.Sprintf("%.4f, %.4f", l.Lat, l.Lng)
}

// AssetLabel renders "Name (ID)", or just the id when the name is unknown.
func AssetLabel(id, name string) string {
	if name == "" {
		return id
	}
	return fmt.Sprintf("%s (%s)", name, id)
}
