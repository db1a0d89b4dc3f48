package usersview

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"assetops/backend"
)

func TestAssignees(t *testing.T) {
	got := Assignees([]backend.Asset{
		{ID: "AT-007", AssignedTo: "crew-4"},
		{ID: "AT-003", AssignedTo: "crew-4"},
		{ID: "AT-001"},
		{ID: "AT-002", AssignedTo: "a.lindqvist"},
	})
	want := []Assignee{
		{Name: "a.lindqvist", Assets: []string{"AT-002"}},
		{Name: "crew-4", Assets: []string{"AT-003", "AT-007"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assignees (-want +got):\n%s", diff)
	}
}
