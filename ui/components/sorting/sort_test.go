package sorting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNatural(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"TRK-9", "TRK-10", -1},
		{"trk-10", "TRK-9", 1},
		{"Forklift", "forklift", 0},
		{"AT-007", "AT-7", 0},
		{"AT-1", "AT-1b", -1},
		{"", "a", -1},
		{"Zone 2 east", "Zone 2 west", -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Natural(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestSortStringField(t *testing.T) {
	type row struct{ id, name string }
	rows := []row{
		{"AT-10", "b"},
		{"AT-2", "a"},
		{"AT-1", "a"},
	}

	SortStringField(rows, Ascending, func(r row) string { return r.id })
	want := []row{{"AT-1", "a"}, {"AT-2", "a"}, {"AT-10", "b"}}
	if diff := cmp.Diff(want, rows, cmp.AllowUnexported(row{})); diff != "" {
		t.Errorf("ascending (-want +got):\n%s", diff)
	}

	// Stable: equal names keep their current order.
	SortStringField(rows, Descending, func(r row) string { return r.name })
	want = []row{{"AT-10", "b"}, {"AT-1", "a"}, {"AT-2", "a"}}
	if diff := cmp.Diff(want, rows, cmp.AllowUnexported(row{})); diff != "" {
		t.Errorf("descending (-want +got):\n%s", diff)
	}
}

func TestSortOrder(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Flip())
	assert.Equal(t, Ascending, Descending.Flip())
	assert.Equal(t, "▲", Ascending.Arrow())
	assert.Equal(t, "▼", Descending.Arrow())
}
