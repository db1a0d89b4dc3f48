package mapview

import (
	"math"
	"strings"

	"assetops/backend"
)

const earthRadiusMeters = 6371000

// DistanceMeters is the great-circle distance between a and b.
func DistanceMeters(a, b backend.Location) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Marker is one point on the plot.
type Marker struct {
	At   backend.Location
	Rune rune
}

// Plot scales markers into a cols×rows character grid, north up. Later
// markers are drawn over earlier ones.
func Plot(markers []Marker, cols, rows int) []string {
	cols, rows = max(cols, 4), max(rows, 2)
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat("·", cols))
	}
	if len(markers) == 0 {
		return toLines(grid)
	}

	minLat, maxLat := markers[0].At.Lat, markers[0].At.Lat
	minLng, maxLng := markers[0].At.Lng, markers[0].At.Lng
	for _, m := range markers[1:] {
		minLat, maxLat = math.Min(minLat, m.At.Lat), math.Max(maxLat, m.At.Lat)
		minLng, maxLng = math.Min(minLng, m.At.Lng), math.Max(maxLng, m.At.Lng)
	}
	scale := func(v, lo, hi float64, n int) int {
		if hi-lo < 1e-9 {
			return n / 2
		}
		return int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
	}
	for _, m := range markers {
		x := scale(m.At.Lng, minLng, maxLng, cols)
		y := rows - 1 - scale(m.At.Lat, minLat, maxLat, rows)
		grid[y][x] = m.Rune
	}
	return toLines(grid)
}

func toLines(grid [][]rune) []string {
	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}
	return out
}
