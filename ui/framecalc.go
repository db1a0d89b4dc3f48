package ui

import "strings"

// horizontalPadding is the border plus one space each side; the app hands
// views the terminal width minus this.
const horizontalPadding = 4

// FrameSpec captures the calculated dimensions for a framed view.
type FrameSpec struct {
	FrameWidth          int
	FrameHeight         int
	DesiredContentLines int
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// ComputeFrameDimensions sizes a screen's frame from the space the app
// gave it, falling back to the screen's own size and then to 80x20 before
// the first resize. The frame is horizontalPadding wider than the usable
// width; the content gets what the borders, header and footer leave.
func ComputeFrameDimensions(viewportWidth, viewportHeight, fallbackWidth, fallbackHeight int, header, footer string) FrameSpec {
	width := firstPositive(viewportWidth, fallbackWidth, 80) + horizontalPadding
	height := firstPositive(viewportHeight, fallbackHeight, 20)
	return FrameSpec{
		FrameWidth:          width,
		FrameHeight:         height,
		DesiredContentLines: max(height-2-lineCount(header)-lineCount(footer), 0),
	}
}
