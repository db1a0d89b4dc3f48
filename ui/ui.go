// Package ui draws the frames every screen sits in.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("75")).
				Bold(true)

	FrameBorderColor = lipgloss.Color("117")

	borderStyle = lipgloss.NewStyle().Foreground(FrameBorderColor)

	// Rainbow colours the breadcrumb segments, cycling per depth.
	Rainbow = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("81")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("114")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("221")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("209")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("177")),
	}
)

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// RenderFramedBoxHeight is RenderFramedBox with the content padded or cut
// so the whole frame is exactly height lines tall.
func RenderFramedBoxHeight(title, header, content, footer string, width, height int) string {
	used := 2 + len(splitLines(footer))
	if header != "" {
		used++
	}
	want := max(height-used, 1)

	lines := strings.Split(content, "\n")
	if len(lines) > want {
		lines = lines[:want]
	}
	for len(lines) < want {
		lines = append(lines, "")
	}
	return RenderFramedBox(title, header, strings.Join(lines, "\n"), footer, width)
}

// RenderFramedBox draws a rounded frame with the title centred in the top
// border, an optional header line, the content and optional footer lines.
// A width <= 0 fits the frame to the content. ANSI sequences in content are
// preserved.
func RenderFramedBox(title, header, content, footer string, width int) string {
	lines := strings.Split(content, "\n")
	footerLines := splitLines(footer)

	if width <= 0 {
		inner := lipgloss.Width(header)
		for _, l := range lines {
			inner = max(inner, lipgloss.Width(l))
		}
		for _, l := range footerLines {
			inner = max(inner, lipgloss.Width(l))
		}
		width = inner + 4
	}
	inner := max(width-2, 0)

	titleStyled := FrameTitleStyle.Render(" " + title + " ")
	left := max((inner-lipgloss.Width(titleStyled))/2, 0)
	right := max(inner-left-lipgloss.Width(titleStyled), 0)

	var b strings.Builder
	b.WriteString(borderStyle.Render("╭" + strings.Repeat("─", left)))
	b.WriteString(titleStyled)
	b.WriteString(borderStyle.Render(strings.Repeat("─", right) + "╮"))

	row := func(s string) {
		b.WriteString("\n")
		b.WriteString(borderStyle.Render("│"))
		b.WriteString(padLine(s, inner))
		b.WriteString(borderStyle.Render("│"))
	}
	if header != "" {
		row(FrameHeaderStyle.Render(header))
	}
	for _, l := range lines {
		row(l)
	}
	for _, l := range footerLines {
		row(l)
	}

	b.WriteString("\n")
	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	w := lipgloss.Width(line)
	if w >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-w)
}

// OverlayCentered draws overlay over the middle of base. Inside a frame
// the border columns are kept and the rows the overlay covers are blanked
// between them. width is used when base has no lines to measure.
func OverlayCentered(base, overlay string, width, height int) string {
	canvas := strings.Split(base, "\n")
	over := strings.Split(overlay, "\n")
	if overlay == "" || len(canvas) == 0 {
		return base
	}

	overWidth := 0
	for _, l := range over {
		overWidth = max(overWidth, lipgloss.Width(l))
	}
	canvasWidth := lipgloss.Width(canvas[0])
	if canvasWidth == 0 {
		canvasWidth = width
	}
	framed := strings.Contains(canvas[0], "╭")

	top := max((len(canvas)-len(over))/2, 0)
	for i, line := range over {
		r := top + i
		if r >= len(canvas) {
			break
		}
		if framed {
			canvas[r] = overlayFramedRow(canvas[r], line, overWidth)
			continue
		}
		canvas[r] = centre(line, overWidth, canvasWidth)
	}
	return strings.Join(canvas, "\n")
}

// overlayFramedRow redraws a content row of a frame with line, centred as
// a block of blockWidth cells. Border rows are left alone.
func overlayFramedRow(row, line string, blockWidth int) string {
	first := strings.Index(row, "│")
	last := strings.LastIndex(row, "│")
	if first < 0 || first >= last {
		return row
	}
	inner := lipgloss.Width(row) - 2
	if inner <= 0 {
		return row
	}
	side := borderStyle.Render("│")
	return side + centre(line, blockWidth, inner) + side
}

// centre pads line to width with the block it belongs to centred.
func centre(line string, blockWidth, width int) string {
	left := max((width-blockWidth)/2, 0)
	s := strings.Repeat(" ", left) + line
	return padLine(s, width)
}
