package listview

import (
	"fmt"
	"strings"

	"assetops/ui"
	"assetops/ui/components/errordialog"
	filterlist "assetops/ui/components/filterable/list"

	"github.com/charmbracelet/lipgloss"
)

var (
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

const colGap = 2

func (m *Model[T]) View() string {
	header := m.headerLine()
	footer := m.footerLine()
	frame := ui.ComputeFrameDimensions(m.width, m.height, 80, 20, header, footer)

	var content string
	switch {
	case m.loading && len(m.List.Items) == 0:
		content = fmt.Sprintf(" %s loading %s…", m.spinner.View(), strings.ToLower(m.cfg.Title))
	case len(m.List.Filtered) == 0:
		content = footerStyle.Render(" nothing to show")
	default:
		content = m.List.View()
	}

	out := ui.RenderFramedBoxHeight(m.title(), header, content, footer, frame.FrameWidth, frame.FrameHeight)
	if m.err != "" {
		return ui.OverlayCentered(out, errordialog.Render(m.err), frame.FrameWidth, frame.FrameHeight)
	}
	return out
}

func (m *Model[T]) title() string {
	t := fmt.Sprintf("%s (%d)", m.cfg.Title, len(m.List.Filtered))
	if m.loading && len(m.List.Items) > 0 {
		t += " " + m.spinner.View()
	}
	return t
}

func (m *Model[T]) contentLines() int {
	frame := ui.ComputeFrameDimensions(m.width, m.height, 80, 20, m.headerLine(), m.footerLine())
	if frame.DesiredContentLines < 1 {
		return 1
	}
	return frame.DesiredContentLines
}

func (m *Model[T]) widths() []int {
	cols := make([]int, len(m.cfg.Columns))
	var flex []int
	for i, c := range m.cfg.Columns {
		cols[i] = c.Width
		if c.Flex {
			flex = append(flex, i)
		}
	}
	// two leading columns for the cursor/mark gutter
	return ui.DistributeColumns(m.width-2, len(cols)-1, colGap, cols, flex)
}

func (m *Model[T]) headerLine() string {
	if len(m.cfg.Columns) == 0 {
		return ""
	}
	widths := m.widths()
	cells := make([]string, len(m.cfg.Columns))
	for i, c := range m.cfg.Columns {
		title := c.Title
		if i == m.sortCol {
			title += " " + m.order.Arrow()
		}
		cells[i] = fit(title, widths[i])
	}
	line := "  " + strings.Join(cells, strings.Repeat(" ", colGap))
	if m.cfg.Header != nil {
		if extra := m.cfg.Header(); extra != "" {
			return headerStyle.Render(extra) + "\n" + headerStyle.Render(line)
		}
	}
	return headerStyle.Render(line)
}

func (m *Model[T]) footerLine() string {
	if m.List.Mode == filterlist.ModeSearching || m.List.Query != "" {
		return footerStyle.Render("/" + m.List.Query)
	}
	return ""
}

func (m *Model[T]) renderRow(item T, selected bool) string {
	widths := m.widths()
	cells := make([]string, len(m.cfg.Columns))
	for i, c := range m.cfg.Columns {
		cells[i] = fit(c.Value(item), widths[i])
	}
	gutter := "  "
	if m.cfg.Mark != nil {
		if mk := m.cfg.Mark(item); mk != "" {
			gutter = fit(mk, 2)
		}
	}
	line := strings.Join(cells, strings.Repeat(" ", colGap))
	if selected {
		return selectedStyle.Render(gutter + line)
	}
	if strings.TrimSpace(gutter) != "" {
		return markStyle.Render(gutter) + itemStyle.Render(line)
	}
	return itemStyle.Render(gutter + line)
}

// fit truncates s with an ellipsis or pads it to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) > w {
		r := []rune(s)
		if len(r) > w {
			if w > 1 {
				s = string(r[:w-1]) + "…"
			} else {
				s = string(r[:w])
			}
		}
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
