package dashboardview

import (
	"strings"

	"assetops/backend"
	"assetops/ui"
	"assetops/ui/components/errordialog"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var statusOrder = []backend.AssetStatus{
	backend.AssetActive, backend.AssetIdle, backend.AssetCheckedOut,
	backend.AssetMaintenance, backend.AssetOffline,
}

func (m *Model) View() string {
	frame := ui.ComputeFrameDimensions(m.width, m.height, 80, 20, "", "")
	if !m.loaded {
		body := " " + m.spinner.View() + " loading fleet…"
		return ui.RenderFramedBoxHeight("Dashboard", "", body, "", frame.FrameWidth, frame.FrameHeight)
	}

	p := m.printer
	s := m.summary
	var b strings.Builder
	b.WriteString(labelStyle.Render("Fleet") + "\n")
	b.WriteString(p.Sprintf("  %s assets\n", numberStyle.Render(p.Sprintf("%d", s.Assets))))
	for _, st := range statusOrder {
		b.WriteString(p.Sprintf("  %-12s %6d\n", st, s.ByStatus[st]))
	}
	b.WriteString("\n" + labelStyle.Render("Work") + "\n")
	b.WriteString(p.Sprintf("  %-12s %6d\n", "alerts", s.ActiveAlerts))
	b.WriteString(p.Sprintf("  %-12s %6d\n", "maintenance", s.OpenTasks))
	b.WriteString(p.Sprintf("  %-12s %6d\n", "issues", s.OpenIssues))

	b.WriteString("\n" + labelStyle.Render("Needs attention") + "\n")
	if len(s.Attention) == 0 {
		b.WriteString(faintStyle.Render("  all assets healthy") + "\n")
	}
	for i, a := range s.Attention {
		line := p.Sprintf("  %-8s %-18s %-12s %3d%%", a.ID, a.Name, a.Status, a.Battery)
		if i == m.cursor {
			line = selStyle.Render(line)
		} else {
			line = warnStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	footer := faintStyle.Render("revision " + s.Revision)
	out := ui.RenderFramedBoxHeight("Dashboard", "", strings.TrimRight(b.String(), "\n"), footer, frame.FrameWidth, frame.FrameHeight)
	if m.err != "" {
		return ui.OverlayCentered(out, errordialog.Render(m.err), frame.FrameWidth, frame.FrameHeight)
	}
	return out
}
