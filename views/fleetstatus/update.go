package fleetstatusview

import (
	"fmt"

	"assetops/backend"
	"assetops/styles"
	"assetops/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Msg:
		m.setReading(msg)
		return nil

	case ErrMsg:
		m.loading = false
		m.err = msg.Err.Error()
		m.content = m.buildContent()
		return nil

	case TickMsg:
		return tea.Batch(LoadStatus(m.svc), m.tickCmd())

	case SpinnerTickMsg:
		m.spinner++
		needsUpdate := m.loading
		if m.blinkCount > 0 {
			if m.spinner%3 == 0 {
				m.blinkCount--
			}
			needsUpdate = true
		}
		if needsUpdate {
			m.content = m.buildContent()
		}
		return m.spinnerTickCmd()
	}
	return nil
}

func (m *Model) setReading(msg Msg) {
	m.err = ""
	first := m.loading
	m.loading = false
	if msg.Revision == m.revision {
		return
	}
	if !first {
		l().Debugf("revision %s -> %s", m.revision, msg.Revision)
		trend := 0
		switch {
		case msg.ActiveAlerts > m.reading.ActiveAlerts:
			trend = 1
		case msg.ActiveAlerts < m.reading.ActiveAlerts:
			trend = -1
		}
		if trend != 0 && trend != m.trend {
			m.blinkCount = 6
		}
		m.trend = trend
	}
	m.reading = msg
	m.revision = msg.Revision
	m.content = m.buildContent()
}

func (m *Model) buildContent() string {
	spin := ui.SpinnerCharAt(m.spinner)
	if m.loading {
		return content(m.version, spin, spin, spin, spin)
	}
	if m.err != "" {
		return content(m.version, "N/A", "N/A", "N/A", m.err)
	}

	r := m.reading
	fleet := fmt.Sprintf("%d (%d active, %d out, %d offline)",
		r.Assets, r.ByStatus[backend.AssetActive], r.ByStatus[backend.AssetCheckedOut], r.ByStatus[backend.AssetOffline])

	alerts := fmt.Sprintf("%d", r.ActiveAlerts)
	// Hide the arrow on odd blink counts, which makes it pulse.
	if m.blinkCount%2 == 0 {
		switch m.trend {
		case 1:
			alerts += " " + styles.TrendUp.Render("↑")
		case -1:
			alerts += " " + styles.TrendDown.Render("↓")
		}
	}
	rev := r.Revision
	if len(rev) > 8 {
		rev = rev[:8]
	}
	return content(m.version, fleet, alerts, fmt.Sprintf("%d", r.ByStatus[backend.AssetMaintenance]), rev)
}

func content(version, fleet, alerts, maintenance, revision string) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true)

	return fmt.Sprintf(
		"%s %s\n%s %s\n%s %s\n%s %s\n%s %s",
		labelStyle.Render("Version: "), version,
		labelStyle.Render("Fleet:   "), fleet,
		labelStyle.Render("Alerts:  "), alerts,
		labelStyle.Render("Service: "), maintenance,
		labelStyle.Render("Revision:"), revision,
	)
}
