package fleetstatusview

import (
	"context"
	"time"

	"assetops/backend"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const readTimeout = 5 * time.Second

type Model struct {
	svc     backend.Service
	content string
	version string

	reading  Msg
	revision string
	err      string

	updateInterval time.Duration

	loading bool
	spinner int

	// trend of the active alert count since the previous reading
	trend      int
	blinkCount int
}

func New(version string, svc backend.Service, every time.Duration) *Model {
	m := &Model{
		svc:            svc,
		version:        version,
		updateInterval: every,
		loading:        true,
	}
	m.content = m.buildContent()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(LoadStatus(m.svc), m.tickCmd(), m.spinnerTickCmd())
}

// Revision is the backend revision of the last reading.
func (m *Model) Revision() string { return m.revision }

func (m *Model) Reading() Msg { return m.reading }

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.updateInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) spinnerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

// LoadStatus reads the fleet counts and the backend revision together.
// The panel only redraws when the revision moved.
func LoadStatus(svc backend.Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()

		var (
			msg    = Msg{ByStatus: map[backend.AssetStatus]int{}}
			assets []backend.Asset
			alerts []backend.Alert
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			assets, err = svc.ListAssets(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			alerts, err = svc.ListAlerts(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.Revision, err = svc.Revision(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			l().Warnf("fleet status: %v", err)
			return ErrMsg{Err: err}
		}

		msg.Assets = len(assets)
		for _, a := range assets {
			msg.ByStatus[a.Status]++
		}
		for _, a := range alerts {
			if a.Status == backend.AlertActive {
				msg.ActiveAlerts++
			}
		}
		return msg
	}
}
