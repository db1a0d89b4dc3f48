package app

import (
	"time"

	"assetops/backend"
	"assetops/config"
	"assetops/nav"
	"assetops/registry"
	"assetops/views/breadcrumb"
	"assetops/views/commandinput"
	"assetops/views/fallback"
	fleetstatusview "assetops/views/fleetstatus"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

// maxSyncRounds bounds how many commits one update may chain (an OnExit
// that navigates, a factory that redirects).
const maxSyncRounds = 8

// Model holds app state
type Model struct {
	store    *nav.Store
	router   *nav.Router
	resolver *nav.Resolver
	signals  *nav.Signals
	deps     view.Deps

	currentView view.View
	currentID   nav.ViewID

	fleet        *fleetstatusview.Model
	trail        *breadcrumb.Trail
	commandInput *commandinput.Model

	// transitions committed since the last sync, in order
	pending     []nav.Transition
	unsubscribe func()

	notice   string
	noticeAt time.Time
	now      func() time.Time

	width  int
	height int
}

// New wires the navigation controller to svc and mounts the store's
// initial view.
func New(cfg *config.Config, svc backend.Service) *Model {
	store := nav.NewStore(cfg.StartViewID())
	signals := nav.NewSignals()

	m := &Model{
		store:        store,
		router:       nav.NewRouter(store, signals, nav.WithDefaultSiteTab(cfg.SiteTab())),
		resolver:     nav.NewResolver(store),
		signals:      signals,
		fleet:        fleetstatusview.New(Version, svc, cfg.RefreshEvery()),
		trail:        breadcrumb.New(cfg.UI.BreadcrumbDepth),
		commandInput: commandinput.New(registry.Suggest),
		now:          time.Now,
		width:        80,
		height:       20,
	}
	m.deps = view.Deps{
		Router:   m.router,
		Resolver: m.resolver,
		Signals:  signals,
		Backend:  svc,
		Config:   *cfg,
		Notify:   m.setNotice,
	}
	m.unsubscribe = store.Subscribe(func(t nav.Transition) {
		m.pending = append(m.pending, t)
	})
	return m
}

// Init will be automatically called by Bubble Tea if the model implements the Model interface
// and is passed into the tea.NewProgram function.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.mount(m.store.CurrentView()), m.fleet.Init(), noticeTick())
}

// Close detaches the model from the store.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// CurrentView is the screen on display.
func (m *Model) CurrentView() view.View { return m.currentView }

func (m *Model) Router() *nav.Router     { return m.router }
func (m *Model) Resolver() *nav.Resolver { return m.resolver }
func (m *Model) Store() *nav.Store       { return m.store }
func (m *Model) Notice() string          { return m.notice }

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeAt = m.now()
}

func (m *Model) contentSize() (int, int) {
	return m.width, m.height - fleetstatusview.Height
}

// mount replaces the current screen with the one registered for id, built
// from a fresh snapshot. A screen whose required context is empty is
// replaced by the fallback.
func (m *Model) mount(id nav.ViewID) tea.Cmd {
	var exitCmd tea.Cmd
	if m.currentView != nil {
		exitCmd = m.currentView.OnExit()
	}

	w, h := m.contentSize()
	snap := m.store.Snapshot()

	var (
		next    view.View
		loadCmd tea.Cmd
	)
	reg, ok := viewRegistry[id]
	switch {
	case !ok:
		l().Errorf("no screen registered for %s", id)
		next = fallback.New(w, h, id, "", m.resolver)
	default:
		if missing, ok := missingKind(snap, reg.requires); ok {
			next = fallback.New(w, h, id, missing, m.resolver)
		} else {
			next, loadCmd = reg.factory(w, h, snap, m.deps)
		}
	}

	m.currentView = next
	m.currentID = id
	m.trail.Visit(id)
	l().Debugf("mounted %s", id)

	resizeCmd := handleViewResize(next, w, h)
	enterCmd := next.OnEnter()
	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func missingKind(snap nav.Snapshot, requires []nav.ContextKind) (nav.ContextKind, bool) {
	for _, k := range requires {
		p, ok := snap.Context(k)
		if !ok {
			return k, true
		}
		if c, ok := p.(nav.Completer); ok && !c.Complete() {
			return k, true
		}
	}
	return "", false
}

// syncView brings the screen in line with the store after an update. A
// commit that kept the view is delivered to the screen as a context change
// so it can refresh in place.
func (m *Model) syncView() tea.Cmd {
	var cmds []tea.Cmd
	for round := 0; len(m.pending) > 0; round++ {
		if round == maxSyncRounds {
			l().Warnf("navigation did not settle after %d rounds, dropping %d transitions", round, len(m.pending))
			m.pending = nil
			break
		}
		m.pending = m.pending[:0]

		current := m.store.CurrentView()
		if current == m.currentID && m.currentView != nil {
			msg := view.ContextChangedMsg{Snapshot: m.store.Snapshot()}
			cmds = append(cmds, m.currentView.Update(msg))
			continue
		}
		cmds = append(cmds, m.mount(current))
	}
	return tea.Batch(cmds...)
}
