package app

import (
	"errors"
	"strings"

	"assetops/commands/api"
	"assetops/nav"
	"assetops/registry"
	"assetops/views/commandinput"
	fleetstatusview "assetops/views/fleetstatus"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles msg and then mounts whatever view the store committed to
// while handling it.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.syncView())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commandinput.SubmitMsg:
		return m.runCommand(msg.Command)

	case tea.WindowSizeMsg:
		return m.updateForResize(msg)

	case tea.KeyMsg:
		if msg.String() == ":" {
			// A dialog or a text field owns the colon.
			if view.Capturing(m.currentView) {
				return m.currentView.Update(msg)
			}
			if !m.commandInput.Visible() {
				return m.commandInput.Show()
			}
			return nil
		}

		// If command input is visible, forward all keys to it exclusively
		if m.commandInput.Visible() {
			return m.commandInput.Update(msg)
		}

		return m.handleKey(msg)

	case noticeTickMsg:
		return m.handleNoticeTick(msg)

	case fleetstatusview.Msg, fleetstatusview.ErrMsg, fleetstatusview.TickMsg, fleetstatusview.SpinnerTickMsg:
		return m.fleet.Update(msg)

	default:
		return m.delegateToCurrentView(msg)
	}
}

func (m *Model) runCommand(raw string) tea.Cmd {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	cmd, parsedArgs, err := api.ParseInput(raw)
	if err != nil {
		if errors.Is(err, api.ErrUnknown) {
			l().Debugf("unknown command %q", raw)
		}
		return m.commandInput.ShowError(err.Error())
	}

	ctx := registry.Context{Router: m.router, Resolver: m.resolver, Signals: m.signals}
	out, err := cmd.Execute(ctx, parsedArgs)
	if err != nil {
		return m.commandInput.ShowError(err.Error())
	}
	return out
}

func (m *Model) delegateToCurrentView(msg tea.Msg) tea.Cmd {
	if m.currentView == nil {
		return nil
	}
	return m.currentView.Update(msg)
}

func (m *Model) updateForResize(msg tea.WindowSizeMsg) tea.Cmd {
	// leave room for the helpbar, the command frame and the breadcrumb
	m.width = msg.Width - 4
	m.height = msg.Height - 10

	if m.currentView == nil {
		return nil
	}
	w, h := m.contentSize()
	return handleViewResize(m.currentView, w, h)
}

func handleViewResize(v view.View, width, height int) tea.Cmd {
	return v.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// Dialogs and text fields get every key, esc and q included.
	if view.Capturing(m.currentView) {
		return m.currentView.Update(msg)
	}

	switch msg.String() {
	case "esc", "q":
		return m.goBack(msg.String() == "q")
	case "?":
		if m.currentID != nav.ViewHelp {
			m.router.HandleViewChange(nav.ViewHelp)
			return nil
		}
	}

	return m.currentView.Update(msg)
}

// goBack navigates to the parent of the current view. On the dashboard q
// quits and esc does nothing.
func (m *Model) goBack(quitAtRoot bool) tea.Cmd {
	parent, ok := m.resolver.Back()
	if ok {
		l().Debugf("back from %s to %s", m.currentID, parent)
		return nil
	}
	if quitAtRoot {
		return m.quit()
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	var exitCmd tea.Cmd
	if m.currentView != nil {
		exitCmd = m.currentView.OnExit()
	}
	m.Close()
	return tea.Sequence(exitCmd, tea.Quit)
}
