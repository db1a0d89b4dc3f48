package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeTTL is how long a status-line notice stays up.
const noticeTTL = 6 * time.Second

type noticeTickMsg time.Time

func noticeTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return noticeTickMsg(t)
	})
}

func (m *Model) handleNoticeTick(msg noticeTickMsg) tea.Cmd {
	if m.notice != "" && time.Time(msg).Sub(m.noticeAt) >= noticeTTL {
		m.notice = ""
	}
	return noticeTick()
}
