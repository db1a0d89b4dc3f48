package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const RequestTimeout = 10 * time.Second

// Request runs a backend call off the update loop. A failure comes back as
// ErrorMsg; a success is wrapped by done.
func Request[T any](op string, call func(ctx context.Context) (T, error), done func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
		defer cancel()
		v, err := call(ctx)
		if err != nil {
			return ErrorMsg{Op: op, Err: err}
		}
		return done(v)
	}
}
