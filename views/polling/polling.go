// Package polling refreshes a screen on an interval, but only hands it data
// when something changed since the last poll.
package polling

import (
	"context"
	"time"

	"assetops/backend"
	opslog "assetops/utils/log"
	"assetops/views/view"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func l() *opslog.Logger {
	return opslog.Component("polling")
}

// TickMsg asks the poller with the same id to check for changes.
type TickMsg struct {
	ID uuid.UUID
}

// ResultMsg is one poll's outcome, applied on the update loop.
type ResultMsg[T any] struct {
	ID    uuid.UUID
	Items []T
	Hash  uint64
	Err   error
}

// Poller provides generic polling functionality for any view
type Poller[T any] struct {
	id       uuid.UUID
	interval time.Duration
	load     func(ctx context.Context) ([]T, error)
	lastHash uint64
	seen     bool
	stopped  bool
}

func New[T any](interval time.Duration, load func(ctx context.Context) ([]T, error)) *Poller[T] {
	return &Poller[T]{
		id:       uuid.New(),
		interval: interval,
		load:     load,
	}
}

// TickCmd schedules the next check. A stopped poller schedules nothing.
func (p *Poller[T]) TickCmd() tea.Cmd {
	if p.stopped {
		return nil
	}
	id := p.id
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// Stop ends polling; ticks already in flight are ignored.
func (p *Poller[T]) Stop() { p.stopped = true }

// Seed records items loaded elsewhere, so the next poll only reports a
// change against them.
func (p *Poller[T]) Seed(items []T) {
	h, err := backend.HashOf(items)
	if err != nil {
		l().Warnf("hash seed: %v", err)
		return
	}
	p.lastHash, p.seen = h, true
}

func (p *Poller[T]) check() tea.Cmd {
	id, load := p.id, p.load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), view.RequestTimeout)
		defer cancel()
		items, err := load(ctx)
		if err != nil {
			return ResultMsg[T]{ID: id, Err: err}
		}
		h, err := backend.HashOf(items)
		return ResultMsg[T]{ID: id, Items: items, Hash: h, Err: err}
	}
}

// Update handles the poller's own messages. changed is true with the new
// items when they differ from the last poll. handled is false for any
// other message.
func (p *Poller[T]) Update(msg tea.Msg) (items []T, changed, handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != p.id {
			return nil, false, false, nil
		}
		if p.stopped {
			return nil, false, true, nil
		}
		return nil, false, true, p.check()

	case ResultMsg[T]:
		if msg.ID != p.id {
			return nil, false, false, nil
		}
		if msg.Err != nil {
			l().Warnf("poll failed: %v", msg.Err)
			return nil, false, true, p.TickCmd()
		}
		if p.seen && msg.Hash == p.lastHash {
			return nil, false, true, p.TickCmd()
		}
		l().Debugf("change detected, %d items", len(msg.Items))
		p.lastHash, p.seen = msg.Hash, true
		return msg.Items, true, true, p.TickCmd()
	}
	return nil, false, false, nil
}
