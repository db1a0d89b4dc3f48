// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package nav

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"

	opslog "assetops/utils/log"
)

func l() *opslog.Logger {
	return opslog.Component("nav")
}

// Transition describes one committed view change.
type Transition struct {
	ID    uuid.UUID
	From  ViewID
	To    ViewID
	Kinds []ContextKind
	At    time.Time
}

// Snapshot is a consistent copy of the view and its slots.
type Snapshot struct {
	View  ViewID
	Slots Slots
	Last  Transition
}

func (s Snapshot) Context(kind ContextKind) (Payload, bool) {
	return s.Slots.Context(kind)
}

type listener struct {
	id int
	fn func(Transition)
}

// Store owns the current view and one slot per context kind. It applies
// changes all-or-nothing and has no navigation policy of its own; that
// lives in Router and Resolver.
type Store struct {
	mu        sync.RWMutex
	machine   *fsm.FSM
	slots     Slots
	last      Transition
	listeners []listener
	nextID    int
	now       func() time.Time
}

func eventName(v ViewID) string { return "to:" + string(v) }

// NewStore creates a store on the given view with empty context. An
// unknown view falls back to the dashboard.
func NewStore(initial ViewID) *Store {
	if !initial.Valid() {
		if initial != "" {
			l().Warnf("unknown initial view %q, starting on %s", initial, ViewDashboard)
		}
		initial = ViewDashboard
	}

	states := make([]string, 0, len(allViews))
	for _, v := range allViews {
		states = append(states, string(v))
	}
	events := make(fsm.Events, 0, len(allViews))
	for _, v := range allViews {
		events = append(events, fsm.EventDesc{Name: eventName(v), Src: states, Dst: string(v)})
	}

	s := &Store{
		slots: Slots{},
		now:   time.Now,
	}
	s.machine = fsm.NewFSM(
		string(initial),
		events,
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				l().Debugf("view %s -> %s", e.Src, e.Dst)
			},
		},
	)
	s.last = Transition{To: initial, At: s.now()}
	return s
}

func (s *Store) CurrentView() ViewID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ViewID(s.machine.Current())
}

func (s *Store) Context(kind ContextKind) (Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.slots.Context(kind)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		View:  ViewID(s.machine.Current()),
		Slots: maps.Clone(s.slots),
		Last:  s.last,
	}
}

func (s *Store) Last() Transition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Subscribe registers fn to run after every committed SetView. The returned
// func removes it.
func (s *Store) Subscribe(fn func(Transition)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, ln := range s.listeners {
			if ln.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// SetView makes view current and merges patch into the slots in one step.
// On error neither the view nor the slots change. Setting the view that is
// already current still applies the patch.
func (s *Store) SetView(view ViewID, patch Patch) (Transition, error) {
	if !view.Valid() {
		return Transition{}, fmt.Errorf("set view: %w: %q", ErrUnknownView, view)
	}

	s.mu.Lock()
	from := ViewID(s.machine.Current())
	next := patch.applyTo(s.slots)

	if err := s.machine.Event(context.Background(), eventName(view)); err != nil {
		var same fsm.NoTransitionError
		if !errors.As(err, &same) {
			s.mu.Unlock()
			return Transition{}, fmt.Errorf("set view %s: %w", view, err)
		}
	}

	t := Transition{
		ID:    uuid.New(),
		From:  from,
		To:    view,
		Kinds: patch.Kinds(),
		At:    s.now(),
	}
	s.slots = next
	s.last = t
	listeners := make([]listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, ln := range listeners {
		ln.fn(t)
	}
	return t, nil
}
