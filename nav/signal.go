package nav

import "sync"

// Signals holds cross-cutting annotations that live beside the view state.
// Navigation never touches them; only an explicit Clear does.
type Signals struct {
	mu        sync.RWMutex
	highlight string
}

func NewSignals() *Signals {
	return &Signals{}
}

// Highlight marks an asset for the map. An empty id is ignored.
func (s *Signals) Highlight(assetID string) {
	if assetID == "" {
		return
	}
	s.mu.Lock()
	s.highlight = assetID
	s.mu.Unlock()
}

func (s *Signals) Highlighted() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlight, s.highlight != ""
}

func (s *Signals) ClearHighlight() {
	s.mu.Lock()
	s.highlight = ""
	s.mu.Unlock()
}
