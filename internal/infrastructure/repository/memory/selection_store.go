package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/selection"
)

type selectionEntry struct {
	state     selection.State
	expiresAt time.Time
}

// SelectionStore keeps per-session selections in process. Each Load of a live entry
// extends it by ttl; entries idle longer than ttl read as Unselected.
type SelectionStore struct {
	mu      sync.Mutex
	entries map[string]selectionEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewSelectionStore(ttl time.Duration) *SelectionStore {
	return &SelectionStore{
		entries: make(map[string]selectionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *SelectionStore) Load(_ context.Context, sessionID string) (selection.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok {
		return selection.Unselected(), nil
	}
	if s.ttl > 0 && !e.expiresAt.After(s.now()) {
		delete(s.entries, sessionID)
		return selection.Unselected(), nil
	}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
		s.entries[sessionID] = e
	}
	return e.state, nil
}

func (s *SelectionStore) Save(_ context.Context, sessionID string, state selection.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !state.IsSelected() {
		delete(s.entries, sessionID)
		return nil
	}

	e := selectionEntry{state: state}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.entries[sessionID] = e
	return nil
}

func (s *SelectionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// Sweep drops expired entries and reports how many were removed.
func (s *SelectionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		return 0
	}
	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !e.expiresAt.After(now) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *SelectionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
