package store

import (
	"context"
	"sync"
)

// Store holds the canonical in-memory event collection together with the
// loading flag and last error message the UI reads. The collection is a
// snapshot of the remote API: Refresh replaces it wholesale, while the
// mutating operations merge their results in locally until the next
// refresh reconciles.
//
// Bubble Tea runs commands on separate goroutines, so access to the held
// state is mutex-guarded.
type Store struct {
	client *Client

	mu      sync.RWMutex
	events  []Event
	loading bool
	lastErr string
}

// NewStore creates a store backed by the given client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Events returns a copy of the held collection.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Loading reports whether an operation is currently in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the message of the last failed operation, or "" if the most
// recent operation succeeded.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Refresh replaces the held collection with a fresh list from the API.
func (s *Store) Refresh(ctx context.Context) ([]Event, error) {
	s.begin()

	events, err := s.client.List(ctx)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	s.events = events
	s.finishLocked()
	s.mu.Unlock()
	return s.Events(), nil
}

// Create persists a draft and appends the returned record to the held
// collection. The caller is expected to follow up with a Refresh.
func (s *Store) Create(ctx context.Context, draft Draft) (Event, error) {
	s.begin()

	ev, err := s.client.Create(ctx, draft)
	if err != nil {
		s.fail(err)
		return Event{}, err
	}

	s.mu.Lock()
	s.events = append(s.events, ev)
	s.finishLocked()
	s.mu.Unlock()
	return ev, nil
}

// Update replaces the identified event and merges the returned record into
// the held collection by id.
func (s *Store) Update(ctx context.Context, id string, draft Draft) (Event, error) {
	s.begin()

	ev, err := s.client.Update(ctx, id, draft)
	if err != nil {
		s.fail(err)
		return Event{}, err
	}

	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i] = ev
		}
	}
	s.finishLocked()
	s.mu.Unlock()
	return ev, nil
}

// Remove deletes the identified event and filters it out of the held
// collection on success.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.begin()

	if err := s.client.Remove(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	kept := make([]Event, 0, len(s.events))
	for _, ev := range s.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	s.finishLocked()
	s.mu.Unlock()
	return nil
}

// Find returns the held event with the given id.
func (s *Store) Find(id string) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return Event{}, false
}

func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

// finishLocked clears the in-flight and error state. Callers hold s.mu.
func (s *Store) finishLocked() {
	s.loading = false
	s.lastErr = ""
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.loading = false
	s.lastErr = err.Error()
	s.mu.Unlock()
}
