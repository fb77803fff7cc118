package session

import (
	"context"
	"sync"
)

// MemoryStore implements Store in process memory. Intended for use in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Values
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Values)}
}

// Get returns the value for key, or "" when unset.
func (s *MemoryStore) Get(_ context.Context, token, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token][key], nil
}

// Set writes key=value for the session.
func (s *MemoryStore) Set(_ context.Context, token, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[token] == nil {
		s.sessions[token] = make(Values)
	}
	s.sessions[token][key] = value
	return nil
}

// Delete removes a single key.
func (s *MemoryStore) Delete(_ context.Context, token, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions[token], key)
	return nil
}

// Clear removes every key held for the session.
func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Snapshot returns a point-in-time copy of all values for the session.
func (s *MemoryStore) Snapshot(_ context.Context, token string) (Values, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make(Values, len(s.sessions[token]))
	for k, v := range s.sessions[token] {
		values[k] = v
	}
	return values, nil
}
