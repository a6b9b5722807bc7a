// Package session owns session state and lifecycle transitions.
package session

import (
	"sync"

	"github.com/mockview/mockview/internal/interview"
)

// Store abstracts session storage so a persistent backing store can be
// substituted without touching the controller. Implementations guard their
// own internal structures; the sessions themselves are still owned by a
// single logical caller each.
type Store interface {
	Get(id string) (*interview.Session, error)
	Put(session *interview.Session)
	Delete(id string) error
	Len() int
}

// MemoryStore is the in-process Store used by default.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*interview.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*interview.Session)}
}

// Get returns the session with the given id or a SessionNotFoundError.
func (s *MemoryStore) Get(id string) (*interview.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, &interview.SessionNotFoundError{ID: id}
	}
	return session, nil
}

// Put stores the session under its id, replacing any previous entry.
func (s *MemoryStore) Put(session *interview.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Delete removes the session or returns a SessionNotFoundError.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return &interview.SessionNotFoundError{ID: id}
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
