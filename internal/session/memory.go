package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process session store used when Redis is not
// configured (local development) and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Identity
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Identity)}
}

func (s *MemoryStore) Create(_ context.Context, ident Identity) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = ident
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Identity, bool, error) {
	s.mu.Lock()
	ident, ok := s.sessions[id]
	s.mu.Unlock()
	return ident, ok, nil
}

func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
