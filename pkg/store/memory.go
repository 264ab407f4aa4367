package store

import (
	"context"
	"sync"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// MemoryStore is an in-memory scene archive. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	scenes map[string]*scene.Scene
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenes: make(map[string]*scene.Scene)}
}

// Put archives a scene under its pass ID.
func (s *MemoryStore) Put(_ context.Context, sc *scene.Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenes[sc.PassID] = sc
	return nil
}

// Get returns the scene with the given pass ID, or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, passID string) (*scene.Scene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.scenes[passID]
	if !ok {
		return nil, ErrNotFound
	}
	return sc, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
