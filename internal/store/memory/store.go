// Package memory provides an in-process dictionary override store.
package memory

import (
	"context"
	"sync"

	"github.com/f3rmion/readafter/internal/dict"
)

// Store keeps overrides in a map. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	words map[dict.Category][]string
}

// New creates an empty store.
func New() *Store {
	return &Store{words: make(map[dict.Category][]string)}
}

// Get returns a copy of the override for c.
func (s *Store) Get(_ context.Context, c dict.Category) ([]string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.words[c]
	if !ok {
		return nil, false, nil
	}
	return append([]string{}, words...), true, nil
}

// Put replaces the override for c.
func (s *Store) Put(_ context.Context, c dict.Category, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[c] = append([]string{}, words...)
	return nil
}

// Delete removes the override for c.
func (s *Store) Delete(_ context.Context, c dict.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.words, c)
	return nil
}
