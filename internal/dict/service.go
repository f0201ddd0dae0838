package dict

import (
	"context"
	"fmt"
	"sync"

	"github.com/f3rmion/readafter/internal/logger"
)

// Store holds user overrides of the default lists.
type Store interface {
	// Get returns the override for c; found is false when none is stored.
	Get(ctx context.Context, c Category) (words []string, found bool, err error)
	Put(ctx context.Context, c Category, words []string) error
	Delete(ctx context.Context, c Category) error
}

// Service merges default word lists with user overrides.
// Defaults are cached per category after their first load.
type Service struct {
	source Source
	store  Store

	mu       sync.RWMutex
	defaults map[Category][]string
}

// NewService creates a dictionary service. A nil source serves the embedded
// lists; a nil store disables overrides.
func NewService(source Source, store Store) *Service {
	if source == nil {
		source = EmbeddedSource{}
	}
	return &Service{
		source:   source,
		store:    store,
		defaults: make(map[Category][]string),
	}
}

// Defaults returns the default list for c. A missing or unreadable source
// yields an empty list.
func (s *Service) Defaults(c Category) []string {
	s.mu.RLock()
	words, ok := s.defaults[c]
	s.mu.RUnlock()
	if ok {
		return words
	}

	words, err := s.source.Load(c)
	if err != nil {
		logger.Warn("loading default %s dictionary: %v", c, err)
		words = nil
	}
	if words == nil {
		words = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, ok := s.defaults[c]; ok {
		return cached
	}
	s.defaults[c] = words
	return words
}

// Raw returns the list for c as stored: the override when present,
// otherwise the default.
func (s *Service) Raw(ctx context.Context, c Category) []string {
	if s.store != nil {
		words, found, err := s.store.Get(ctx, c)
		if err != nil {
			logger.Warn("reading %s override, using defaults: %v", c, err)
		} else if found {
			return words
		}
	}
	return s.Defaults(c)
}

// Get returns the normalised list for c.
func (s *Service) Get(ctx context.Context, c Category) []string {
	return normalize(c, s.Raw(ctx, c))
}

// Contains reports whether word is in category c.
func (s *Service) Contains(ctx context.Context, c Category, word string) bool {
	for _, w := range s.Get(ctx, c) {
		if w == word {
			return true
		}
	}
	return false
}

// MatchPrefix finds the longest word of c (or PauseProper) starting text.
func (s *Service) MatchPrefix(ctx context.Context, c Category, text string) (Match, bool) {
	lists := map[Category][]string{
		c:           s.Get(ctx, c),
		PauseProper: s.Get(ctx, PauseProper),
	}
	return NewLexicon(lists).MatchPrefix(c, text)
}

// Snapshot fetches every category once and returns an immutable Lexicon.
func (s *Service) Snapshot(ctx context.Context) *Lexicon {
	lists := make(map[Category][]string, len(Categories))
	for _, c := range AllCategories() {
		lists[c] = s.Get(ctx, c)
	}
	return NewLexicon(lists)
}

// Save stores words as the override for c.
func (s *Service) Save(ctx context.Context, c Category, words []string) error {
	if _, ok := Info(c); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	if s.store == nil {
		return fmt.Errorf("saving %s dictionary: no override store configured", c)
	}
	if err := s.store.Put(ctx, c, dedupe(words)); err != nil {
		return fmt.Errorf("saving %s dictionary: %w", c, err)
	}
	return nil
}

// Add appends words to the current list of c and saves it.
func (s *Service) Add(ctx context.Context, c Category, words ...string) error {
	current := append([]string(nil), s.Raw(ctx, c)...)
	return s.Save(ctx, c, append(current, words...))
}

// Remove deletes words from the current list of c and saves it.
func (s *Service) Remove(ctx context.Context, c Category, words ...string) error {
	drop := make(map[string]bool, len(words))
	for _, w := range words {
		drop[w] = true
	}
	var kept []string
	for _, w := range s.Raw(ctx, c) {
		if !drop[w] {
			kept = append(kept, w)
		}
	}
	if kept == nil {
		kept = []string{}
	}
	return s.Save(ctx, c, kept)
}

// Reset restores the default list of c.
func (s *Service) Reset(ctx context.Context, c Category) error {
	if _, ok := Info(c); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.Delete(ctx, c); err != nil {
		return fmt.Errorf("resetting %s dictionary: %w", c, err)
	}
	return nil
}

// ResetAll restores the defaults of every category.
func (s *Service) ResetAll(ctx context.Context) error {
	for _, c := range AllCategories() {
		if err := s.Reset(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
