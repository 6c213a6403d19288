package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
	nextID  int64
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{nextID: 1}
}

// Save records an entry and assigns it an ID.
func (s *HistoryStore) Save(_ context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, entry)
	return entry, nil
}

// Recent returns up to limit entries, newest first.
// Entries with equal timestamps are ordered by descending ID.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	result := slices.Clone(s.entries)
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b domain.HistoryEntry) int {
		if c := b.SearchedAt.Compare(a.SearchedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all entries.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
