package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// defaultHistoryLimit is used when callers ask for a non-positive limit.
const defaultHistoryLimit = 20

// HistoryService exposes recorded searches.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit entries, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, errors.New("history store not configured")
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// Clear removes all entries.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return errors.New("history store not configured")
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
