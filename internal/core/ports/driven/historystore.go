package driven

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// HistoryStore persists the search history.
type HistoryStore interface {
	// Save records an entry and returns it with its assigned ID.
	Save(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error)

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
