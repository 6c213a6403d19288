package driving

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// HistoryService exposes the search history.
type HistoryService interface {
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
