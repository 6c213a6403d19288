package driven

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// CatalogProvider fetches results from the external result provider.
// Implementations issue exactly one request per call and do not retry.
type CatalogProvider interface {
	// Search returns the decoded items for a normalised query.
	// An empty slice with a nil error means the provider had no matches.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error)
}
