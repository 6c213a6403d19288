package driving

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// SearchController owns the displayed result set and its sort order.
type SearchController interface {
	// Search fetches results for query and replaces the result set.
	// It returns a *domain.SearchError for validation failures, fetch
	// failures and empty results, or domain.ErrSuperseded when a newer
	// search was issued before this one completed.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ResultItem, error)

	// Sort selects column, flipping the direction if it is already active,
	// and re-orders the current result set without fetching.
	Sort(column domain.SortColumn)

	// SortState returns the active sort.
	SortState() domain.SortState

	// Rows returns a copy of the current result set in display order.
	Rows() []domain.ResultItem
}

// Presenter receives display signals from a SearchController.
// Implementations must not block for long; they are called from the
// goroutine running the search.
type Presenter interface {
	// OnLoadingChanged reports the start and end of one search.
	OnLoadingChanged(isLoading bool)

	// OnError shows a user-facing message.
	OnError(message string)

	// OnErrorCleared hides the current message.
	OnErrorCleared()

	// OnResultsInfo reports the term and number of results shown.
	OnResultsInfo(term string, count int)

	// OnResultsInfoCleared hides the results summary.
	OnResultsInfoCleared()

	// OnRowsChanged delivers the result set in display order.
	OnRowsChanged(rows []domain.ResultItem)
}
