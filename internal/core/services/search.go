package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// Ensure SearchTableController implements the interface.
var _ driving.SearchController = (*SearchTableController)(nil)

// SearchTableController fetches catalog results, keeps them in display
// order and reports progress to a presenter.
//
// Each search is tagged with a sequence number when it is issued. A
// response that arrives after a newer search was issued is discarded, so
// the displayed rows always belong to the most recently issued search.
type SearchTableController struct {
	provider     driven.CatalogProvider
	presenter    driving.Presenter
	historyStore driven.HistoryStore

	newRequestID func() string
	now          func() time.Time

	// mu guards the fields below and is held while rows are presented,
	// so presenters must not call back into the controller.
	mu    sync.Mutex
	items []domain.ResultItem
	sort  domain.SortState
	seq   uint64
}

// NewSearchTableController creates a controller with an empty result set
// sorted by title. A nil presenter discards all signals.
func NewSearchTableController(
	provider driven.CatalogProvider,
	presenter driving.Presenter,
) *SearchTableController {
	if presenter == nil {
		presenter = DiscardPresenter{}
	}
	return &SearchTableController{
		provider:     provider,
		presenter:    presenter,
		newRequestID: uuid.NewString,
		now:          time.Now,
		sort:         domain.DefaultSortState(),
	}
}

// SetHistoryStore enables recording of completed searches.
func (c *SearchTableController) SetHistoryStore(store driven.HistoryStore) {
	c.historyStore = store
}

// Search fetches results for query and replaces the result set.
func (c *SearchTableController) Search(
	ctx context.Context, query domain.SearchQuery,
) ([]domain.ResultItem, error) {
	logger.Section("Catalog Search")

	q, err := query.Normalize()
	if err != nil {
		logger.Debug("Rejected query %q: %v", query.Term, err)
		return nil, err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	requestID := c.newRequestID()
	logger.Debug("Request %s (#%d): term=%q entity=%s limit=%d",
		requestID, seq, q.Term, q.Entity, q.Limit)

	c.presenter.OnLoadingChanged(true)
	defer c.presenter.OnLoadingChanged(false)
	c.presenter.OnErrorCleared()
	c.presenter.OnResultsInfoCleared()

	items, fetchErr := c.fetch(ctx, q)

	rows, outcome, err := c.settle(seq, q, items, fetchErr)
	if outcome == "" {
		logger.Debug("Request %s superseded, response discarded", requestID)
		return nil, err
	}

	switch outcome {
	case domain.OutcomeFailed:
		logger.Warn("Request %s failed: %v", requestID, fetchErr)
	case domain.OutcomeEmpty:
		logger.Info("Request %s: no results for %q", requestID, q.Term)
	case domain.OutcomeSuccess:
		logger.Info("Request %s: %d results for %q", requestID, len(rows), q.Term)
	}

	c.record(ctx, domain.HistoryEntry{
		Term:       q.Term,
		Entity:     q.Entity,
		Limit:      q.Limit,
		Outcome:    outcome,
		Count:      len(rows),
		RequestID:  requestID,
		SearchedAt: c.now(),
	})

	return rows, err
}

// fetch calls the provider, turning a panic into an error so the loading
// state is always left.
func (c *SearchTableController) fetch(
	ctx context.Context, q domain.SearchQuery,
) (items []domain.ResultItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("catalog provider panic: %v", r)
		}
	}()

	if c.provider == nil {
		return nil, fmt.Errorf("catalog provider not configured")
	}
	return c.provider.Search(ctx, q)
}

// settle applies a response to the result set and presents it.
// It returns an empty outcome when the response was superseded.
func (c *SearchTableController) settle(
	seq uint64, q domain.SearchQuery, items []domain.ResultItem, fetchErr error,
) ([]domain.ResultItem, domain.SearchOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return nil, "", domain.ErrSuperseded
	}

	switch {
	case fetchErr != nil:
		c.items = nil
		c.presenter.OnRowsChanged([]domain.ResultItem{})
		c.presenter.OnError(domain.MessageFetchFailed)
		return nil, domain.OutcomeFailed, domain.NewFetchError(fetchErr)

	case len(items) == 0:
		c.items = nil
		c.presenter.OnRowsChanged([]domain.ResultItem{})
		c.presenter.OnError(domain.MessageNoResults)
		return nil, domain.OutcomeEmpty, domain.NewEmptyResultsError()

	default:
		c.items = slices.Clone(items)
		domain.SortItems(c.items, c.sort)
		c.presenter.OnRowsChanged(slices.Clone(c.items))
		c.presenter.OnResultsInfo(q.Term, len(c.items))
		return slices.Clone(c.items), domain.OutcomeSuccess, nil
	}
}

// record saves a history entry; failures are logged only.
func (c *SearchTableController) record(ctx context.Context, entry domain.HistoryEntry) {
	if c.historyStore == nil {
		return
	}
	if _, err := c.historyStore.Save(context.WithoutCancel(ctx), entry); err != nil {
		logger.Warn("Saving history for request %s: %v", entry.RequestID, err)
	}
}

// Sort selects column and re-orders the current result set in place.
// With no results only the sort state changes.
func (c *SearchTableController) Sort(column domain.SortColumn) {
	if !column.IsValid() {
		logger.Warn("Ignoring sort on unknown column %q", column)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sort = c.sort.Toggle(column)
	logger.Debug("Sort: %s %s", c.sort.Column, c.sort.Direction)

	if len(c.items) == 0 {
		return
	}
	domain.SortItems(c.items, c.sort)
	c.presenter.OnRowsChanged(slices.Clone(c.items))
}

// SortState returns the active sort.
func (c *SearchTableController) SortState() domain.SortState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

// Rows returns a copy of the current result set in display order.
func (c *SearchTableController) Rows() []domain.ResultItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}
