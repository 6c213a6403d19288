package services

import (
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// Ensure DiscardPresenter implements the interface.
var _ driving.Presenter = DiscardPresenter{}

// DiscardPresenter ignores every signal. It is used by callers that only
// need the values returned from Search, such as the MCP server.
type DiscardPresenter struct{}

// OnLoadingChanged implements driving.Presenter.
func (DiscardPresenter) OnLoadingChanged(bool) {}

// OnError implements driving.Presenter.
func (DiscardPresenter) OnError(string) {}

// OnErrorCleared implements driving.Presenter.
func (DiscardPresenter) OnErrorCleared() {}

// OnResultsInfo implements driving.Presenter.
func (DiscardPresenter) OnResultsInfo(string, int) {}

// OnResultsInfoCleared implements driving.Presenter.
func (DiscardPresenter) OnResultsInfoCleared() {}

// OnRowsChanged implements driving.Presenter.
func (DiscardPresenter) OnRowsChanged([]domain.ResultItem) {}
