package cli

import (
	"slices"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// Ensure presenter implements the interface.
var _ driving.Presenter = (*presenter)(nil)

// presenter keeps the latest display state of a one-shot search so the
// command can print it once the search has settled.
type presenter struct {
	rows    []domain.ResultItem
	message string
	term    string
	count   int
	hasInfo bool
}

func (p *presenter) OnLoadingChanged(isLoading bool) {
	if isLoading {
		logger.Debug("Fetching results...")
		return
	}
	logger.Debug("Fetch finished")
}

func (p *presenter) OnError(message string) {
	p.message = message
}

func (p *presenter) OnErrorCleared() {
	p.message = ""
}

func (p *presenter) OnResultsInfo(term string, count int) {
	p.term = term
	p.count = count
	p.hasInfo = true
}

func (p *presenter) OnResultsInfoCleared() {
	p.term = ""
	p.count = 0
	p.hasInfo = false
}

func (p *presenter) OnRowsChanged(rows []domain.ResultItem) {
	p.rows = slices.Clone(rows)
}
