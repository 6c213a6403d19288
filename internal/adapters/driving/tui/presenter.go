package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// DefaultPresenterBuffer is the number of signals that may be pending
// before new ones are dropped.
const DefaultPresenterBuffer = 256

// Ensure Presenter implements the interface.
var _ driving.Presenter = (*Presenter)(nil)

// Presenter turns controller signals into Bubbletea messages.
//
// Signals are queued on a buffered channel and never block the caller,
// so the controller may run inside a tea.Cmd. The program consumes the
// queue one message at a time through Listen.
type Presenter struct {
	signals chan tea.Msg
}

// NewPresenter creates a presenter with room for buffer pending signals.
func NewPresenter(buffer int) *Presenter {
	if buffer <= 0 {
		buffer = DefaultPresenterBuffer
	}
	return &Presenter{signals: make(chan tea.Msg, buffer)}
}

// Listen returns a command that waits for the next signal.
// It must be re-issued after each signal is handled.
func (p *Presenter) Listen() tea.Cmd {
	return func() tea.Msg {
		return <-p.signals
	}
}

// Send queues msg, dropping it when the queue is full.
func (p *Presenter) Send(msg messages.Signal) {
	select {
	case p.signals <- msg:
	default:
		logger.Warn("TUI signal queue full, dropping %T", msg)
	}
}

// Pending returns the number of queued signals.
func (p *Presenter) Pending() int {
	return len(p.signals)
}

// OnLoadingChanged implements driving.Presenter.
func (p *Presenter) OnLoadingChanged(isLoading bool) {
	p.Send(messages.LoadingChanged{IsLoading: isLoading})
}

// OnError implements driving.Presenter.
func (p *Presenter) OnError(message string) {
	p.Send(messages.ErrorShown{Message: message})
}

// OnErrorCleared implements driving.Presenter.
func (p *Presenter) OnErrorCleared() {
	p.Send(messages.ErrorCleared{})
}

// OnResultsInfo implements driving.Presenter.
func (p *Presenter) OnResultsInfo(term string, count int) {
	p.Send(messages.ResultsInfoShown{Term: term, Count: count})
}

// OnResultsInfoCleared implements driving.Presenter.
func (p *Presenter) OnResultsInfoCleared() {
	p.Send(messages.ResultsInfoCleared{})
}

// OnRowsChanged implements driving.Presenter.
func (p *Presenter) OnRowsChanged(rows []domain.ResultItem) {
	p.Send(messages.RowsChanged{Rows: slices.Clone(rows)})
}
