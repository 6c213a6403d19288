// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// Signal is implemented by messages delivered through the presenter
// channel. The app re-subscribes to the channel after each one.
type Signal interface {
	isSignal()
}

// LoadingChanged reports that a search started or finished.
type LoadingChanged struct {
	IsLoading bool
}

// ErrorShown carries a user-facing error or notice.
type ErrorShown struct {
	Message string
}

// ErrorCleared removes the current error or notice.
type ErrorCleared struct{}

// ResultsInfoShown describes the displayed results.
type ResultsInfoShown struct {
	Term  string
	Count int
}

// ResultsInfoCleared removes the results description.
type ResultsInfoCleared struct{}

// RowsChanged carries the result set in display order.
type RowsChanged struct {
	Rows []domain.ResultItem
}

// ThemeChanged reports a theme change made outside the TUI.
type ThemeChanged struct {
	Theme domain.Theme
}

func (LoadingChanged) isSignal()     {}
func (ErrorShown) isSignal()         {}
func (ErrorCleared) isSignal()       {}
func (ResultsInfoShown) isSignal()   {}
func (ResultsInfoCleared) isSignal() {}
func (RowsChanged) isSignal()        {}
func (ThemeChanged) isSignal()       {}

// SearchRequested is a command to perform a search.
type SearchRequested struct {
	Query domain.SearchQuery
}

// SearchFinished is returned by the search command once the controller
// has settled. Err is nil on success.
type SearchFinished struct {
	Query domain.SearchQuery
	Err   error
}

// ActionCompleted reports the outcome of a row action such as opening a preview.
type ActionCompleted struct {
	Message string
	Err     error
}

// Quit signals the application should exit.
type Quit struct{}
