package domain

import "time"

// SearchOutcome classifies how a search ended.
type SearchOutcome string

// Search outcomes.
const (
	OutcomeSuccess SearchOutcome = "success"
	OutcomeEmpty   SearchOutcome = "empty"
	OutcomeFailed  SearchOutcome = "failed"
)

// IsValid returns true if the outcome is recognised.
func (o SearchOutcome) IsValid() bool {
	switch o {
	case OutcomeSuccess, OutcomeEmpty, OutcomeFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o SearchOutcome) String() string {
	return string(o)
}

// HistoryEntry records one completed search. It never holds result items.
type HistoryEntry struct {
	// ID is assigned by the store.
	ID int64

	// Term is the trimmed search term.
	Term string

	// Entity is the entity kind searched.
	Entity EntityKind

	// Limit is the requested result limit.
	Limit int

	// Outcome is the terminal state the search reached.
	Outcome SearchOutcome

	// Count is the number of results returned.
	Count int

	// RequestID correlates the entry with log lines.
	RequestID string

	// SearchedAt is when the search completed.
	SearchedAt time.Time
}
