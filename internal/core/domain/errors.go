package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Search outcomes. Exactly one of ErrValidation, ErrFetch or
	// ErrEmptyResults classifies a failed search.

	// ErrValidation indicates the query was rejected before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrFetch indicates the result provider could not be reached or
	// returned an unusable response.
	ErrFetch = errors.New("fetch failed")

	// ErrEmptyResults indicates a valid response without any matches.
	// It is informational rather than a failure.
	ErrEmptyResults = errors.New("no results")

	// ErrSuperseded indicates a newer search was issued while this one
	// was in flight, so its response was discarded.
	ErrSuperseded = errors.New("search superseded")
)

// User-facing messages for search outcomes.
const (
	MessageEmptyTerm    = "Please enter a search term"
	MessageNoResults    = "No results found. Try a different search term."
	MessageFetchFailed  = "Failed to fetch music data. Please check your connection and try again."
	messageInvalidQuery = "Invalid search options"
)

// SearchError is the outcome of a search that did not produce rows.
// Message is safe to show to users; Err holds the diagnostic cause and
// must never be displayed.
type SearchError struct {
	// Kind is one of ErrValidation, ErrFetch or ErrEmptyResults.
	Kind error

	// Message is the user-facing text.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error returns the user-facing message.
func (e *SearchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "search failed"
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *SearchError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewValidationError creates a validation outcome.
func NewValidationError(message string, cause error) *SearchError {
	return &SearchError{Kind: ErrValidation, Message: message, Err: cause}
}

// NewFetchError creates a fetch failure outcome with the generic message.
func NewFetchError(cause error) *SearchError {
	return &SearchError{Kind: ErrFetch, Message: MessageFetchFailed, Err: cause}
}

// NewEmptyResultsError creates the informational no-results outcome.
func NewEmptyResultsError() *SearchError {
	return &SearchError{Kind: ErrEmptyResults, Message: MessageNoResults}
}

// UserMessage returns the text that may be shown for err.
// Errors that are not SearchErrors are reported as fetch failures so
// raw transport text never reaches the display layer.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *SearchError
	if errors.As(err, &se) {
		return se.Error()
	}
	return MessageFetchFailed
}
