package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoSearchController indicates that no search controller was provided.
	ErrNoSearchController = errors.New("search controller is required")

	// ErrNoActionService indicates that no result action service was provided.
	ErrNoActionService = errors.New("result action service is required")
)
