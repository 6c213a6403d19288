// Package domain defines the core business entities for tunesearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchQuery: A validated catalog search request
//   - ResultItem: A single catalog entry returned by the result provider
//   - SortState: The active table column and direction
//   - Theme: The persisted light/dark preference
//   - HistoryEntry: A record of one completed search
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
