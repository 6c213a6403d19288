package domain

import (
	"slices"
	"strings"
)

// SortColumn identifies a sortable table column.
type SortColumn string

// Sortable columns.
const (
	SortByTitle  SortColumn = "title"
	SortByArtist SortColumn = "artist"
	SortByPrice  SortColumn = "price"
)

// IsValid returns true if the column is sortable.
func (c SortColumn) IsValid() bool {
	switch c {
	case SortByTitle, SortByArtist, SortByPrice:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c SortColumn) String() string {
	return string(c)
}

// AllSortColumns returns the sortable columns in table order.
func AllSortColumns() []SortColumn {
	return []SortColumn{SortByTitle, SortByArtist, SortByPrice}
}

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// String returns the string representation.
func (d SortDirection) String() string {
	return string(d)
}

// SortState is the active column and direction. Exactly one column is
// active at a time.
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

// DefaultSortState sorts by title, ascending.
func DefaultSortState() SortState {
	return SortState{Column: SortByTitle, Direction: Ascending}
}

// Toggle returns the state after the user selects column.
// Selecting the active column flips the direction; any other column
// becomes active in ascending order.
func (s SortState) Toggle(column SortColumn) SortState {
	if s.Column == column {
		if s.Direction == Ascending {
			return SortState{Column: column, Direction: Descending}
		}
		return SortState{Column: column, Direction: Ascending}
	}
	return SortState{Column: column, Direction: Ascending}
}

// SortItems orders items in place according to state.
// The sort is stable: items with equal keys keep their relative order.
func SortItems(items []ResultItem, state SortState) {
	if !state.Column.IsValid() {
		return
	}
	slices.SortStableFunc(items, func(a, b ResultItem) int {
		c := compareBy(a, b, state.Column)
		if state.Direction == Descending {
			return -c
		}
		return c
	})
}

func compareBy(a, b ResultItem, column SortColumn) int {
	switch column {
	case SortByTitle:
		return strings.Compare(strings.ToLower(a.TrackName), strings.ToLower(b.TrackName))
	case SortByArtist:
		return strings.Compare(strings.ToLower(a.ArtistName), strings.ToLower(b.ArtistName))
	case SortByPrice:
		pa, pb := a.Price(), b.Price()
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}
