package services

import (
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// SortTo selects columns on c until its sort state equals want.
// It takes at most two Sort calls: one to activate the column and one
// to flip the direction. Invalid states are ignored.
func SortTo(c driving.SearchController, want domain.SortState) {
	if !want.Column.IsValid() {
		return
	}
	if want.Direction != domain.Ascending && want.Direction != domain.Descending {
		return
	}
	for range 2 {
		if c.SortState() == want {
			return
		}
		c.Sort(want.Column)
	}
}
