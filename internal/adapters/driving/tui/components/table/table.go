// Package table provides the sortable result table for the TUI.
package table

import (
	"slices"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// Column indexes in display order.
const (
	colTitle = iota
	colArtist
	colAlbum
	colPrice
	colDuration
	colGenre
	colPreview
	numColumns
)

// Fixed widths; the remaining space goes to the text columns.
const (
	priceWidth    = 8
	durationWidth = 6
	previewWidth  = 10
	cellPadding   = 2
	minTextWidth  = 6
)

// Sort direction indicators appended to the active header.
const (
	ascIndicator  = " ▲"
	descIndicator = " ▼"
)

// previewMarker is shown for rows with a playable preview.
const previewMarker = "▶ play"

var headers = [numColumns]string{"Title", "Artist", "Album", "Price", "Time", "Genre", "Preview"}

// ResultTable renders ResultItems as a scrollable, sortable table.
type ResultTable struct {
	model  table.Model
	styles *styles.Styles
	items  []domain.ResultItem
	sort   domain.SortState
	width  int
	height int
}

// NewResultTable creates an empty table sorted by title.
func NewResultTable(s *styles.Styles) *ResultTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	t := &ResultTable{
		styles: s,
		sort:   domain.DefaultSortState(),
		width:  80,
		height: 10,
	}
	t.model = table.New(
		table.WithColumns(t.columns()),
		table.WithHeight(t.height),
	)
	t.ApplyStyles()
	return t
}

// Init initialises the table.
func (t *ResultTable) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys while the table is focused.
func (t *ResultTable) Update(msg tea.Msg) (*ResultTable, tea.Cmd) {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the table, or a placeholder when there are no rows.
func (t *ResultTable) View() string {
	if len(t.items) == 0 {
		return t.styles.Muted.Render("No results to display.")
	}
	return t.styles.Border.Render(t.model.View())
}

// ApplyStyles copies the current styles into the table. It must be called
// after the shared styles change.
func (t *ResultTable) ApplyStyles() {
	t.model.SetStyles(table.Styles{
		Header:   t.styles.TableHeader,
		Cell:     t.styles.TableCell,
		Selected: t.styles.TableSelected,
	})
}

// SetItems replaces the rows, keeping the cursor in range.
func (t *ResultTable) SetItems(items []domain.ResultItem) {
	t.items = slices.Clone(items)

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item.Row()))
	}
	t.model.SetRows(rows)

	switch {
	case len(rows) == 0:
		t.model.SetCursor(0)
	case t.model.Cursor() >= len(rows):
		t.model.SetCursor(len(rows) - 1)
	}
}

// Items returns the displayed items in display order.
func (t *ResultTable) Items() []domain.ResultItem {
	return slices.Clone(t.items)
}

// SetSort updates the header sort indicator.
func (t *ResultTable) SetSort(state domain.SortState) {
	t.sort = state
	t.model.SetColumns(t.columns())
}

// Sort returns the sort shown in the header.
func (t *ResultTable) Sort() domain.SortState {
	return t.sort
}

// Selected returns the item under the cursor, or nil.
func (t *ResultTable) Selected() *domain.ResultItem {
	i := t.model.Cursor()
	if i < 0 || i >= len(t.items) {
		return nil
	}
	item := t.items[i]
	return &item
}

// Cursor returns the cursor index.
func (t *ResultTable) Cursor() int {
	return t.model.Cursor()
}

// Focus gives the table keyboard focus.
func (t *ResultTable) Focus() {
	t.model.Focus()
}

// Blur removes keyboard focus.
func (t *ResultTable) Blur() {
	t.model.Blur()
}

// Focused returns whether the table has focus.
func (t *ResultTable) Focused() bool {
	return t.model.Focused()
}

// SetDimensions sets the outer size of the table.
func (t *ResultTable) SetDimensions(width, height int) {
	t.width = width
	t.height = max(height, 3)
	t.model.SetColumns(t.columns())
	t.model.SetWidth(width)
	// Border and header take three lines.
	t.model.SetHeight(max(t.height-3, 1))
}

// Width returns the table width.
func (t *ResultTable) Width() int {
	return t.width
}

// Height returns the table height.
func (t *ResultTable) Height() int {
	return t.height
}

// columns builds column definitions for the current width and sort.
func (t *ResultTable) columns() []table.Column {
	fixed := priceWidth + durationWidth + previewWidth
	// Border plus padding on every cell.
	available := t.width - 2 - numColumns*cellPadding - fixed
	textWidths := splitWidth(available, 30, 25, 25, 20)

	widths := [numColumns]int{
		colTitle:    textWidths[0],
		colArtist:   textWidths[1],
		colAlbum:    textWidths[2],
		colPrice:    priceWidth,
		colDuration: durationWidth,
		colGenre:    textWidths[3],
		colPreview:  previewWidth,
	}

	cols := make([]table.Column, numColumns)
	for i := range cols {
		cols[i] = table.Column{Title: headers[i], Width: widths[i]}
	}

	if idx, ok := sortColumnIndex(t.sort.Column); ok {
		indicator := ascIndicator
		if t.sort.Direction == domain.Descending {
			indicator = descIndicator
		}
		cols[idx].Title += indicator
	}

	return cols
}

// splitWidth divides total by percentage weights, never below minTextWidth.
func splitWidth(total int, weights ...int) []int {
	out := make([]int, len(weights))
	for i, w := range weights {
		out[i] = max(total*w/100, minTextWidth)
	}
	return out
}

func sortColumnIndex(c domain.SortColumn) (int, bool) {
	switch c {
	case domain.SortByTitle:
		return colTitle, true
	case domain.SortByArtist:
		return colArtist, true
	case domain.SortByPrice:
		return colPrice, true
	default:
		return 0, false
	}
}

func toRow(r domain.Row) table.Row {
	preview := r.Preview
	if r.HasPreview {
		preview = previewMarker
	}
	return table.Row{r.Title, r.Artist, r.Album, r.Price, r.Duration, r.Genre, preview}
}
