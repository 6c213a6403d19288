package domain

import (
	"fmt"
	"strconv"
)

// Placeholders used when a field is absent.
const (
	PlaceholderUnknown   = "Unknown"
	PlaceholderNA        = "N/A"
	PlaceholderNoPreview = "No preview"
)

// ResultItem is a single catalog entry. Every field is optional.
type ResultItem struct {
	// TrackName is the title of the entry.
	TrackName string `json:"trackName,omitempty"`

	// ArtistName is the performing artist.
	ArtistName string `json:"artistName,omitempty"`

	// CollectionName is the album or collection.
	CollectionName string `json:"collectionName,omitempty"`

	// ArtworkURL points at a 100px cover image.
	ArtworkURL string `json:"artworkUrl,omitempty"`

	// TrackPrice is nil when the provider omits it.
	TrackPrice *float64 `json:"trackPrice,omitempty"`

	// TrackDurationMillis is nil when the provider omits it.
	TrackDurationMillis *int64 `json:"trackDurationMillis,omitempty"`

	// GenreName is the primary genre.
	GenreName string `json:"genreName,omitempty"`

	// PreviewURL points at a short audio preview.
	PreviewURL string `json:"previewUrl,omitempty"`
}

// Price returns the price, treating an absent price as 0.
func (r ResultItem) Price() float64 {
	if r.TrackPrice == nil {
		return 0
	}
	return *r.TrackPrice
}

// HasPreview reports whether the item carries a preview URL.
func (r ResultItem) HasPreview() bool {
	return r.PreviewURL != ""
}

// Row is the display projection of a ResultItem.
type Row struct {
	Title      string
	Artist     string
	Album      string
	ArtworkURL string
	Price      string
	Duration   string
	Genre      string
	Preview    string
	HasPreview bool
}

// Row formats the item for display.
func (r ResultItem) Row() Row {
	row := Row{
		Title:      orDefault(r.TrackName, PlaceholderUnknown),
		Artist:     orDefault(r.ArtistName, PlaceholderUnknown),
		Album:      orDefault(r.CollectionName, PlaceholderNA),
		ArtworkURL: r.ArtworkURL,
		Price:      FormatPrice(r.TrackPrice),
		Duration:   FormatDuration(r.TrackDurationMillis),
		Genre:      orDefault(r.GenreName, PlaceholderNA),
		Preview:    PlaceholderNoPreview,
		HasPreview: r.HasPreview(),
	}
	if row.HasPreview {
		row.Preview = r.PreviewURL
	}
	return row
}

// FormatPrice renders a price as $<price> or N/A.
// A zero price is rendered as N/A, matching how free or unpriced entries
// are reported by the provider.
func FormatPrice(price *float64) string {
	if price == nil || *price == 0 {
		return PlaceholderNA
	}
	return "$" + strconv.FormatFloat(*price, 'f', -1, 64)
}

// FormatDuration renders milliseconds as M:SS or N/A.
func FormatDuration(millis *int64) string {
	if millis == nil || *millis <= 0 {
		return PlaceholderNA
	}
	ms := *millis
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
