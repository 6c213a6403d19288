package itunes

import (
	"fmt"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// APIError is returned when the provider answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("itunes: HTTP %s", e.Status)
	}
	return fmt.Sprintf("itunes: HTTP %d", e.StatusCode)
}

// searchResponse is the response envelope of the search endpoint.
type searchResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []searchResult `json:"results"`
}

// searchResult holds the fields of one entry that are displayed.
// The provider omits fields that do not apply to the entry's kind.
type searchResult struct {
	TrackName        string   `json:"trackName"`
	ArtistName       string   `json:"artistName"`
	CollectionName   string   `json:"collectionName"`
	ArtworkURL100    string   `json:"artworkUrl100"`
	TrackPrice       *float64 `json:"trackPrice"`
	TrackTimeMillis  *int64   `json:"trackTimeMillis"`
	PrimaryGenreName string   `json:"primaryGenreName"`
	PreviewURL       string   `json:"previewUrl"`
}

// toDomain converts the wire representation to a domain.ResultItem.
func (r searchResult) toDomain() domain.ResultItem {
	return domain.ResultItem{
		TrackName:           r.TrackName,
		ArtistName:          r.ArtistName,
		CollectionName:      r.CollectionName,
		ArtworkURL:          r.ArtworkURL100,
		TrackPrice:          r.TrackPrice,
		TrackDurationMillis: r.TrackTimeMillis,
		GenreName:           r.PrimaryGenreName,
		PreviewURL:          r.PreviewURL,
	}
}
