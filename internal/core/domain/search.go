package domain

import (
	"fmt"
	"strings"
)

// Search limits accepted by the result provider.
const (
	// DefaultResultLimit is used when no limit is given.
	DefaultResultLimit = 25

	// MaxResultLimit is the largest page the provider returns.
	MaxResultLimit = 200
)

// EntityKind selects which kind of catalog entry the provider returns.
type EntityKind string

// Available entity kinds.
const (
	EntitySong        EntityKind = "song"
	EntityAlbum       EntityKind = "album"
	EntityMusicArtist EntityKind = "musicArtist"
	EntityMusicVideo  EntityKind = "musicVideo"
	EntityPodcast     EntityKind = "podcast"
	EntityAudiobook   EntityKind = "audiobook"
)

// IsValid returns true if the entity kind is recognised.
func (k EntityKind) IsValid() bool {
	switch k {
	case EntitySong, EntityAlbum, EntityMusicArtist, EntityMusicVideo, EntityPodcast, EntityAudiobook:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k EntityKind) String() string {
	return string(k)
}

// Description returns a human-readable label.
func (k EntityKind) Description() string {
	switch k {
	case EntitySong:
		return "Songs"
	case EntityAlbum:
		return "Albums"
	case EntityMusicArtist:
		return "Artists"
	case EntityMusicVideo:
		return "Music videos"
	case EntityPodcast:
		return "Podcasts"
	case EntityAudiobook:
		return "Audiobooks"
	default:
		return unknownDescription
	}
}

// AllEntityKinds returns all entity kinds in display order.
func AllEntityKinds() []EntityKind {
	return []EntityKind{
		EntitySong,
		EntityAlbum,
		EntityMusicArtist,
		EntityMusicVideo,
		EntityPodcast,
		EntityAudiobook,
	}
}

// NextEntityKind returns the kind after k in display order, wrapping around.
func NextEntityKind(k EntityKind) EntityKind {
	kinds := AllEntityKinds()
	for i, kind := range kinds {
		if kind == k {
			return kinds[(i+1)%len(kinds)]
		}
	}
	return kinds[0]
}

// SearchQuery is a request to the result provider.
type SearchQuery struct {
	// Term is the free-text search term.
	Term string

	// Entity filters the kind of entries returned.
	Entity EntityKind

	// Limit is the maximum number of results.
	Limit int
}

// Normalize trims the term and fills defaults.
// It returns a validation SearchError when the query cannot be sent.
func (q SearchQuery) Normalize() (SearchQuery, error) {
	q.Term = strings.TrimSpace(q.Term)
	if q.Term == "" {
		return q, NewValidationError(MessageEmptyTerm, ErrInvalidInput)
	}

	if q.Entity == "" {
		q.Entity = EntitySong
	}
	if !q.Entity.IsValid() {
		return q, NewValidationError(messageInvalidQuery,
			fmt.Errorf("%w: unknown entity %q", ErrInvalidInput, q.Entity))
	}

	if q.Limit <= 0 {
		q.Limit = DefaultResultLimit
	}
	if q.Limit > MaxResultLimit {
		return q, NewValidationError(messageInvalidQuery,
			fmt.Errorf("%w: limit %d exceeds %d", ErrInvalidInput, q.Limit, MaxResultLimit))
	}

	return q, nil
}
