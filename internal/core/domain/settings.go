package domain

import "time"

const unknownDescription = "Unknown"

// Theme is the colour scheme preference.
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// DefaultCatalogBaseURL is the public iTunes Search API endpoint.
const DefaultCatalogBaseURL = "https://itunes.apple.com/search"

// SearchSettings holds defaults for new searches.
type SearchSettings struct {
	// Entity is the default entity kind.
	Entity EntityKind

	// Limit is the default result limit.
	Limit int
}

// CatalogSettings configures the result provider.
type CatalogSettings struct {
	// BaseURL is the provider's search endpoint.
	BaseURL string

	// Timeout bounds a single request. Zero disables the timeout.
	Timeout time.Duration
}

// UISettings holds presentation preferences.
type UISettings struct {
	// Theme is the persisted colour scheme.
	Theme Theme
}

// AppSettings holds all application settings.
type AppSettings struct {
	Search  SearchSettings
	Catalog CatalogSettings
	UI      UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Entity: EntitySong,
			Limit:  DefaultResultLimit,
		},
		Catalog: CatalogSettings{
			BaseURL: DefaultCatalogBaseURL,
			Timeout: 30 * time.Second,
		},
		UI: UISettings{
			Theme: ThemeLight,
		},
	}
}
