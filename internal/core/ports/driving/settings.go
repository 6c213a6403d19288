package driving

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Theme returns the persisted theme, or the default when unset.
	Theme() domain.Theme

	// SetTheme persists theme.
	SetTheme(theme domain.Theme) error

	// ToggleTheme switches between light and dark and returns the new theme.
	ToggleTheme() (domain.Theme, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// WatchTheme calls onChange with the current theme whenever the
	// persisted settings change outside the process. It blocks until ctx
	// is cancelled, or returns immediately when changes cannot be observed.
	WatchTheme(ctx context.Context, onChange func(domain.Theme)) error
}
