package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTheme          = "ui.theme"
	keySearchEntity   = "search.entity"
	keySearchLimit    = "search.limit"
	keyCatalogBaseURL = "catalog.base_url"
	keyCatalogTimeout = "catalog.timeout_seconds"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	watcher     driven.ConfigWatcher
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	s := &SettingsService{
		configStore: configStore,
	}
	if w, ok := configStore.(driven.ConfigWatcher); ok {
		s.watcher = w
	}
	return s
}

// Get retrieves current application settings.
// Invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			Entity: s.getEntity(defaults.Search.Entity),
			Limit:  s.getLimit(defaults.Search.Limit),
		},
		Catalog: domain.CatalogSettings{
			BaseURL: s.getString(keyCatalogBaseURL, defaults.Catalog.BaseURL),
			Timeout: s.getTimeout(defaults.Catalog.Timeout),
		},
		UI: domain.UISettings{
			Theme: s.Theme(),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Search.Entity.IsValid() {
		return fmt.Errorf("%w: entity %q", domain.ErrInvalidInput, settings.Search.Entity)
	}
	if settings.Search.Limit <= 0 || settings.Search.Limit > domain.MaxResultLimit {
		return fmt.Errorf("%w: limit %d", domain.ErrInvalidInput, settings.Search.Limit)
	}
	if !settings.UI.Theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, settings.UI.Theme)
	}

	if err := s.configStore.Set(keySearchEntity, settings.Search.Entity.String()); err != nil {
		return fmt.Errorf("save search entity: %w", err)
	}
	if err := s.configStore.Set(keySearchLimit, settings.Search.Limit); err != nil {
		return fmt.Errorf("save search limit: %w", err)
	}
	if err := s.configStore.Set(keyCatalogBaseURL, settings.Catalog.BaseURL); err != nil {
		return fmt.Errorf("save catalog base_url: %w", err)
	}
	if err := s.configStore.Set(keyCatalogTimeout, int(settings.Catalog.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save catalog timeout: %w", err)
	}
	if err := s.configStore.Set(keyTheme, settings.UI.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	return nil
}

// Theme returns the persisted theme, or the default when unset or invalid.
func (s *SettingsService) Theme() domain.Theme {
	theme := domain.Theme(s.configStore.GetString(keyTheme))
	if !theme.IsValid() {
		return domain.DefaultAppSettings().UI.Theme
	}
	return theme
}

// SetTheme persists theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, theme)
	}
	if err := s.configStore.Set(keyTheme, theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme switches between light and dark and returns the new theme.
func (s *SettingsService) ToggleTheme() (domain.Theme, error) {
	next := s.Theme().Toggled()
	if err := s.SetTheme(next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// WatchTheme reports the theme after every external settings change.
// Notifications that leave the theme unchanged are skipped.
func (s *SettingsService) WatchTheme(ctx context.Context, onChange func(domain.Theme)) error {
	if s.watcher == nil {
		return nil
	}
	last := s.Theme()
	return s.watcher.Watch(ctx, func() {
		theme := s.Theme()
		if theme == last {
			return
		}
		last = theme
		onChange(theme)
	})
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getEntity(defaultVal domain.EntityKind) domain.EntityKind {
	entity := domain.EntityKind(s.configStore.GetString(keySearchEntity))
	if !entity.IsValid() {
		return defaultVal
	}
	return entity
}

func (s *SettingsService) getLimit(defaultVal int) int {
	limit := s.configStore.GetInt(keySearchLimit)
	if limit <= 0 || limit > domain.MaxResultLimit {
		return defaultVal
	}
	return limit
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(keyCatalogTimeout); !exists {
		return defaultVal
	}
	seconds := s.configStore.GetInt(keyCatalogTimeout)
	if seconds < 0 {
		return defaultVal
	}
	return time.Duration(seconds) * time.Second
}
