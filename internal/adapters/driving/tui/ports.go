// Package tui provides an interactive terminal user interface for tunesearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs queries and owns the displayed result set.
	Search driving.SearchController

	// Settings provides the persisted theme and search defaults.
	Settings driving.SettingsService

	// ResultAction opens or copies the preview of a result.
	ResultAction driving.ResultActionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchController,
	settings driving.SettingsService,
	resultAction driving.ResultActionService,
) *Ports {
	return &Ports{
		Search:       search,
		Settings:     settings,
		ResultAction: resultAction,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchController
	}
	return nil
}
