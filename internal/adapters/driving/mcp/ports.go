package mcp

import (
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search runs catalog queries. Its presenter is not used.
	Search driving.SearchController

	// History lists recent searches.
	History driving.HistoryService

	// Settings supplies the default entity and limit.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchController
	}
	// History and Settings are optional.
	return nil
}
