package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for tunesearch resources.
	uriScheme = "tunesearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// The result set of the last search, in display order.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "results",
		Name:        "results",
		Description: "Results of the most recent catalog search",
		MIMEType:    "application/json",
	}, s.handleResultsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "results/{index}",
		Name:        "result",
		Description: "One result of the most recent search, by zero-based position",
		MIMEType:    "application/json",
	}, s.handleResultResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Default search options and theme",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleResultsResource returns the current result set.
func (s *Server) handleResultsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rows := s.ports.Search.Rows()
	items := make([]ResultItem, len(rows))
	for i := range rows {
		items[i] = toResultItem(rows[i])
	}
	return jsonResource(req.Params.URI, items)
}

// handleResultResource returns one entry of the current result set.
func (s *Server) handleResultResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	index, ok := extractResultIndex(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rows := s.ports.Search.Rows()
	if index >= len(rows) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, toResultItem(rows[index]))
}

// handleSettingsResource returns the persisted defaults.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	type settingsInfo struct {
		Entity string `json:"entity"`
		Limit  int    `json:"limit"`
		Theme  string `json:"theme"`
	}
	return jsonResource(req.Params.URI, settingsInfo{
		Entity: settings.Search.Entity.String(),
		Limit:  settings.Search.Limit,
		Theme:  settings.UI.Theme.String(),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractResultIndex extracts the index from a URI like tunesearch://results/{index}.
func extractResultIndex(uri string) (int, bool) {
	const prefix = uriScheme + "results/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	index, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
