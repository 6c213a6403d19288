// Package mcp provides an MCP (Model Context Protocol) server adapter for tunesearch.
// It lets AI assistants search the music catalog and read recent searches.
package mcp

import "errors"

// ErrMissingSearchController is returned when the search controller is not provided.
var ErrMissingSearchController = errors.New("mcp: search controller is required")

// ErrHistoryUnavailable is returned by history tools when no history service is set.
var ErrHistoryUnavailable = errors.New("search history is not available")
