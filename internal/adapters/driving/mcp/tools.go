package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/services"
)

// defaultHistoryLimit is used when recent_searches is called without a limit.
const defaultHistoryLimit = 10

// SearchInput is the input schema for the search_catalog tool.
type SearchInput struct {
	Term       string `json:"term" jsonschema:"the search term, e.g. an artist or song name"`
	Entity     string `json:"entity,omitempty" jsonschema:"song, album, musicArtist, musicVideo, podcast or audiobook"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results, 1 to 200"`
	Sort       string `json:"sort,omitempty" jsonschema:"sort column: title, artist or price (default title)"`
	Descending bool   `json:"descending,omitempty" jsonschema:"sort in descending order"`
}

// SearchOutput is the output schema for the search_catalog tool.
type SearchOutput struct {
	Term    string       `json:"term"`
	Count   int          `json:"count"`
	Message string       `json:"message,omitempty"`
	Results []ResultItem `json:"results"`
}

// ResultItem is one formatted catalog entry.
type ResultItem struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	Price      string `json:"price"`
	Duration   string `json:"duration"`
	Genre      string `json:"genre"`
	PreviewURL string `json:"preview_url,omitempty"`
	ArtworkURL string `json:"artwork_url,omitempty"`
}

// HistoryInput is the input schema for the recent_searches tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries (default 10)"`
}

// HistoryOutput is the output schema for the recent_searches tool.
type HistoryOutput struct {
	Searches []HistoryItem `json:"searches"`
}

// HistoryItem is one past search.
type HistoryItem struct {
	Term       string    `json:"term"`
	Entity     string    `json:"entity"`
	Outcome    string    `json:"outcome"`
	Count      int       `json:"count"`
	SearchedAt time.Time `json:"searched_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the iTunes music catalog and return a sorted table of results",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recent_searches",
		Description: "List recent catalog searches, newest first",
	}, s.handleRecentSearches)
}

// handleSearch handles the search_catalog tool invocation.
// Validation and fetch failures become tool errors carrying the
// user-facing message; an empty result is a normal response.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	query := s.buildQuery(input)

	sortState := domain.DefaultSortState()
	if input.Sort != "" {
		sortState.Column = domain.SortColumn(input.Sort)
		if !sortState.Column.IsValid() {
			return nil, SearchOutput{}, errors.New("sort must be one of title, artist or price")
		}
	}
	if input.Descending {
		sortState.Direction = domain.Descending
	}

	s.searchMu.Lock()
	defer s.searchMu.Unlock()

	services.SortTo(s.ports.Search, sortState)
	items, err := s.ports.Search.Search(ctx, query)

	output := SearchOutput{Term: query.Term, Results: []ResultItem{}}
	switch {
	case errors.Is(err, domain.ErrEmptyResults):
		output.Message = domain.MessageNoResults
		return nil, output, nil
	case err != nil:
		return nil, SearchOutput{}, errors.New(domain.UserMessage(err))
	}

	output.Count = len(items)
	output.Results = make([]ResultItem, len(items))
	for i := range items {
		output.Results[i] = toResultItem(items[i])
	}

	return nil, output, nil
}

// buildQuery fills unset fields from the persisted settings.
func (s *Server) buildQuery(input SearchInput) domain.SearchQuery {
	query := domain.SearchQuery{
		Term:   input.Term,
		Entity: domain.EntityKind(input.Entity),
		Limit:  input.Limit,
	}
	if s.ports.Settings == nil {
		return query
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return query
	}
	if query.Entity == "" {
		query.Entity = settings.Search.Entity
	}
	if query.Limit == 0 {
		query.Limit = settings.Search.Limit
	}
	return query
}

// handleRecentSearches handles the recent_searches tool invocation.
func (s *Server) handleRecentSearches(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	if s.ports.History == nil {
		return nil, HistoryOutput{}, ErrHistoryUnavailable
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.ports.History.Recent(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{Searches: make([]HistoryItem, len(entries))}
	for i := range entries {
		output.Searches[i] = HistoryItem{
			Term:       entries[i].Term,
			Entity:     entries[i].Entity.String(),
			Outcome:    string(entries[i].Outcome),
			Count:      entries[i].Count,
			SearchedAt: entries[i].SearchedAt,
		}
	}

	return nil, output, nil
}

func toResultItem(item domain.ResultItem) ResultItem {
	row := item.Row()
	return ResultItem{
		Title:      row.Title,
		Artist:     row.Artist,
		Album:      row.Album,
		Price:      row.Price,
		Duration:   row.Duration,
		Genre:      row.Genre,
		PreviewURL: item.PreviewURL,
		ArtworkURL: item.ArtworkURL,
	}
}
