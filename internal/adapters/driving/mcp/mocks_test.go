package mcp

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/services"
)

// mockCatalog is a mock implementation of driven.CatalogProvider.
type mockCatalog struct {
	items   []domain.ResultItem
	err     error
	queries []domain.SearchQuery
}

func (m *mockCatalog) Search(_ context.Context, q domain.SearchQuery) ([]domain.ResultItem, error) {
	m.queries = append(m.queries, q)
	return m.items, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	err     error
	limit   int
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.limit = limit
	return m.entries, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}

func price(p float64) *float64 { return &p }

func testItems() []domain.ResultItem {
	return []domain.ResultItem{
		{TrackName: "Waterloo", ArtistName: "ABBA", TrackPrice: price(1.29), PreviewURL: "https://audio.example/w.m4a"},
		{TrackName: "Dancing Queen", ArtistName: "ABBA", TrackPrice: price(0.99)},
	}
}

// newTestServer builds a server around a real controller and settings.
func newTestServer(catalog *mockCatalog, history *mockHistoryService) (*Server, *services.SettingsService) {
	settings := services.NewSettingsService(memory.NewConfigStore())
	ports := &Ports{
		Search:   services.NewSearchTableController(catalog, nil),
		Settings: settings,
	}
	if history != nil {
		ports.History = history
	}
	server, err := NewServer(ports)
	if err != nil {
		panic(err)
	}
	return server, settings
}
