package cli

import (
	"context"
	"sync"

	"github.com/custodia-labs/tunesearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
	"github.com/custodia-labs/tunesearch/internal/core/services"
)

// mockCatalog returns canned items and records the queries it receives.
type mockCatalog struct {
	mu      sync.Mutex
	items   []domain.ResultItem
	err     error
	queries []domain.SearchQuery
}

func (m *mockCatalog) Search(_ context.Context, query domain.SearchQuery) ([]domain.ResultItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.ResultItem(nil), m.items...), nil
}

func (m *mockCatalog) lastQuery() domain.SearchQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queries) == 0 {
		return domain.SearchQuery{}
	}
	return m.queries[len(m.queries)-1]
}

func (m *mockCatalog) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

func price(v float64) *float64 { return &v }

func millis(v int64) *int64 { return &v }

func sampleItems() []domain.ResultItem {
	return []domain.ResultItem{
		{
			TrackName:           "Yellow",
			ArtistName:          "Coldplay",
			CollectionName:      "Parachutes",
			TrackPrice:          price(1.29),
			TrackDurationMillis: millis(266773),
			GenreName:           "Alternative",
			PreviewURL:          "https://audio.example/yellow.m4a",
		},
		{
			TrackName:  "clocks",
			ArtistName: "Coldplay",
			TrackPrice: price(0.99),
		},
		{
			TrackName:  "Adventure of a Lifetime",
			ArtistName: "Coldplay",
		},
	}
}

// testEnv exposes the stores behind the services installed by
// setupTestServices.
type testEnv struct {
	catalog *mockCatalog
	config  *memory.ConfigStore
	history *memory.HistoryStore
}

// setupTestServices installs in-memory services backed by a mock catalog
// and resets command flags. The returned function restores the previous
// state.
func setupTestServices() (*testEnv, func()) {
	env := &testEnv{
		catalog: &mockCatalog{items: sampleItems()},
		config:  memory.NewConfigStore(),
		history: memory.NewHistoryStore(),
	}

	oldServices := active
	oldBootstrap := bootstrap

	active = &Services{
		Settings:     services.NewSettingsService(env.config),
		History:      services.NewHistoryService(env.history),
		ResultAction: services.NewResultActionService(),
		NewController: func(p driving.Presenter) driving.SearchController {
			c := services.NewSearchTableController(env.catalog, p)
			c.SetHistoryStore(env.history)
			return c
		},
	}
	bootstrap = nil
	resetFlags()

	return env, func() {
		active = oldServices
		bootstrap = oldBootstrap
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}
}

func resetFlags() {
	searchEntity = ""
	searchLimit = 0
	searchSort = string(domain.SortByTitle)
	searchDesc = false
	searchJSON = false
	historyLimit = 20
	historyClear = false
	verbose = false
	configDir = ""
	ephemeral = false
	logFile = ""
}
