package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tunesearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/services"
)

// catalogFunc adapts a function to driven.CatalogProvider.
type catalogFunc func(ctx context.Context, q domain.SearchQuery) ([]domain.ResultItem, error)

func (f catalogFunc) Search(ctx context.Context, q domain.SearchQuery) ([]domain.ResultItem, error) {
	return f(ctx, q)
}

type testApp struct {
	app       *App
	presenter *Presenter
	settings  *services.SettingsService
	store     *memory.ConfigStore
}

func newTestApp(t *testing.T, catalog catalogFunc) *testApp {
	t.Helper()

	if catalog == nil {
		catalog = func(context.Context, domain.SearchQuery) ([]domain.ResultItem, error) {
			return nil, nil
		}
	}

	presenter := NewPresenter(0)
	store := memory.NewConfigStore()
	settings := services.NewSettingsService(store)
	controller := services.NewSearchTableController(catalog, presenter)

	app, err := NewApp(NewPorts(controller, settings, nil), presenter)
	require.NoError(t, err)
	app.SetDimensions(160, 40)

	return &testApp{app: app, presenter: presenter, settings: settings, store: store}
}

// search runs the view's search command and feeds every queued signal
// back into the app, as the Bubbletea runtime would.
func (ta *testApp) search(t *testing.T, term string) {
	t.Helper()

	ta.app.SearchView().SetQuery(term)
	finished := ta.app.SearchView().Search()()
	ta.drain()
	ta.app.Update(finished)
}

func (ta *testApp) drain() {
	for ta.presenter.Pending() > 0 {
		ta.app.Update(ta.presenter.Listen()())
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewApp(t *testing.T) {
	ta := newTestApp(t, nil)

	assert.NotNil(t, ta.app.SearchView())
	assert.Equal(t, domain.ThemeLight, ta.app.Theme())
	assert.Equal(t, domain.ThemeLight, ta.app.Styles().Theme().Name)
}

func TestNewApp_InvalidPorts(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{name: "nil ports", ports: nil, wantErr: ErrInvalidPorts},
		{name: "missing controller", ports: &Ports{}, wantErr: ErrMissingSearchController},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.ports, NewPresenter(0))

			assert.Nil(t, app)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewApp_MissingPresenter(t *testing.T) {
	controller := services.NewSearchTableController(nil, nil)

	app, err := NewApp(NewPorts(controller, nil, nil), nil)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingPresenter)
}

func TestNewApp_UsesPersistedSettings(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("ui.theme", "dark"))
	require.NoError(t, store.Set("search.entity", "album"))
	presenter := NewPresenter(0)
	controller := services.NewSearchTableController(nil, presenter)

	app, err := NewApp(NewPorts(controller, services.NewSettingsService(store), nil), presenter)
	require.NoError(t, err)

	assert.Equal(t, domain.ThemeDark, app.Theme())
	assert.Equal(t, domain.EntityAlbum, app.SearchView().Entity())
}

func TestApp_View_NotReady(t *testing.T) {
	presenter := NewPresenter(0)
	controller := services.NewSearchTableController(nil, presenter)
	app, err := NewApp(NewPorts(controller, nil, nil), presenter)
	require.NoError(t, err)

	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_WindowSize(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, ta.app.Ready())
	assert.Equal(t, 100, ta.app.SearchView().Width())
}

func TestApp_Init(t *testing.T) {
	ta := newTestApp(t, nil)

	assert.NotNil(t, ta.app.Init())
}

func TestApp_WithQuery(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.app.WithQuery("abba")

	assert.Equal(t, "abba", ta.app.SearchView().Query())
	assert.NotNil(t, ta.app.Init())
}

func TestApp_SearchSuccess(t *testing.T) {
	ta := newTestApp(t, func(_ context.Context, q domain.SearchQuery) ([]domain.ResultItem, error) {
		assert.Equal(t, "abba", q.Term)
		return []domain.ResultItem{
			{TrackName: "Waterloo", ArtistName: "ABBA"},
			{TrackName: "Dancing Queen", ArtistName: "ABBA"},
		}, nil
	})

	ta.search(t, "abba")

	view := ta.app.SearchView()
	items := view.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Dancing Queen", items[0].TrackName, "sorted by title")
	assert.Equal(t, `Showing 2 results for "abba"`, view.ResultsInfo())
	assert.False(t, view.Loading())
	assert.Equal(t, status.FocusTable, view.Focus())

	banner, _ := view.Banner()
	assert.Empty(t, banner)
}

func TestApp_SearchFailure(t *testing.T) {
	ta := newTestApp(t, func(context.Context, domain.SearchQuery) ([]domain.ResultItem, error) {
		return nil, errors.New("dial tcp: connection refused")
	})

	ta.search(t, "abba")

	view := ta.app.SearchView()
	banner, _ := view.Banner()
	assert.Equal(t, domain.MessageFetchFailed, banner)
	assert.NotContains(t, ta.app.View(), "connection refused")
	assert.Empty(t, view.Items())
	assert.False(t, view.Loading())
}

func TestApp_SearchEmpty(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.search(t, "zzzzzz")

	banner, kind := ta.app.SearchView().Banner()
	assert.Equal(t, domain.MessageNoResults, banner)
	assert.Equal(t, search.BannerInfo, kind)
	assert.Empty(t, ta.app.SearchView().ResultsInfo())
}

func TestApp_SearchValidation(t *testing.T) {
	called := false
	ta := newTestApp(t, func(context.Context, domain.SearchQuery) ([]domain.ResultItem, error) {
		called = true
		return nil, nil
	})

	ta.search(t, "   ")

	assert.False(t, called)
	assert.Equal(t, domain.MessageEmptyTerm, ta.app.SearchView().Prompt())
	assert.False(t, ta.app.SearchView().Loading())
}

func TestApp_SignalsRelisten(t *testing.T) {
	ta := newTestApp(t, nil)

	_, cmd := ta.app.Update(messages.ErrorCleared{})

	assert.NotNil(t, cmd)
}

func TestApp_CtrlCQuits(t *testing.T) {
	ta := newTestApp(t, nil)

	_, cmd := ta.app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
}

func TestApp_QTypesWhileEditing(t *testing.T) {
	ta := newTestApp(t, nil)

	_, cmd := ta.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q", ta.app.SearchView().Query())
}

func TestApp_QQuitsFromTable(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := ta.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, isQuit(cmd))
}

func TestApp_QuitMessage(t *testing.T) {
	ta := newTestApp(t, nil)

	_, cmd := ta.app.Update(messages.Quit{})

	assert.True(t, isQuit(cmd))
}

func TestApp_ToggleThemePersists(t *testing.T) {
	ta := newTestApp(t, nil)
	ta.app.Update(tea.KeyMsg{Type: tea.KeyTab})

	ta.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})

	assert.Equal(t, domain.ThemeDark, ta.app.Theme())
	assert.Equal(t, domain.ThemeDark, ta.app.Styles().Theme().Name)
	assert.Equal(t, domain.ThemeDark, ta.settings.Theme())

	ta.app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})

	assert.Equal(t, domain.ThemeLight, ta.app.Theme())
	assert.Equal(t, "light", ta.store.GetString("ui.theme"))
}

func TestApp_ToggleThemeWithoutSettings(t *testing.T) {
	presenter := NewPresenter(0)
	controller := services.NewSearchTableController(nil, presenter)
	app, err := NewApp(NewPorts(controller, nil, nil), presenter)
	require.NoError(t, err)
	app.SetDimensions(100, 30)
	app.Update(tea.KeyMsg{Type: tea.KeyTab})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})

	assert.Equal(t, domain.ThemeDark, app.Theme())
}

func TestApp_ThemeChanged(t *testing.T) {
	ta := newTestApp(t, nil)

	_, cmd := ta.app.Update(messages.ThemeChanged{Theme: domain.ThemeDark})

	assert.NotNil(t, cmd, "keeps listening")
	assert.Equal(t, domain.ThemeDark, ta.app.Theme())
	assert.Equal(t, domain.ThemeDark, ta.app.Styles().Theme().Name)
}

func TestApp_ThemeChanged_InvalidIgnored(t *testing.T) {
	ta := newTestApp(t, nil)

	ta.app.Update(messages.ThemeChanged{Theme: "sepia"})

	assert.Equal(t, domain.ThemeLight, ta.app.Theme())
}

func TestApp_WatchThemeDeliversChanges(t *testing.T) {
	ta := newTestApp(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ta.app.watchTheme(ctx)
	}()

	themes := []string{"dark", "light"}
	writes := 0
	require.Eventually(t, func() bool {
		// Keep changing the theme until the watcher has registered.
		_ = ta.store.Set("ui.theme", themes[writes%len(themes)])
		writes++
		return ta.presenter.Pending() > 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done

	msg := ta.presenter.Listen()()
	changed, ok := msg.(messages.ThemeChanged)
	require.True(t, ok)
	assert.True(t, changed.Theme.IsValid())
}
