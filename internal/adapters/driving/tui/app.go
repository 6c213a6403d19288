package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// presenter delivers controller signals to the program.
	presenter *Presenter

	// ctx is the context for cancellation.
	ctx context.Context

	// styles is shared by every component and restyled in place.
	styles *styles.Styles

	keymap *keymap.KeyMap

	// searchView is the only screen.
	searchView *search.View

	theme        domain.Theme
	initialQuery string

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. presenter must be the one the
// search controller in ports reports to.
func NewApp(ports *Ports, presenter *Presenter) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if presenter == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingPresenter)
	}

	settings := domain.DefaultAppSettings()
	if ports.Settings != nil {
		if s, err := ports.Settings.Get(); err == nil {
			settings = *s
		} else {
			logger.Warn("Loading settings: %v", err)
		}
	}

	s := styles.NewStyles(styles.ThemeFor(settings.UI.Theme))
	km := keymap.DefaultKeyMap()
	searchView := search.NewView(s, km, ports.Search, ports.ResultAction).
		WithDefaults(settings.Search.Entity, settings.Search.Limit)

	return &App{
		ports:      ports,
		presenter:  presenter,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		searchView: searchView,
		theme:      settings.UI.Theme,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx == nil {
		return a
	}
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// WithQuery searches for term as soon as the program starts.
func (a *App) WithQuery(term string) *App {
	a.initialQuery = term
	a.searchView.SetQuery(term)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("tunesearch"),
		a.presenter.Listen(),
		a.searchView.Init(),
	}
	if a.initialQuery != "" {
		cmds = append(cmds, a.searchView.Search())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ThemeChanged:
		a.applyTheme(msg.Theme)
		return a, a.presenter.Listen()

	case messages.Signal:
		// Keep draining the presenter queue.
		a.searchView, cmd = a.searchView.Update(msg)
		return a, tea.Batch(cmd, a.presenter.Listen())

	case messages.Quit:
		return a, tea.Quit
	}

	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// handleKeyMsg handles global keys and forwards the rest to the view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// ctrl+c always quits; q only when it would not be typed.
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.searchView.CapturesText() {
		switch {
		case keymap.Matches(keyStr, a.keymap.Quit):
			return a, tea.Quit
		case keymap.Matches(keyStr, a.keymap.Theme):
			a.toggleTheme()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// toggleTheme switches theme and persists the choice when settings are
// available. A failed save still switches the displayed theme.
func (a *App) toggleTheme() {
	next := a.theme.Toggled()
	if a.ports.Settings != nil {
		saved, err := a.ports.Settings.ToggleTheme()
		if err != nil {
			logger.Warn("Saving theme: %v", err)
		} else {
			next = saved
		}
	}
	a.applyTheme(next)
}

func (a *App) applyTheme(theme domain.Theme) {
	if !theme.IsValid() || theme == a.theme {
		return
	}
	a.theme = theme
	a.styles.Apply(styles.ThemeFor(theme))
	a.searchView.ApplyStyles()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.searchView.View()
}

// Run starts the TUI application. While it runs, theme changes made to
// the settings outside the program are applied live.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()

	if a.ports.Settings != nil {
		go a.watchTheme(ctx)
	}

	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) watchTheme(ctx context.Context) {
	err := a.ports.Settings.WatchTheme(ctx, func(theme domain.Theme) {
		a.presenter.Send(messages.ThemeChanged{Theme: theme})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("Theme watch stopped: %v", err)
	}
}

// Theme returns the displayed theme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Styles returns the shared styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// SearchView returns the search view.
func (a *App) SearchView() *search.View {
	return a.searchView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}
