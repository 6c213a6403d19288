// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// Focus identifies which pane receives key presses.
type Focus string

const (
	FocusInput Focus = "input"
	FocusTable Focus = "table"
)

// Bar displays loading state, the results summary and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spinner spinner.Model

	loading int
	info    string
	entity  domain.EntityKind
	sort    domain.SortState
	focus   Focus
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:  s,
		keymap:  km,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		entity:  domain.EntitySong,
		sort:    domain.DefaultSortState(),
		focus:   FocusInput,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update advances the spinner while a search is in flight.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return s, nil
	}
	if !s.Loading() {
		// Stop ticking; BeginLoading restarts the spinner.
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	if s.Loading() {
		return s.spinner.View() + s.styles.Muted.Render("Searching...")
	}
	if s.info != "" {
		return s.styles.Normal.Render(s.info)
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	arrow := "▲"
	if s.sort.Direction == domain.Descending {
		arrow = "▼"
	}
	filter := fmt.Sprintf("%s · %s %s", s.entity.Description(), s.sort.Column, arrow)

	var bindings []key.Binding
	if s.focus == FocusTable {
		bindings = s.keymap.TableHelp()
	} else {
		bindings = s.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(filter + " | " + strings.Join(hints, " | "))
}

// BeginLoading records a search start. The returned command starts the
// spinner when no other search was in flight.
func (s *Bar) BeginLoading() tea.Cmd {
	s.loading++
	if s.loading == 1 {
		return s.spinner.Tick
	}
	return nil
}

// EndLoading records a search end.
func (s *Bar) EndLoading() {
	if s.loading > 0 {
		s.loading--
	}
}

// Loading returns whether any search is in flight.
func (s *Bar) Loading() bool {
	return s.loading > 0
}

// SetResultsInfo shows the results summary.
func (s *Bar) SetResultsInfo(term string, count int) {
	noun := "results"
	if count == 1 {
		noun = "result"
	}
	s.info = fmt.Sprintf("Showing %d %s for %q", count, noun, term)
}

// ClearResultsInfo hides the results summary.
func (s *Bar) ClearResultsInfo() {
	s.info = ""
}

// ResultsInfo returns the summary text, or "" when hidden.
func (s *Bar) ResultsInfo() string {
	return s.info
}

// SetEntity sets the entity filter shown.
func (s *Bar) SetEntity(entity domain.EntityKind) {
	s.entity = entity
}

// SetSort sets the sort shown.
func (s *Bar) SetSort(state domain.SortState) {
	s.sort = state
}

// SetFocus selects which hints are shown.
func (s *Bar) SetFocus(focus Focus) {
	s.focus = focus
}

// Focus returns the focus the hints are shown for.
func (s *Bar) Focus() Focus {
	return s.focus
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the loading counter and summary.
func (s *Bar) Clear() {
	s.loading = 0
	s.info = ""
}
