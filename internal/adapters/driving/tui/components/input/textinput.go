// Package input provides text input components for the TUI.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// maxTermLength bounds the typed search term.
const maxTermLength = 256

// SearchInput wraps a bubbles textinput with the entity filter label.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	entity    domain.EntityKind
	width     int
}

// NewSearchInput creates a new search input component.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search artists, songs, albums..."
	ti.Focus()
	ti.CharLimit = maxTermLength
	ti.Width = 50

	return &SearchInput{
		textinput: ti,
		styles:    s,
		entity:    domain.EntitySong,
		width:     50,
	}
}

// Init initialises the search input.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the search input.
func (s *SearchInput) View() string {
	label := s.styles.Title.Render("Search: ")
	input := s.styles.InputField.Render(s.textinput.View())
	filter := s.styles.Muted.Render(fmt.Sprintf(" in %s", s.entity.Description()))
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input, filter)
}

// Value returns the current input value.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Entity returns the selected entity filter.
func (s *SearchInput) Entity() domain.EntityKind {
	return s.entity
}

// SetEntity sets the entity filter. Invalid kinds are ignored.
func (s *SearchInput) SetEntity(kind domain.EntityKind) {
	if kind.IsValid() {
		s.entity = kind
	}
}

// CycleEntity selects the next entity filter and returns it.
func (s *SearchInput) CycleEntity() domain.EntityKind {
	s.entity = domain.NextEntityKind(s.entity)
	return s.entity
}

// Focus sets focus on the input.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Account for label, filter and padding
	s.textinput.Width = max(width-40, 20)
}

// Width returns the current width.
func (s *SearchInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SearchInput) Reset() {
	s.textinput.Reset()
}
