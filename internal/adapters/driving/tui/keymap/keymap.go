// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Search submits the query in the input.
	Search key.Binding

	// SwitchFocus moves focus between the input and the table.
	SwitchFocus key.Binding

	// Dismiss closes the prompt or banner, or returns to the input.
	Dismiss key.Binding

	// Up navigates up in the table.
	Up key.Binding

	// Down navigates down in the table.
	Down key.Binding

	// SortTitle sorts by title, toggling direction on repeat.
	SortTitle key.Binding

	// SortArtist sorts by artist, toggling direction on repeat.
	SortArtist key.Binding

	// SortPrice sorts by price, toggling direction on repeat.
	SortPrice key.Binding

	// CycleSort moves the sort to the next column.
	CycleSort key.Binding

	// Entity cycles the entity filter.
	Entity key.Binding

	// Theme toggles light and dark mode.
	Theme key.Binding

	// OpenPreview opens the selected row's preview.
	OpenPreview key.Binding

	// CopyPreview copies the selected row's preview URL.
	CopyPreview key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "search"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		SortTitle: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "title"),
		),
		SortArtist: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "artist"),
		),
		SortPrice: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "price"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Entity: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "entity"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		OpenPreview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "preview"),
		),
		CopyPreview: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
	}
}

// SortColumnFor returns the column a direct sort key selects.
func (k *KeyMap) SortColumnFor(keyStr string) (domain.SortColumn, bool) {
	switch {
	case Matches(keyStr, k.SortTitle):
		return domain.SortByTitle, true
	case Matches(keyStr, k.SortArtist):
		return domain.SortByArtist, true
	case Matches(keyStr, k.SortPrice):
		return domain.SortByPrice, true
	default:
		return "", false
	}
}

// InputHelp returns keybindings shown while typing a query.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Search, k.SwitchFocus, k.Dismiss}
}

// TableHelp returns keybindings shown while the table is focused.
func (k *KeyMap) TableHelp() []key.Binding {
	return []key.Binding{k.CycleSort, k.Entity, k.Theme, k.OpenPreview, k.SwitchFocus, k.Quit}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.SwitchFocus, k.Dismiss},
		{k.Up, k.Down, k.OpenPreview, k.CopyPreview},
		{k.SortTitle, k.SortArtist, k.SortPrice, k.CycleSort},
		{k.Entity, k.Theme, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
