// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Name identifies the palette.
	Name domain.Theme

	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Surface is the background of bars and banners.
	Surface lipgloss.Color
}

// LightTheme returns the light palette.
func LightTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeLight,
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#0E7490"), // Teal
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#1F2937"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#B45309"),
		Error:      lipgloss.Color("#B91C1C"),
		Border:     lipgloss.Color("#D1D5DB"),
		Surface:    lipgloss.Color("#F3F4F6"),
	}
}

// DarkTheme returns the dark palette.
func DarkTheme() *Theme {
	return &Theme{
		Name:       domain.ThemeDark,
		Primary:    lipgloss.Color("#A78BFA"), // Lavender
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Background: lipgloss.Color("#1E1E2E"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Success:    lipgloss.Color("#A6E3A1"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
		Surface:    lipgloss.Color("#181825"),
	}
}

// DefaultTheme returns the palette of the default theme preference.
func DefaultTheme() *Theme {
	return ThemeFor(domain.DefaultAppSettings().UI.Theme)
}

// ThemeFor returns the palette for a theme preference.
// Unknown preferences get the light palette.
func ThemeFor(t domain.Theme) *Theme {
	if t == domain.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles contains pre-configured lipgloss styles.
// Components share one *Styles, so Apply restyles all of them at once.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style

	// TableHeader style for result table headings.
	TableHeader lipgloss.Style

	// TableCell style for result table cells.
	TableCell lipgloss.Style

	// TableSelected style for the highlighted table row.
	TableSelected lipgloss.Style

	// ErrorBanner style for fetch failures.
	ErrorBanner lipgloss.Style

	// InfoBanner style for informational notices such as empty results.
	InfoBanner lipgloss.Style

	// Prompt style for blocking dialogs.
	Prompt lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	s := &Styles{}
	s.Apply(theme)
	return s
}

// Apply rebuilds every style from theme in place.
func (s *Styles) Apply(theme *Theme) {
	if theme == nil {
		theme = DefaultTheme()
	}

	s.theme = theme

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary)

	s.Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Secondary)

	s.Normal = lipgloss.NewStyle().
		Foreground(theme.Foreground)

	s.Muted = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Selected = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Background).
		Background(theme.Primary)

	s.Error = lipgloss.NewStyle().
		Foreground(theme.Error)

	s.Success = lipgloss.NewStyle().
		Foreground(theme.Success)

	s.Warning = lipgloss.NewStyle().
		Foreground(theme.Warning)

	s.InputField = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	s.StatusBar = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Background(theme.Surface).
		Padding(0, 1)

	s.Help = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Border = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	s.TableHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Padding(0, 1)

	s.TableCell = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 1)

	s.TableSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Background).
		Background(theme.Primary)

	s.ErrorBanner = lipgloss.NewStyle().
		Foreground(theme.Error).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(0, 1)

	s.InfoBanner = lipgloss.NewStyle().
		Foreground(theme.Warning).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Warning).
		Padding(0, 1)

	s.Prompt = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 3)
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
