package cli

import (
	"bufio"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure search defaults, the catalog endpoint and the theme.

Use subcommands to show the settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long: `Run an interactive wizard to configure all settings step by step.
Press enter at any prompt to keep the value shown in brackets.`,
	RunE: runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Search]")
	fmt.Fprintf(out, "  Entity: %s (%s)\n", settings.Search.Entity.Description(), settings.Search.Entity)
	fmt.Fprintf(out, "  Limit: %d\n", settings.Search.Limit)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Catalog]")
	fmt.Fprintf(out, "  Base URL: %s\n", settings.Catalog.BaseURL)
	fmt.Fprintf(out, "  Timeout: %s\n", formatTimeout(settings.Catalog.Timeout))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[UI]")
	fmt.Fprintf(out, "  Theme: %s\n", settings.UI.Theme)

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}

	current, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings := *current

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "tunesearch Settings Wizard")
	fmt.Fprintln(out, "==========================")
	fmt.Fprintln(out)

	// Step 1: Entity
	fmt.Fprintln(out, "Step 1: Default Entity")
	fmt.Fprintln(out, "----------------------")
	kinds := domain.AllEntityKinds()
	selected := 1
	for i, kind := range kinds {
		if kind == settings.Search.Entity {
			selected = i + 1
		}
		fmt.Fprintf(out, "  %d. %s\n", i+1, kind.Description())
	}
	fmt.Fprintf(out, "\nEnter choice [%d]: ", selected)
	idx := parseChoice(readLine(reader), len(kinds), selected)
	settings.Search.Entity = kinds[idx-1]
	fmt.Fprintln(out)

	// Step 2: Limit
	fmt.Fprintln(out, "Step 2: Result Limit")
	fmt.Fprintln(out, "--------------------")
	fmt.Fprintf(out, "Enter limit 1-%d [%d]: ", domain.MaxResultLimit, settings.Search.Limit)
	settings.Search.Limit = parseChoice(readLine(reader), domain.MaxResultLimit, settings.Search.Limit)
	fmt.Fprintln(out)

	// Step 3: Catalog
	fmt.Fprintln(out, "Step 3: Catalog")
	fmt.Fprintln(out, "---------------")
	fmt.Fprintf(out, "Enter base URL [%s]: ", settings.Catalog.BaseURL)
	if input := readLine(reader); input != "" {
		if err := validateBaseURL(input); err != nil {
			return err
		}
		settings.Catalog.BaseURL = input
	}
	fmt.Fprintf(out, "Enter timeout in seconds, 0 for none [%d]: ", int(settings.Catalog.Timeout/time.Second))
	if input := readLine(reader); input != "" {
		seconds, err := strconv.Atoi(input)
		if err != nil || seconds < 0 {
			return fmt.Errorf("%w: timeout must be a non-negative number of seconds", domain.ErrInvalidInput)
		}
		settings.Catalog.Timeout = time.Duration(seconds) * time.Second
	}
	fmt.Fprintln(out)

	// Step 4: Theme
	fmt.Fprintln(out, "Step 4: Theme")
	fmt.Fprintln(out, "-------------")
	themes := []domain.Theme{domain.ThemeLight, domain.ThemeDark}
	selected = 1
	for i, theme := range themes {
		if theme == settings.UI.Theme {
			selected = i + 1
		}
		fmt.Fprintf(out, "  %d. %s\n", i+1, theme)
	}
	fmt.Fprintf(out, "\nEnter choice [%d]: ", selected)
	idx = parseChoice(readLine(reader), len(themes), selected)
	settings.UI.Theme = themes[idx-1]
	fmt.Fprintln(out)

	if err := svc.Settings.Save(&settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintln(out, "Configuration Complete!")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintln(out, "All settings are valid and saved.")
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base URL must be an absolute http(s) URL", domain.ErrInvalidInput)
	}
	return nil
}

func formatTimeout(d time.Duration) string {
	if d <= 0 {
		return "none"
	}
	return d.String()
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

