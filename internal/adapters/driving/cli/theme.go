package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the colour theme",
	Long: `Show or change the light/dark theme used by the terminal UI.

A running TUI picks up the change immediately.`,
	RunE: runThemeGet,
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeGet,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
	RunE:      runThemeSet,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

func init() {
	themeCmd.AddCommand(themeGetCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeGet(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), svc.Settings.Theme())
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	theme := domain.Theme(args[0])
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme must be light or dark", domain.ErrInvalidInput)
	}

	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}
	if err := svc.Settings.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
	return nil
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}
	theme, err := svc.Settings.ToggleTheme()
	if err != nil {
		return fmt.Errorf("failed to toggle theme: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
	return nil
}
