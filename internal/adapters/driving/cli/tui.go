package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [term]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for tunesearch.

When a term is given it is searched immediately. Editing
~/.tunesearch/config.toml while the UI runs re-applies the theme.

Controls:
  Enter       - Search
  Tab         - Switch between the search box and the table
  ↑/k, ↓/j    - Move through results
  1 / 2 / 3   - Sort by title / artist / price (again to reverse)
  s           - Sort by the next column
  e           - Cycle the entity filter
  t           - Toggle light and dark theme
  o / y       - Open / copy the preview of the selected result
  Esc         - Dismiss a message
  q, Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := newTUIApp(cmd, args)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp wires a presenter-backed controller into a TUI app.
func newTUIApp(cmd *cobra.Command, args []string) (*tui.App, error) {
	svc, err := requireServices(cmd)
	if err != nil {
		return nil, err
	}

	presenter := tui.NewPresenter(tui.DefaultPresenterBuffer)
	ports := tui.NewPorts(svc.NewController(presenter), svc.Settings, svc.ResultAction)

	app, err := tui.NewApp(ports, presenter)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	if term := strings.TrimSpace(strings.Join(args, " ")); term != "" {
		app.WithQuery(term)
	}
	return app, nil
}
