// Package cli provides the cobra commands for tunesearch.
// It is a driving adapter: commands call into the core through the
// driving ports supplied by the composition root.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// Environment variables read at startup. Values from a .env file in the
// working directory are loaded first and never override the environment.
const (
	EnvConfigDir = "TUNESEARCH_CONFIG_DIR"
	EnvBaseURL   = "TUNESEARCH_BASE_URL"
)

// ErrNotConfigured is returned when a command runs without services.
var ErrNotConfigured = errors.New("services not configured")

// Options are the global settings passed to the bootstrap function.
type Options struct {
	// ConfigDir holds config.toml and the data directory.
	// Empty selects ~/.tunesearch.
	ConfigDir string

	// Ephemeral keeps settings and history in memory only.
	Ephemeral bool

	// BaseURL overrides the catalog endpoint from the settings.
	BaseURL string
}

// Services holds the driving ports the commands use.
type Services struct {
	Settings     driving.SettingsService
	History      driving.HistoryService
	ResultAction driving.ResultActionService

	// NewController returns a search controller reporting to presenter.
	NewController func(presenter driving.Presenter) driving.SearchController

	// Close releases anything the bootstrap opened. It may be nil.
	Close func() error
}

// Bootstrap builds the services for the given options.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	version = "dev"

	verbose   bool
	configDir string
	ephemeral bool
	logFile   string

	bootstrap Bootstrap
	active    *Services
)

var rootCmd = &cobra.Command{
	Use:   "tunesearch",
	Short: "Search the iTunes music catalog from your terminal",
	Long: `tunesearch queries the public iTunes Search API and shows the results
as a sortable table, either printed once or in an interactive terminal UI.

Preferences live in ~/.tunesearch/config.toml and a history of past
searches in ~/.tunesearch/data/history.db.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configure,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.tunesearch, env "+EnvConfigDir+")")
	flags.BoolVar(&ephemeral, "ephemeral", false, "keep settings and history in memory only")
	flags.StringVar(&logFile, "log-file", "", "also write JSON logs to this file, rotated by size")
}

// SetBootstrap sets the function that builds services on first use.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command and releases services afterwards.
func Execute(ctx context.Context) error {
	defer closeServices()
	return rootCmd.ExecuteContext(ctx)
}

func configure(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	loadEnv()

	if logFile != "" {
		if err := logger.EnableFile(logger.FileConfig{Path: logFile}); err != nil {
			return fmt.Errorf("enabling log file: %w", err)
		}
	}
	return nil
}

// loadEnv reads .env from the working directory when present.
func loadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Loading .env: %v", err)
	}
}

// options resolves the global flags against the environment.
func options() Options {
	dir := configDir
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}
	return Options{
		ConfigDir: dir,
		Ephemeral: ephemeral,
		BaseURL:   os.Getenv(EnvBaseURL),
	}
}

// requireServices bootstraps services on first use.
func requireServices(cmd *cobra.Command) (*Services, error) {
	if active != nil {
		return active, nil
	}
	if bootstrap == nil {
		return nil, ErrNotConfigured
	}

	svc, err := bootstrap(cmd.Context(), options())
	if err != nil {
		return nil, fmt.Errorf("initialising: %w", err)
	}
	if svc == nil || svc.NewController == nil || svc.Settings == nil {
		return nil, ErrNotConfigured
	}
	active = svc
	return svc, nil
}

func closeServices() {
	if active != nil && active.Close != nil {
		if err := active.Close(); err != nil {
			logger.Warn("Closing stores: %v", err)
		}
	}
	active = nil
	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
}
