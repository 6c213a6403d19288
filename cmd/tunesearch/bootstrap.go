package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/tunesearch/internal/adapters/driven/catalog/itunes"
	"github.com/custodia-labs/tunesearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tunesearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tunesearch/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tunesearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driven"
	"github.com/custodia-labs/tunesearch/internal/core/ports/driving"
	"github.com/custodia-labs/tunesearch/internal/core/services"
	"github.com/custodia-labs/tunesearch/internal/logger"
)

// bootstrap wires the adapters into the services the commands use.
func bootstrap(_ context.Context, opts cli.Options) (*cli.Services, error) {
	logger.Section("Bootstrap")

	var (
		configStore  driven.ConfigStore
		historyStore driven.HistoryStore
		closers      []func() error
	)

	if opts.Ephemeral {
		logger.Debug("Using in-memory settings and history")
		configStore = memory.NewConfigStore()
		historyStore = memory.NewHistoryStore()
	} else {
		fileStore, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		logger.Debug("Config: %s", fileStore.Path())
		configStore = fileStore

		dataDir := ""
		if opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Debug("History: %s", store.Path())
		historyStore = store.HistoryStore()
		closers = append(closers, store.Close)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	baseURL := settings.Catalog.BaseURL
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	client, err := itunes.NewClient(baseURL, itunes.WithTimeout(settings.Catalog.Timeout))
	if err != nil {
		return nil, fmt.Errorf("creating catalog client: %w", err)
	}
	logger.Debug("Catalog: %s (timeout %s)", baseURL, settings.Catalog.Timeout)

	return &cli.Services{
		Settings:     settingsService,
		History:      services.NewHistoryService(historyStore),
		ResultAction: services.NewResultActionService(),
		NewController: func(presenter driving.Presenter) driving.SearchController {
			controller := services.NewSearchTableController(client, presenter)
			controller.SetHistoryStore(historyStore)
			return controller
		},
		Close: func() error {
			var errs []error
			for _, c := range closers {
				errs = append(errs, c())
			}
			return errors.Join(errs...)
		},
	}, nil
}
