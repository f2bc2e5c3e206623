package main

import (
	"fmt"
	"os"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/config"
	"github.com/yourname/moodtracker/internal/storage"
)

// App holds what every command needs: the resolved config, the logger and
// the open store. Commands reach the collections only through the
// repository interfaces.
type App struct {
	cfg    *config.Config
	logger internal.Logger
	store  *storage.FileStore
}

func (a *App) Logger() internal.Logger { return a.logger }

func (a *App) HappinessRepo() storage.HappinessRepository { return a.store }

func (a *App) MediaRepo() storage.MediaRepository { return a.store }

func (a *App) init(dataDir string) error {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return err
	}

	logger, err := internal.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	store, err := storage.NewFileStore(cfg.HappinessFile, cfg.MediaFile, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.store = store
	return nil
}

func (a *App) close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
