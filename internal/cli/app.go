package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Takumouse/sales-dashboard2/internal/config"
	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
	"github.com/Takumouse/sales-dashboard2/internal/dataset"
	"github.com/Takumouse/sales-dashboard2/internal/logger"
	"github.com/Takumouse/sales-dashboard2/internal/order"
	"github.com/Takumouse/sales-dashboard2/internal/storage"
	"github.com/Takumouse/sales-dashboard2/internal/storage/file"
	"github.com/Takumouse/sales-dashboard2/internal/storage/sqlite"
)

// App holds everything a subcommand needs once startup is done.
type App struct {
	Config      *config.Config
	Logger      *logger.Logger
	Store       *order.Store
	Origin      dataset.Origin
	Preferences storage.Preferences
	Controller  *dashboard.Controller
	Out         io.Writer
}

// OpenPreferences opens the configured preference backend and applies its migrations.
func OpenPreferences(ctx context.Context, conf *config.Config, logger *logger.Logger) (storage.Preferences, error) {
	var prefs storage.Preferences
	var err error

	switch conf.Preferences.Driver {
	case config.DriverFile:
		logger.Info("Using preferences file", "path", conf.Preferences.File)
		prefs, err = file.New(conf.Preferences.File)
	case config.DriverSQLite:
		logger.Info("Using database", "path", conf.DB.Source)
		prefs, err = sqlite.New(conf.DB)
	default:
		err = fmt.Errorf("unsupported preferences driver %q", conf.Preferences.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open preferences: %w", err)
	}

	if err = prefs.ApplyMigrations(ctx, logger); err != nil {
		return nil, errors.Join(fmt.Errorf("unable to create schema: %w", err), prefs.Close())
	}

	return prefs, nil
}

// NewApp opens the preferences, loads the dataset once and builds the
// dashboard controller.
func NewApp(ctx context.Context, conf *config.Config, logger *logger.Logger) (*App, error) {
	prefs, err := OpenPreferences(ctx, conf, logger)
	if err != nil {
		return nil, err
	}

	loadCtx, cancel := context.WithTimeout(ctx, conf.Dataset.Timeout)
	defer cancel()

	store, origin := dataset.LoadStore(loadCtx, conf.Dataset.Source, logger.Component("dataset"))

	return &App{
		Config:      conf,
		Logger:      logger,
		Store:       store,
		Origin:      origin,
		Preferences: prefs,
		Controller:  dashboard.New(ctx, store, prefs, logger, conf.Pagination.PageSize),
		Out:         os.Stdout,
	}, nil
}

func (a *App) Close() error {
	if a.Preferences == nil {
		return nil
	}
	return a.Preferences.Close()
}
