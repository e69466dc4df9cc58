package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"

	"timesheet/internal/api"
	"timesheet/internal/config"
	"timesheet/internal/logging"
	"timesheet/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	businessAPI api.BusinessAPI
	catalogAPI  api.CatalogAPI
	config      *config.Config
	out         io.Writer
	closers     []io.Closer
}

// AppFactory builds the App once configuration flags have been applied
type AppFactory func(ctx context.Context, cfg *config.Config) (*App, error)

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, catalogAPI api.CatalogAPI, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		businessAPI: businessAPI,
		catalogAPI:  catalogAPI,
		config:      cfg,
		out:         os.Stdout,
	}
}

// WithOutput redirects command output, mainly for tests
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Close releases the repository and the log file
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// OpenApp wires logger, repository, services and facade from cfg
func OpenApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, logCloser := logging.New(cfg.LogConfig())

	loc, err := cfg.Location()
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		logCloser.Close()
		return nil, err
	}
	logging.Debugf("opened %s storage at %s\n", cfg.Storage.Backend, cfg.GetDatabasePath())

	container, err := services.NewServiceContainer(ctx, repo,
		services.WithConfig(cfg),
		services.WithLogger(logger),
		services.WithLocation(loc),
		services.WithClock(timeNow),
	)
	if err != nil {
		logger.Error("loading timesheet failed", "backend", cfg.Storage.Backend, "error", err)
		repo.Close()
		logCloser.Close()
		return nil, err
	}

	app := NewApp(
		api.NewBusinessAPI(container, api.WithClock(timeNow), api.WithLocation(loc)),
		api.NewCatalogAPI(container),
		cfg,
	)
	app.closers = append(app.closers, logCloser, repo)

	if cfg.Application.Verbose {
		pterm.Info.Printfln("Storage: %s (%s)", cfg.Storage.Backend, cfg.GetDatabasePath())
	}
	return app, nil
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) location() *time.Location {
	loc, err := a.config.Location()
	if err != nil {
		return time.Local
	}
	return loc
}

// printTable renders rows with a header line as a boxed table
func printTable(w io.Writer, data [][]string) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintln(w, str)
	return nil
}
