// Package cli wires configuration, storage and use cases for the dockyard commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/domain/layout"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/layoutfile"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/infrastructure/schema"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/input"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	Store   *layoutfile.Store
	db      *sqlite.LazyDB
	Presets repository.LayoutPresetRepository

	// Use cases
	RestoreUC      *usecase.RestoreLayoutUseCase
	SnapshotUC     *usecase.SnapshotLayoutUseCase
	PresetsUC      *usecase.ManagePresetsUseCase
	SearchPanelsUC *usecase.SearchPanelsUseCase
	LayoutSchemaUC *usecase.GetLayoutSchemaUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. configFile
// overrides the XDG config location when set.
func NewApp(configFile string) (*App, error) {
	mgr, cfg, cfgErr := loadConfig(configFile)
	if cfgErr != nil && configFile != "" {
		return nil, cfgErr
	}

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(cfg.Logging.Level), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       cfg.Logging.EnableFileLog,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: true,
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		logger = logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	}
	ctx := logging.WithContext(context.Background(), logger)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("config not loaded, using defaults")
	}

	store, err := layoutfile.NewOSStore(cfg.Layout.File)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("layout file: %w", err)
	}
	ctx = logging.WithLayoutFile(ctx, store.Path())

	// presets are opened on first use so layout commands never touch SQLite
	db := sqlite.NewLazyDB(cfg.Database.Path)
	presets := sqlite.NewLazyLayoutPresetRepository(db)

	logger.Debug().
		Str("layout_file", store.Path()).
		Str("db_path", cfg.Database.Path).
		Msg("cli initialized")

	return &App{
		Config:         cfg,
		Manager:        mgr,
		Theme:          styles.NewTheme(),
		Store:          store,
		db:             db,
		Presets:        presets,
		RestoreUC:      usecase.NewRestoreLayoutUseCase(store),
		SnapshotUC:     usecase.NewSnapshotLayoutUseCase(store),
		PresetsUC:      usecase.NewManagePresetsUseCase(presets),
		SearchPanelsUC: usecase.NewSearchPanelsUseCase(),
		LayoutSchemaUC: usecase.NewGetLayoutSchemaUseCase(schema.NewLayoutProvider()),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:            ctx,
		logCleanup:     logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Policy returns the ratio policy from the layout config.
func (a *App) Policy() usecase.LayoutPolicy {
	return usecase.LayoutPolicy{
		DefaultRatio:  a.Config.Layout.DefaultRatio,
		MinSplitRatio: a.Config.Layout.MinSplitRatio,
		MaxSplitRatio: a.Config.Layout.MaxSplitRatio,
	}
}

// SolverOptions returns the solver tuning for pixel viewports.
func (a *App) SolverOptions() layout.Options {
	return layout.Options{MinExtent: a.Config.Layout.MinExtent}
}

// DragOptions returns the drag controller tuning for pixel viewports.
func (a *App) DragOptions() input.DragOptions {
	return DragOptionsFrom(a.Config, false)
}

// DragOptionsFrom builds drag options from cfg. With cells set the
// thresholds and minimum extents are taken from the preview section, which
// is measured in terminal cells.
func DragOptionsFrom(cfg *config.Config, cells bool) input.DragOptions {
	opts := input.DragOptions{
		Threshold:        cfg.Drag.Threshold,
		EdgeBand:         cfg.Drag.EdgeBand,
		DividerTolerance: cfg.Drag.DividerTolerance,
		MinRatio:         cfg.Layout.MinSplitRatio,
		MaxRatio:         cfg.Layout.MaxSplitRatio,
		Solver:           layout.Options{MinExtent: cfg.Layout.MinExtent},
	}
	if cells {
		opts.Threshold = cfg.Preview.DragThreshold
		opts.DividerTolerance = 1
		opts.Solver.MinExtent = cfg.Preview.MinExtent
	}
	return opts
}

// LoadLayout restores the working layout and wraps it for mutation.
func (a *App) LoadLayout(ctx context.Context) (*usecase.ManageLayoutUseCase, *usecase.RestoreLayoutOutput, error) {
	out, err := a.RestoreUC.Execute(ctx)
	if err != nil {
		return nil, nil, err
	}
	history := usecase.NewLayoutHistory(a.Config.Layout.HistoryLimit)
	return usecase.NewManageLayoutUseCase(out.Tree, history, a.Policy()), out, nil
}

// SaveLayout writes the tree held by uc back to the layout file.
func (a *App) SaveLayout(ctx context.Context, uc *usecase.ManageLayoutUseCase) error {
	return a.SnapshotUC.Execute(ctx, uc.Tree())
}

// loadConfig loads configuration from the standard locations, or from
// configFile when set. On failure the defaults are returned with the error.
func loadConfig(configFile string) (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, defaultsWithPaths(), err
	}
	if configFile != "" {
		mgr.SetConfigFile(configFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, defaultsWithPaths(), err
	}
	return mgr, mgr.Get(), nil
}

func defaultsWithPaths() *config.Config {
	cfg := config.DefaultConfig()
	if path, err := config.GetLayoutFile(); err == nil {
		cfg.Layout.File = path
	}
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	return cfg
}
