// Package wire provides dependency injection for the rounds application.
// App owns the storage handle; every repository and service is built over it once.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	cliadapter "github.com/example/rounds/internal/adapters/cli"
	"github.com/example/rounds/internal/adapters/filesystem"
	"github.com/example/rounds/internal/adapters/render"
	"github.com/example/rounds/internal/adapters/sqlite"
	"github.com/example/rounds/internal/app"
	"github.com/example/rounds/internal/config"
	"github.com/example/rounds/internal/db"
	"github.com/example/rounds/internal/ports/primary"
	"github.com/example/rounds/internal/ports/secondary"
)

// App holds the wired services for one process.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	Drafts    primary.DraftService
	Catalog   primary.CatalogService
	Ordering  primary.OrderingService
	Snapshots primary.SnapshotService
	Reports   primary.ReportService
	History   primary.HistoryService
	Captures  primary.CaptureService

	database *sql.DB
}

// NewLogger builds the text logger used across the application.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// New opens the database named by cfg and wires every service over it.
// Logs go to logOut.
func New(cfg *config.Config, logOut io.Writer) (*App, error) {
	logger, err := NewLogger(logOut, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database opened", "path", cfg.DatabasePath())

	return build(cfg, database, logger), nil
}

func build(cfg *config.Config, database *sql.DB, logger *slog.Logger) *App {
	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	optionRepo := sqlite.NewOptionRepository(database)
	itemRepo := sqlite.NewChecklistItemRepository(database)
	draftRepo := sqlite.NewDraftRepository(database)
	historyRepo := sqlite.NewHistoryRepository(database)

	renderers := []secondary.ReportRenderer{
		render.NewPDFRenderer(cfg.ReportTitle, logger),
		render.NewXLSXRenderer(cfg.ReportTitle, logger),
	}

	// Create services (primary ports implementation)
	drafts := app.NewDraftService(draftRepo, logger)
	captures := app.NewCaptureService()
	snapshots := app.NewSnapshotService(sqlite.NewSessionRepository(database), captures)
	history := app.NewHistoryService(historyRepo)
	reports := app.NewReportService(
		snapshots,
		history,
		filesystem.NewArtifactStore(),
		renderers,
		app.ReportDefaults{Format: cfg.Format, OutputDir: cfg.ReportDir()},
		logger,
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Drafts:    drafts,
		Catalog:   app.NewCatalogService(optionRepo, itemRepo),
		Ordering:  app.NewOrderingService(itemRepo, logger),
		Snapshots: snapshots,
		Reports:   reports,
		History:   history,
		Captures:  captures,
		database:  database,
	}
}

// Close releases the storage handle.
func (a *App) Close() error {
	return a.database.Close()
}

// CatalogAdapter returns a new CatalogAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func (a *App) CatalogAdapter(out io.Writer) *cliadapter.CatalogAdapter {
	return cliadapter.NewCatalogAdapter(a.Catalog, a.Ordering, out)
}

// RouteAdapter returns a new RouteAdapter writing to out.
func (a *App) RouteAdapter(out io.Writer) *cliadapter.RouteAdapter {
	return cliadapter.NewRouteAdapter(a.Drafts, a.Catalog, a.Snapshots, out)
}

// ReportAdapter returns a new ReportAdapter writing to out.
func (a *App) ReportAdapter(out io.Writer) *cliadapter.ReportAdapter {
	return cliadapter.NewReportAdapter(a.Reports, a.History, a.Captures, out)
}
