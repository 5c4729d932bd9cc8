package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/catalog"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/config"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/engine"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	engine   *engine.Engine
	compiler *catalog.Compiler

	// database is nil unless a catalog path is configured.
	database *catalog.Database
}

// newApplication creates a new application instance with all dependencies
// initialized. When a catalog path is configured the catalog is compiled
// before the server starts.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.engine, err = engine.New(cfg.Engine, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create quantity engine: %w", err)
	}
	logger.Info("Quantity engine initialized",
		"precision", app.engine.Precision(),
		"sig_figs", app.engine.SigFigs())

	app.compiler = catalog.NewCompiler(app.engine, cfg.Catalog.Workers, logger)

	if cfg.Catalog.Path != "" {
		results, err := app.compiler.CompileFile(ctx, cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to compile catalog: %w", err)
		}

		db := catalog.NewDatabase(results)
		app.database = &db
		logger.Info("Catalog compiled",
			"records", len(results),
			"particles", len(db.Particles))
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
