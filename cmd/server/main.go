// Package main implements the entry point for the particle quantity server,
// which parses, converts and renders particle physics quantities over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/BenjaminTMilnes/PhysicsParticles/internal/config"
	"github.com/BenjaminTMilnes/PhysicsParticles/internal/platform/logger"
)

// ConfigFileEnv names an optional configuration file. When unset, config.yaml
// in the working directory is used if present.
const ConfigFileEnv = "PARTICLES_CONFIG_FILE"

func main() {
	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFromFile(os.Getenv(ConfigFileEnv))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"precision", cfg.Engine.Precision,
		"sig_figs", cfg.Engine.SigFigs)

	if cfg.Catalog.Path != "" {
		l.Debug("Catalog configuration", "path_present", true, "workers", cfg.Catalog.Workers)
	}

	return cfg, l, nil
}
