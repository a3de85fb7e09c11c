package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clean-api/internal/config"
	"github.com/phrazzld/clean-api/internal/platform/postgres"
)

// handleMigrations executes a single goose command against the configured
// PostgreSQL database. It is called from run() when -migrate is set.
func handleMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	if !postgres.IsMigrateCommand(command) {
		return fmt.Errorf("unknown migration command %q", command)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %s driver, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("error closing database connection", "error", err)
		}
	}()

	return postgres.RunMigrations(ctx, db, command, logger)
}
