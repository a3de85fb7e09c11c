package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clean-api/internal/config"
	"github.com/phrazzld/clean-api/internal/platform/postgres"
)

// setupAppDatabase establishes the shared connection pool. It returns a nil
// pool when the memory driver is configured.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("using in-memory storage; data is lost on restart")
		return nil, nil
	}

	db, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
