package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/clean-api/internal/config"
	"github.com/phrazzld/clean-api/internal/platform/memory"
	"github.com/phrazzld/clean-api/internal/platform/postgres"
	"github.com/phrazzld/clean-api/internal/service"
	"github.com/phrazzld/clean-api/internal/store"
)

// application holds all dependencies of the running server.
type application struct {
	config *config.Config

	logger  *slog.Logger
	db      *sql.DB
	started time.Time

	userStore store.UserStore
	postStore store.PostStore

	userService service.UserService
	postService service.PostService
}

// newApplication wires stores and services. A nil db selects the in-memory stores.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		db:      db,
		started: time.Now(),
	}

	if db != nil {
		app.userStore = postgres.NewUserStore(db, logger)
		app.postStore = postgres.NewPostStore(db, logger)
	} else {
		app.userStore = memory.NewUserStore()
		app.postStore = memory.NewPostStore()
	}

	var err error
	app.userService, err = service.NewUserService(app.userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.postService, err = service.NewPostService(app.postStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// cleanup releases application resources after the server has stopped.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
