package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskm-api/internal/config"
	"github.com/phrazzld/taskm-api/internal/platform/postgres"
	"github.com/phrazzld/taskm-api/internal/service"
	"github.com/phrazzld/taskm-api/internal/service/auth"
	"github.com/phrazzld/taskm-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService auth.JWTService
	hasher     *auth.BcryptHasher

	userService service.UserService
	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. The database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	app.userService = service.NewUserService(app.userStore, db, app.hasher, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
