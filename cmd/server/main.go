// Package main implements the entry point for the task management API
// server: account signup and login, JWT-based session handling, and
// per-user task CRUD backed by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/phrazzld/taskm-api/internal/config"
	"github.com/phrazzld/taskm-api/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; the environment may carry everything.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	if err := run(context.Background()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires dependencies, applies migrations, and
// starts the HTTP server. It blocks until shutdown.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
