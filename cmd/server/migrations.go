package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskm-api/internal/platform/postgres"
)

// runMigrations brings the schema up to date before the server starts
// accepting requests.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	if err := postgres.ApplyMigrations(db); err != nil {
		return err
	}

	version, err := postgres.MigrationVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("Database migrations applied", "version", version)
	return nil
}
