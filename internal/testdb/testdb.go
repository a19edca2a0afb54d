// Package testdb provides database helpers for integration tests. Tests
// using it skip themselves unless TASKM_TEST_DB_URL points at a disposable
// PostgreSQL database.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/taskm-api/internal/platform/postgres"
)

// EnvDatabaseURL names the environment variable carrying the integration
// test database URL.
const EnvDatabaseURL = "TASKM_TEST_DB_URL"

// GetTestDB opens a connection to the integration test database with the
// schema migrated, skipping the test when no database is configured. The
// connection is closed automatically when the test finishes.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		t.Skipf("skipping integration test: %s not set", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	if err := postgres.ApplyMigrations(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// ResetTables empties every application table so each test starts from a
// clean slate. Identity sequences restart from 1.
func ResetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(`TRUNCATE tasks, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}
