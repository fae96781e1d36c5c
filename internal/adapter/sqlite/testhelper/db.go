// Package testhelper opens migrated in-memory SQLite databases for tests.
package testhelper

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/migrator"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite"
)

// SetupTestDB returns a fresh in-memory database with all migrations applied.
// Each call gets its own database; it is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("testhelper: open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrator.New("sqlite", db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("testhelper: migrator: %v", err)
	}
	if err := m.Up(ctx); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}

	return db
}

// SeedClient inserts a client row directly.
func SeedClient(t *testing.T, db *sql.DB, name string) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO clients (name, machine, registration_date, email) VALUES (?, ?, ?, ?)`,
		name, "Laptop", "2024-03-01", name+"@example.com",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClient: %v", err)
	}
}
