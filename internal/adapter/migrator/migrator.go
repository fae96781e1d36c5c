// Package migrator applies the embedded goose migrations to a store.
package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/repairshop-backend/internal/config"
	"github.com/heartmarshall/repairshop-backend/migrations"
)

// Migrator runs schema migrations for one store driver.
type Migrator struct {
	provider *goose.Provider
	log      *slog.Logger
}

// Status describes one migration and whether it has been applied.
type Status struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

// New builds a Migrator for the given driver ("postgres" or "sqlite").
func New(driver string, db *sql.DB, log *slog.Logger) (*Migrator, error) {
	var dialect goose.Dialect
	switch driver {
	case config.DriverPostgres:
		dialect = goose.DialectPostgres
	case config.DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("migrator: unsupported driver %q", driver)
	}

	fsys, err := migrations.FS(driver)
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migrator: new provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		log:      log.With("component", "migrator", "driver", driver),
	}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrator: up: %w", err)
	}
	for _, r := range results {
		m.log.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if len(results) == 0 {
		m.log.Debug("schema up to date")
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("migrator: down: %w", err)
	}
	m.log.Info("migration rolled back",
		slog.Int64("version", r.Source.Version),
		slog.String("path", r.Source.Path),
	)
	return nil
}

// Status reports every known migration in version order.
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	list, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrator: status: %w", err)
	}

	out := make([]Status, len(list))
	for i, s := range list {
		out[i] = Status{
			Version:   s.Source.Version,
			Path:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		}
	}
	return out, nil
}
