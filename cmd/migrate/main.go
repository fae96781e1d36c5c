// Command migrate applies or rolls back the embedded schema migrations for
// the configured store.
//
// Usage:
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the latest migration
//	migrate status   list migrations and whether they are applied
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/migrator"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/repairshop-backend/internal/app"
	"github.com/heartmarshall/repairshop-backend/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down|status")
		os.Exit(2)
	}
	cmd := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, closeDB, err := openDB(ctx, cfg.Database)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	m, err := migrator.New(cfg.Database.Driver, db, logger)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch cmd {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx)
	case "status":
		err = printStatus(ctx, m)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\nusage: migrate up|down|status\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migrate "+cmd+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func openDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		db := postgres.SQLDB(pool)
		return db, func() {
			_ = db.Close()
			pool.Close()
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func printStatus(ctx context.Context, m *migrator.Migrator) error {
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
	for _, s := range statuses {
		state, at := "pending", "-"
		if s.Applied {
			state, at = "applied", s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Version, state, at, s.Path)
	}
	return tw.Flush()
}
