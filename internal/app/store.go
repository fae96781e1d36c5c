package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/postgres"
	pgclient "github.com/heartmarshall/repairshop-backend/internal/adapter/postgres/client"
	pghistory "github.com/heartmarshall/repairshop-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite"
	liteclient "github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite/client"
	litehistory "github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite/history"
	"github.com/heartmarshall/repairshop-backend/internal/config"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

type clientStore interface {
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Create(ctx context.Context, c domain.Client) error
}

type historyStore interface {
	Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	ListByClient(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)
	NextID(ctx context.Context) (int64, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// store is the opened persistence backend with its repositories.
type store struct {
	driver  string
	sqlDB   *sql.DB
	clients clientStore
	history historyStore
	tx      txRunner
	pinger  interface{ Ping(ctx context.Context) error }
	close   func()
}

// sqlPinger adapts *sql.DB to the health check interface.
type sqlPinger struct{ db *sql.DB }

func (p sqlPinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// openStore connects to the configured backend. The returned sqlDB is the
// handle migrations run on.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		sqlDB := postgres.SQLDB(pool)
		log.Info("connected to postgres", slog.Int("max_conns", int(cfg.MaxConns)))
		return &store{
			driver:  cfg.Driver,
			sqlDB:   sqlDB,
			clients: pgclient.New(pool),
			history: pghistory.New(pool),
			tx:      postgres.NewTxManager(pool),
			pinger:  pool,
			close: func() {
				_ = sqlDB.Close()
				pool.Close()
			},
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		log.Info("opened sqlite store", slog.String("path", cfg.DSN))
		return &store{
			driver:  cfg.Driver,
			sqlDB:   db,
			clients: liteclient.New(db),
			history: litehistory.New(db),
			tx:      sqlite.NewTxManager(db),
			pinger:  sqlPinger{db: db},
			close:   func() { _ = db.Close() },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
