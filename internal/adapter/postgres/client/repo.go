// Package client implements the Client repository using PostgreSQL.
package client

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/repairshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

const table = "clients"

var columns = []string{"name", "machine", "registration_date", "email", "created_at"}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	Name             string    `db:"name"`
	Machine          string    `db:"machine"`
	RegistrationDate time.Time `db:"registration_date"`
	Email            string    `db:"email"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Client {
	return domain.Client{
		Name:             r.Name,
		Machine:          r.Machine,
		RegistrationDate: r.RegistrationDate,
		Email:            r.Email,
		CreatedAt:        r.CreatedAt,
	}
}

// GetByName returns the client with the given name.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, postgres.MapError(err, "client", name)
	}

	c := res.toDomain()
	return &c, nil
}

// List returns every client in store order.
func (r *Repo) List(ctx context.Context) ([]domain.Client, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "clients", "*")
	}

	clients := make([]domain.Client, len(rows))
	for i, res := range rows {
		clients[i] = res.toDomain()
	}
	return clients, nil
}

// Create inserts a client. When a client with the same name already exists
// nothing is written and domain.ErrAlreadyExists is returned; the existing
// row is never modified.
func (r *Repo) Create(ctx context.Context, c domain.Client) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "machine", "registration_date", "email").
		Values(c.Name, c.Machine, c.RegistrationDate, c.Email).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create client query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "client", c.Name)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %q: %w", c.Name, domain.ErrAlreadyExists)
	}

	return nil
}
