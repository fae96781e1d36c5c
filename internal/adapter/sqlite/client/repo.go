// Package client implements the Client repository using SQLite.
package client

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

const table = "clients"

var columns = []string{"name", "machine", "registration_date", "email", "created_at"}

// Repo provides client persistence backed by SQLite.
type Repo struct {
	db sqlite.Querier
}

// New creates a new client repository.
func New(db sqlite.Querier) *Repo {
	return &Repo{db: db}
}

// Dates are stored as text; see migrations/sqlite.
type row struct {
	Name             string `db:"name"`
	Machine          string `db:"machine"`
	RegistrationDate string `db:"registration_date"`
	Email            string `db:"email"`
	CreatedAt        string `db:"created_at"`
}

func (r row) toDomain() (domain.Client, error) {
	reg, err := domain.ParseDate(r.RegistrationDate)
	if err != nil {
		return domain.Client{}, fmt.Errorf("client %q: registration_date: %w", r.Name, err)
	}
	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return domain.Client{}, fmt.Errorf("client %q: created_at: %w", r.Name, err)
	}
	return domain.Client{
		Name:             r.Name,
		Machine:          r.Machine,
		RegistrationDate: reg,
		Email:            r.Email,
		CreatedAt:        created,
	}, nil
}

// GetByName returns the client with the given name.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client query: %w", err)
	}

	var res row
	if err := sqlscan.Get(ctx, sqlite.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, sqlite.MapError(err, "client", name)
	}

	c, err := res.toDomain()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every client in store order.
func (r *Repo) List(ctx context.Context) ([]domain.Client, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients query: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "clients", "*")
	}

	clients := make([]domain.Client, 0, len(rows))
	for _, res := range rows {
		c, err := res.toDomain()
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

// Create inserts a client. An existing client with the same name is left
// untouched and domain.ErrAlreadyExists is returned.
func (r *Repo) Create(ctx context.Context, c domain.Client) error {
	query, args, err := sqlite.Builder().
		Insert(table).
		Columns("name", "machine", "registration_date", "email").
		Values(c.Name, c.Machine, domain.FormatDate(c.RegistrationDate), c.Email).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create client query: %w", err)
	}

	res, err := sqlite.QuerierFromCtx(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, "client", c.Name)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return sqlite.MapError(err, "client", c.Name)
	}
	if n == 0 {
		return fmt.Errorf("client %q: %w", c.Name, domain.ErrAlreadyExists)
	}

	return nil
}
