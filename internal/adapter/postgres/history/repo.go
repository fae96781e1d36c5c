// Package history implements the HistoryEntry repository using PostgreSQL.
package history

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/repairshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

const table = "history_entries"

var columns = []string{
	"id", "client_name", "machine", "work_date", "description", "material_state",
	"phone", "technician", "serial_number", "end_date", "email", "status", "created_at",
}

// Repo provides history entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            int64      `db:"id"`
	ClientName    string     `db:"client_name"`
	Machine       string     `db:"machine"`
	WorkDate      time.Time  `db:"work_date"`
	Description   string     `db:"description"`
	MaterialState string     `db:"material_state"`
	Phone         string     `db:"phone"`
	Technician    string     `db:"technician"`
	SerialNumber  string     `db:"serial_number"`
	EndDate       *time.Time `db:"end_date"`
	Email         string     `db:"email"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:            r.ID,
		ClientName:    r.ClientName,
		Machine:       r.Machine,
		WorkDate:      r.WorkDate,
		Description:   r.Description,
		MaterialState: r.MaterialState,
		Phone:         r.Phone,
		Technician:    r.Technician,
		SerialNumber:  r.SerialNumber,
		EndDate:       r.EndDate,
		Email:         r.Email,
		Status:        domain.Status(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

// Create inserts a history entry and returns it with the store-assigned id
// and creation time. A missing client yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"client_name", "machine", "work_date", "description", "material_state",
			"phone", "technician", "serial_number", "end_date", "email", "status",
		).
		Values(
			e.ClientName, e.Machine, e.WorkDate, e.Description, e.MaterialState,
			e.Phone, e.Technician, e.SerialNumber, e.EndDate, e.Email, string(e.Status),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create history entry query: %w", err)
	}

	created := e
	err = postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "history_entry for client", e.ClientName)
	}

	return &created, nil
}

// ListByClient returns all entries of a client ordered by id. An unknown
// client yields an empty slice.
func (r *Repo) ListByClient(ctx context.Context, clientName string) ([]domain.HistoryEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"client_name": clientName}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "history of client", clientName)
	}

	entries := make([]domain.HistoryEntry, len(rows))
	for i, res := range rows {
		entries[i] = res.toDomain()
	}
	return entries, nil
}

// NextID returns the id the next inserted entry is expected to get
// (max(id)+1, or 1 on an empty table). Concurrent inserts may take it first.
func (r *Repo) NextID(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder().
		Select("COALESCE(MAX(id), 0) + 1").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build next id query: %w", err)
	}

	var next int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&next); err != nil {
		return 0, postgres.MapError(err, "history_entries", "next id")
	}
	return next, nil
}

