// Package history implements the HistoryEntry repository using SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

const table = "history_entries"

var columns = []string{
	"id", "client_name", "machine", "work_date", "description", "material_state",
	"phone", "technician", "serial_number", "end_date", "email", "status", "created_at",
}

// Repo provides history entry persistence backed by SQLite.
type Repo struct {
	db sqlite.Querier
}

// New creates a new history repository.
func New(db sqlite.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            int64          `db:"id"`
	ClientName    string         `db:"client_name"`
	Machine       string         `db:"machine"`
	WorkDate      string         `db:"work_date"`
	Description   string         `db:"description"`
	MaterialState string         `db:"material_state"`
	Phone         string         `db:"phone"`
	Technician    string         `db:"technician"`
	SerialNumber  string         `db:"serial_number"`
	EndDate       sql.NullString `db:"end_date"`
	Email         string         `db:"email"`
	Status        string         `db:"status"`
	CreatedAt     string         `db:"created_at"`
}

func (r row) toDomain() (domain.HistoryEntry, error) {
	work, err := domain.ParseDate(r.WorkDate)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry %d: work_date: %w", r.ID, err)
	}

	var end *time.Time
	if r.EndDate.Valid {
		t, err := domain.ParseDate(r.EndDate.String)
		if err != nil {
			return domain.HistoryEntry{}, fmt.Errorf("history_entry %d: end_date: %w", r.ID, err)
		}
		end = &t
	}

	created, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("history_entry %d: created_at: %w", r.ID, err)
	}

	return domain.HistoryEntry{
		ID:            r.ID,
		ClientName:    r.ClientName,
		Machine:       r.Machine,
		WorkDate:      work,
		Description:   r.Description,
		MaterialState: r.MaterialState,
		Phone:         r.Phone,
		Technician:    r.Technician,
		SerialNumber:  r.SerialNumber,
		EndDate:       end,
		Email:         r.Email,
		Status:        domain.Status(r.Status),
		CreatedAt:     created,
	}, nil
}

// Create inserts a history entry and returns it with the store-assigned id
// and creation time. A missing client yields domain.ErrClientNotFound.
func (r *Repo) Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error) {
	var end any
	if e.EndDate != nil {
		end = domain.FormatDate(*e.EndDate)
	}

	query, args, err := sqlite.Builder().
		Insert(table).
		Columns(
			"client_name", "machine", "work_date", "description", "material_state",
			"phone", "technician", "serial_number", "end_date", "email", "status",
		).
		Values(
			e.ClientName, e.Machine, domain.FormatDate(e.WorkDate), e.Description, e.MaterialState,
			e.Phone, e.Technician, e.SerialNumber, end, e.Email, string(e.Status),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create history entry query: %w", err)
	}

	var createdAt string
	created := e
	err = sqlite.QuerierFromCtx(ctx, r.db).
		QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &createdAt)
	if err != nil {
		return nil, sqlite.MapError(err, "history_entry for client", e.ClientName)
	}

	created.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("history_entry %d: created_at: %w", created.ID, err)
	}

	return &created, nil
}

// ListByClient returns all entries of a client ordered by id. An unknown
// client yields an empty slice.
func (r *Repo) ListByClient(ctx context.Context, clientName string) ([]domain.HistoryEntry, error) {
	query, args, err := sqlite.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"client_name": clientName}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history query: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, sqlite.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, "history of client", clientName)
	}

	entries := make([]domain.HistoryEntry, 0, len(rows))
	for _, res := range rows {
		e, err := res.toDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// NextID returns max(id)+1 over all entries, 1 on an empty table.
func (r *Repo) NextID(ctx context.Context) (int64, error) {
	query, args, err := sqlite.Builder().
		Select("COALESCE(MAX(id), 0) + 1").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build next id query: %w", err)
	}

	var next int64
	if err := sqlite.QuerierFromCtx(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, sqlite.MapError(err, "history_entries", "next id")
	}
	return next, nil
}
