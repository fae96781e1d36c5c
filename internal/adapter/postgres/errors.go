package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors, prefixing them with
// the entity and key they concern.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %q: %w", entity, key, mapError(err))
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return domain.ErrAlreadyExists
		case "23503": // foreign_key_violation, only history_entries.client_name
			return domain.ErrClientNotFound
		}
	}

	// Everything else, including CHECK and NOT NULL violations, is a store
	// failure: input is validated before it reaches the store.
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
