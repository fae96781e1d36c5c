package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
)

// MapError converts database/sql and SQLite errors to domain errors, prefixing
// them with the entity and key they concern. Context errors pass through.
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

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return domain.ErrAlreadyExists
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return domain.ErrClientNotFound
		case sqlite3.SQLITE_CONSTRAINT:
			if mapped := mapConstraintMessage(sqliteErr.Error()); mapped != nil {
				return mapped
			}
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

// mapConstraintMessage classifies a constraint failure reported with the
// primary result code only. It returns nil for CHECK and NOT NULL failures,
// which are store failures like any other.
func mapConstraintMessage(msg string) error {
	switch {
	case strings.Contains(msg, "UNIQUE"):
		return domain.ErrAlreadyExists
	case strings.Contains(msg, "FOREIGN KEY"):
		return domain.ErrClientNotFound
	default:
		return nil
	}
}
