package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	apperrors "github.com/medtrack/clinic-api/pkg/errors"
)

// PostgreSQL class 23 (integrity constraint violation) codes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
)

// translateWriteError maps driver errors on INSERT/UPDATE to the
// application taxonomy. parent names the entity a foreign key points at;
// the constraint check runs inside the statement, so a violation means
// nothing was written.
func translateWriteError(err error, resource, parent string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource, err)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgForeignKeyViolation:
			return apperrors.ForeignKey(parent, err)
		case pgNotNullViolation:
			return apperrors.Validation("required field is missing", err)
		}
	}
	return err
}

// translateDeleteError maps driver errors on DELETE. A foreign key
// violation here means dependent child rows still reference the target,
// which the restrict policy turns into a conflict.
func translateDeleteError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return apperrors.Conflict(resource+" is still referenced by dependent rows", err)
	}
	return err
}

// translateReadError maps lookup misses to NotFound.
func translateReadError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource, err)
	}
	return err
}
