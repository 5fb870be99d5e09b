package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	ierr "github.com/pedroramon/hotel-backend/internal/errors"
)

// pqUniqueViolation is the SQLSTATE postgres reports for a unique index conflict.
const pqUniqueViolation = "23505"

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// isUniqueViolation recognises unique index conflicts from either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// writeError marks a failed insert or update. Unique conflicts additionally
// carry ErrAlreadyExists so callers can tell them apart from other failures.
func writeError(err error, hint string, details map[string]interface{}) error {
	b := ierr.WithError(err).
		WithHint(hint).
		WithReportableDetails(details)
	if isUniqueViolation(err) {
		return ierr.WithError(b.Mark(ierr.ErrAlreadyExists)).Mark(ierr.ErrDatabase)
	}
	return b.Mark(ierr.ErrDatabase)
}
