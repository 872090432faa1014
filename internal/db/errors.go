package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUniqueViolation reports whether err came from a unique index or
// constraint, for either backing driver. Stores use it to translate
// low-level conflicts into their own sentinel errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	// modernc.org/sqlite surfaces constraint failures as plain error text.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
