package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
const uniqueViolationCode = "23505"

// usersEmailConstraint is the name PostgreSQL assigns to the UNIQUE(email) constraint.
const usersEmailConstraint = "users_email_key"

// AsPgError extracts a *pgconn.PgError from err's chain.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// isUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func isUniqueViolation(err error) bool {
	pgErr, ok := AsPgError(err)
	return ok && pgErr.Code == uniqueViolationCode
}

// IsEmailUniqueViolation reports whether err is a unique violation on the
// users email constraint. Violations without a constraint name are treated as
// email violations since it is the only unique column on users.
func IsEmailUniqueViolation(err error) bool {
	if !isUniqueViolation(err) {
		return false
	}
	pgErr, _ := AsPgError(err)
	return pgErr.ConstraintName == "" || pgErr.ConstraintName == usersEmailConstraint
}

// errorCode returns the SQLSTATE of err, or an empty string. Used only as a
// log attribute; classification beyond uniqueness is deliberately coarse.
func errorCode(err error) string {
	if pgErr, ok := AsPgError(err); ok {
		return pgErr.Code
	}
	return ""
}
