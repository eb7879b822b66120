package db

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes the repositories translate into domain errors.
const (
	PgForeignKeyViolation = "23503"
	PgUniqueViolation     = "23505"
	PgCheckViolation      = "23514"
)

// PgErrorCode returns the SQLSTATE of a lib/pq error, or "" for anything else.
func PgErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func IsForeignKeyViolation(err error) bool {
	return PgErrorCode(err) == PgForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	return PgErrorCode(err) == PgUniqueViolation
}

func IsCheckViolation(err error) bool {
	return PgErrorCode(err) == PgCheckViolation
}
