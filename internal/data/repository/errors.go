// Package repository implements all database queries for fyyur using
// pgx directly (no ORM). Failure classes are exposed as sentinel errors
// so higher layers can decide between a 404 page, an inline form error,
// and a generic failure notification without string matching.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConstraint is returned when the database rejects a write because a
// foreign key does not resolve or a uniqueness rule is violated.
var ErrConstraint = errors.New("constraint violation")

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
)

// classifyPgError maps postgres error codes onto the sentinel taxonomy.
// Anything unrecognized passes through unchanged and surfaces as a
// generic persistence failure.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgForeignKeyViolation, pgUniqueViolation, pgNotNullViolation:
		return ErrConstraint
	}
	return err
}
