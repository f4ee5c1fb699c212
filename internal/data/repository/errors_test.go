package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyPgError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ErrConstraint},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrConstraint},
		{"not null violation", &pgconn.PgError{Code: "23502"}, ErrConstraint},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyPgError(tc.err); !errors.Is(got, tc.want) {
				t.Errorf("classifyPgError = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyPgError_PassThrough(t *testing.T) {
	plain := errors.New("connection refused")
	if got := classifyPgError(plain); got != plain {
		t.Errorf("classifyPgError = %v, want the original error", got)
	}

	// An unrelated postgres code is not a constraint failure.
	serialization := &pgconn.PgError{Code: "40001"}
	if got := classifyPgError(serialization); errors.Is(got, ErrConstraint) {
		t.Error("serialization failure was misclassified as constraint violation")
	}
}
