package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// recordingDB captures every statement a repository issues so tests can
// assert on the SQL text and its arguments.
type recordingDB struct {
	sql  []string
	args [][]any
}

func (db *recordingDB) record(sql string, args []any) {
	db.sql = append(db.sql, sql)
	db.args = append(db.args, args)
}

func (db *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.record(sql, args)
	return emptyRows{}, nil
}

func (db *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.record(sql, args)
	return zeroRow{}
}

func (db *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.record(sql, args)
	return pgconn.CommandTag{}, nil
}

func (db *recordingDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (db *recordingDB) Ping(ctx context.Context) error { return nil }

func (db *recordingDB) Close() {}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type zeroRow struct{}

func (zeroRow) Scan(dest ...any) error { return nil }

// A show starting exactly at the reference time must fall out of both
// partitions, so every predicate has to compare strictly.
func TestShowPartitionsCompareStrictly(t *testing.T) {
	tests := []struct {
		name string
		call func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error
		want string
	}{
		{
			name: "past for venue",
			call: func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error {
				_, err := repo.FindPastForVenue(ctx, id, now)
				return err
			},
			want: "s.venue_id = $1 AND s.start_time < $2",
		},
		{
			name: "upcoming for venue",
			call: func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error {
				_, err := repo.FindUpcomingForVenue(ctx, id, now)
				return err
			},
			want: "s.venue_id = $1 AND s.start_time > $2",
		},
		{
			name: "past for artist",
			call: func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error {
				_, err := repo.FindPastForArtist(ctx, id, now)
				return err
			},
			want: "s.artist_id = $1 AND s.start_time < $2",
		},
		{
			name: "upcoming for artist",
			call: func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error {
				_, err := repo.FindUpcomingForArtist(ctx, id, now)
				return err
			},
			want: "s.artist_id = $1 AND s.start_time > $2",
		},
	}

	id := uuid.New()
	now := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{}
			repo := NewShowRepository(db, zap.NewNop())

			if err := tt.call(repo, context.Background(), id, now); err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if len(db.sql) != 1 {
				t.Fatalf("issued %d statements, want 1", len(db.sql))
			}
			if !strings.Contains(db.sql[0], tt.want) {
				t.Errorf("query = %q, want predicate %q", db.sql[0], tt.want)
			}
			if !strings.Contains(db.sql[0], "ORDER BY s.start_time ASC") {
				t.Errorf("query = %q, want ORDER BY s.start_time ASC", db.sql[0])
			}
			if got := db.args[0][0]; got != id {
				t.Errorf("args[0] = %v, want %v", got, id)
			}
			if got, ok := db.args[0][1].(time.Time); !ok || !got.Equal(now) {
				t.Errorf("args[1] = %v, want %v", db.args[0][1], now)
			}
		})
	}
}

func TestUpcomingCountsCompareStrictly(t *testing.T) {
	tests := []struct {
		name string
		call func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error
		want string
	}{
		{
			name: "for venue",
			call: func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error {
				_, err := repo.CountUpcomingForVenue(ctx, id, now)
				return err
			},
			want: "venue_id = $1 AND start_time > $2",
		},
		{
			name: "for artist",
			call: func(repo ShowRepository, ctx context.Context, id uuid.UUID, now time.Time) error {
				_, err := repo.CountUpcomingForArtist(ctx, id, now)
				return err
			},
			want: "artist_id = $1 AND start_time > $2",
		},
	}

	id := uuid.New()
	now := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{}
			repo := NewShowRepository(db, zap.NewNop())

			if err := tt.call(repo, context.Background(), id, now); err != nil {
				t.Fatalf("err = %v, want nil", err)
			}
			if !strings.Contains(db.sql[0], tt.want) {
				t.Errorf("query = %q, want predicate %q", db.sql[0], tt.want)
			}
			if got := db.args[0][0]; got != id {
				t.Errorf("args[0] = %v, want %v", got, id)
			}
			if got, ok := db.args[0][1].(time.Time); !ok || !got.Equal(now) {
				t.Errorf("args[1] = %v, want %v", db.args[0][1], now)
			}
		})
	}
}
