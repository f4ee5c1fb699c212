package repository

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/data/entity"
	"fyyur/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	CountUpcomingForVenue(ctx context.Context, venueID uuid.UUID, now time.Time) (int, error)
	CountUpcomingForArtist(ctx context.Context, artistID uuid.UUID, now time.Time) (int, error)
	FindPastForVenue(ctx context.Context, venueID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error)
	FindUpcomingForVenue(ctx context.Context, venueID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error)
	FindPastForArtist(ctx context.Context, artistID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error)
	FindUpcomingForArtist(ctx context.Context, artistID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error)
	FindAllWithDetails(ctx context.Context) ([]*entity.ShowDetail, error)
}

type showRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowRepository(db database.PgxIface, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

// Both joins are always pulled so every listing shape can be served
// from the same scan.
const showDetailQuery = `
	SELECT s.id, s.venue_id, s.artist_id, s.start_time, s.created_at,
		v.name, v.image_link, a.name, a.image_link
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
`

func scanShowDetail(rows pgx.Rows) (*entity.ShowDetail, error) {
	var show entity.ShowDetail
	err := rows.Scan(
		&show.ID,
		&show.VenueID,
		&show.ArtistID,
		&show.StartTime,
		&show.CreatedAt,
		&show.VenueName,
		&show.VenueImageLink,
		&show.ArtistName,
		&show.ArtistImageLink,
	)
	if err != nil {
		return nil, err
	}
	return &show, nil
}

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (id, venue_id, artist_id, start_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			show.ID,
			show.VenueID,
			show.ArtistID,
			show.StartTime,
			show.CreatedAt,
		)
		return err
	})

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.String("venue_id", show.VenueID.String()),
			zap.String("artist_id", show.ArtistID.String()),
		)
		return fmt.Errorf("create show: %w", classifyPgError(err))
	}

	return nil
}

// CountUpcomingForVenue counts shows strictly after now. A show that
// starts exactly at now is neither upcoming nor past.
func (r *showRepository) CountUpcomingForVenue(ctx context.Context, venueID uuid.UUID, now time.Time) (int, error) {
	return r.countUpcoming(ctx, "venue_id", venueID, now)
}

func (r *showRepository) CountUpcomingForArtist(ctx context.Context, artistID uuid.UUID, now time.Time) (int, error) {
	return r.countUpcoming(ctx, "artist_id", artistID, now)
}

func (r *showRepository) countUpcoming(ctx context.Context, column string, id uuid.UUID, now time.Time) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM shows WHERE %s = $1 AND start_time > $2`, column)

	var count int
	if err := r.db.QueryRow(ctx, query, id, now).Scan(&count); err != nil {
		r.log.Error("Failed to count upcoming shows",
			zap.Error(err),
			zap.String(column, id.String()),
		)
		return 0, fmt.Errorf("count upcoming shows for %s %s: %w", column, id.String(), err)
	}

	return count, nil
}

func (r *showRepository) FindPastForVenue(ctx context.Context, venueID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "s.venue_id = $1 AND s.start_time < $2", venueID, now)
}

func (r *showRepository) FindUpcomingForVenue(ctx context.Context, venueID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "s.venue_id = $1 AND s.start_time > $2", venueID, now)
}

func (r *showRepository) FindPastForArtist(ctx context.Context, artistID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "s.artist_id = $1 AND s.start_time < $2", artistID, now)
}

func (r *showRepository) FindUpcomingForArtist(ctx context.Context, artistID uuid.UUID, now time.Time) ([]*entity.ShowDetail, error) {
	return r.findDetails(ctx, "s.artist_id = $1 AND s.start_time > $2", artistID, now)
}

func (r *showRepository) findDetails(ctx context.Context, where string, args ...any) ([]*entity.ShowDetail, error) {
	query := showDetailQuery + " WHERE " + where + " ORDER BY s.start_time ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find shows", zap.Error(err), zap.String("where", where))
		return nil, fmt.Errorf("find shows: %w", err)
	}
	defer rows.Close()

	return collectShowDetails(rows)
}

func (r *showRepository) FindAllWithDetails(ctx context.Context) ([]*entity.ShowDetail, error) {
	query := showDetailQuery + " ORDER BY s.start_time ASC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all shows", zap.Error(err))
		return nil, fmt.Errorf("find all shows: %w", err)
	}
	defer rows.Close()

	return collectShowDetails(rows)
}

func collectShowDetails(rows pgx.Rows) ([]*entity.ShowDetail, error) {
	var shows []*entity.ShowDetail
	for rows.Next() {
		show, err := scanShowDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show rows: %w", err)
	}
	return shows, nil
}
