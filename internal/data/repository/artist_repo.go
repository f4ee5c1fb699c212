package repository

import (
	"context"
	"errors"
	"fmt"

	"fyyur/internal/data/entity"
	"fyyur/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)
	FindAll(ctx context.Context) ([]*entity.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Artist, error)
	Update(ctx context.Context, artist *entity.Artist) error
}

type artistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewArtistRepository(db database.PgxIface, log *zap.Logger) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: log.With(zap.String("repository", "artist")),
	}
}

const artistColumns = `id, name, city, state, phone, image_link,
		facebook_link, website, genres, seeking_venue, seeking_description,
		created_at, updated_at`

func scanArtist(row pgx.Row) (*entity.Artist, error) {
	var artist entity.Artist
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.Website,
		&artist.Genres,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (` + artistColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			artist.ID,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			artist.ImageLink,
			artist.FacebookLink,
			artist.Website,
			artist.Genres,
			artist.SeekingVenue,
			artist.SeekingDescription,
			artist.CreatedAt,
			artist.UpdatedAt,
		)
		return err
	})

	if err != nil {
		r.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", artist.Name),
		)
		return fmt.Errorf("create artist %s: %w", artist.Name, classifyPgError(err))
	}

	return nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find artist by ID",
			zap.Error(err),
			zap.String("artist_id", id.String()),
		)
		return nil, fmt.Errorf("find artist by ID %s: %w", id.String(), err)
	}

	return artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all artists", zap.Error(err))
		return nil, fmt.Errorf("find all artists: %w", err)
	}
	defer rows.Close()

	return collectArtists(rows)
}

// SearchByName does a case-insensitive substring match on the artist name.
func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]*entity.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE $1`

	rows, err := r.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		r.log.Error("Failed to search artists",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search artists %q: %w", term, err)
	}
	defer rows.Close()

	return collectArtists(rows)
}

func collectArtists(rows pgx.Rows) ([]*entity.Artist, error) {
	var artists []*entity.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, image_link = $6,
			facebook_link = $7, website = $8, genres = $9, seeking_venue = $10,
			seeking_description = $11, updated_at = $12
		WHERE id = $1
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			artist.ID,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			artist.ImageLink,
			artist.FacebookLink,
			artist.Website,
			artist.Genres,
			artist.SeekingVenue,
			artist.SeekingDescription,
			artist.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})

	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to update artist",
			zap.Error(err),
			zap.String("artist_id", artist.ID.String()),
		)
		return fmt.Errorf("update artist %s: %w", artist.ID.String(), classifyPgError(err))
	}

	return nil
}
