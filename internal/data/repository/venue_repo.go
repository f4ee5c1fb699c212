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

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindAllOrderedByLocation(ctx context.Context) ([]*entity.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*entity.Venue, error)
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueColumns = `id, name, city, state, address, phone, image_link,
		facebook_link, website, genres, seeking_talent, seeking_description,
		created_at, updated_at`

func scanVenue(row pgx.Row) (*entity.Venue, error) {
	var venue entity.Venue
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
		&venue.Genres,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (` + venueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			venue.ImageLink,
			venue.FacebookLink,
			venue.Website,
			venue.Genres,
			venue.SeekingTalent,
			venue.SeekingDescription,
			venue.CreatedAt,
			venue.UpdatedAt,
		)
		return err
	})

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
			zap.String("city", venue.City),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, classifyPgError(err))
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return venue, nil
}

// FindAllOrderedByLocation returns every venue ordered by state then
// city, both ascending, so rows sharing a (city, state) pair come out
// contiguously for the grouped listing.
func (r *venueRepository) FindAllOrderedByLocation(ctx context.Context) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY state ASC, city ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all venues", zap.Error(err))
		return nil, fmt.Errorf("find all venues: %w", err)
	}
	defer rows.Close()

	return collectVenues(rows)
}

// SearchByName does a case-insensitive substring match on the venue name.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE $1`

	rows, err := r.db.Query(ctx, query, "%"+term+"%")
	if err != nil {
		r.log.Error("Failed to search venues",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search venues %q: %w", term, err)
	}
	defer rows.Close()

	return collectVenues(rows)
}

func collectVenues(rows pgx.Rows) ([]*entity.Venue, error) {
	var venues []*entity.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue rows: %w", err)
	}
	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6,
			image_link = $7, facebook_link = $8, website = $9, genres = $10,
			seeking_talent = $11, seeking_description = $12, updated_at = $13
		WHERE id = $1
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			venue.ID,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			venue.ImageLink,
			venue.FacebookLink,
			venue.Website,
			venue.Genres,
			venue.SeekingTalent,
			venue.SeekingDescription,
			venue.UpdatedAt,
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
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return fmt.Errorf("update venue %s: %w", venue.ID.String(), classifyPgError(err))
	}

	return nil
}

// Delete removes the venue. Dependent shows go with it, the schema
// declares ON DELETE CASCADE on shows.venue_id.
func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM venues WHERE id = $1`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query, id)
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
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return fmt.Errorf("delete venue %s: %w", id.String(), err)
	}

	r.log.Info("Venue deleted", zap.String("venue_id", id.String()))
	return nil
}
