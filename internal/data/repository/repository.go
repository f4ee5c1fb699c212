package repository

import (
	"fyyur/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Venue  VenueRepository
	Artist ArtistRepository
	Show   ShowRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Venue:  NewVenueRepository(db, log),
		Artist: NewArtistRepository(db, log),
		Show:   NewShowRepository(db, log),
	}
}
