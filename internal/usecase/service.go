package usecase

import (
	"fyyur/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Venue  VenueService
	Artist ArtistService
	Show   ShowService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Venue:  NewVenueService(repo, log),
		Artist: NewArtistService(repo, log),
		Show:   NewShowService(repo, log),
	}
}

// optional form fields persist as NULL rather than empty strings
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
