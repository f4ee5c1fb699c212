package usecase

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/data/entity"
	"fyyur/internal/data/repository"
	"fyyur/internal/dto/request"
	"fyyur/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueService interface {
	ListVenues(ctx context.Context) ([]response.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (*response.SearchResults, error)
	GetVenueByID(ctx context.Context, venueID string) (*response.VenueDetail, error)
	GetVenueForm(ctx context.Context, venueID string) (*request.VenueForm, error)
	CreateVenue(ctx context.Context, form *request.VenueForm) error
	UpdateVenue(ctx context.Context, venueID string, form *request.VenueForm) error
	DeleteVenue(ctx context.Context, venueID string) error
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

// ListVenues returns all venues grouped into (city, state) sections.
// Upcoming-show counts are computed against the current time on every
// call, nothing is cached.
func (s *venueService) ListVenues(ctx context.Context) ([]response.VenueArea, error) {
	venues, err := s.repo.Venue.FindAllOrderedByLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	now := time.Now()
	counts := make(map[uuid.UUID]int, len(venues))
	for _, venue := range venues {
		count, err := s.repo.Show.CountUpcomingForVenue(ctx, venue.ID, now)
		if err != nil {
			return nil, fmt.Errorf("count upcoming shows for venue %s: %w", venue.ID.String(), err)
		}
		counts[venue.ID] = count
	}

	areas := response.GroupVenuesByArea(venues, counts)

	s.log.Info("Venues listed",
		zap.Int("venue_count", len(venues)),
		zap.Int("area_count", len(areas)),
	)

	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*response.SearchResults, error) {
	venues, err := s.repo.Venue.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}

	now := time.Now()
	results := &response.SearchResults{
		Count: len(venues),
		Data:  make([]response.SearchResult, len(venues)),
	}
	for i, venue := range venues {
		count, err := s.repo.Show.CountUpcomingForVenue(ctx, venue.ID, now)
		if err != nil {
			return nil, fmt.Errorf("count upcoming shows for venue %s: %w", venue.ID.String(), err)
		}
		results.Data[i] = response.SearchResult{
			ID:               venue.ID.String(),
			Name:             venue.Name,
			NumUpcomingShows: count,
		}
	}

	s.log.Info("Venues searched",
		zap.String("term", term),
		zap.Int("count", results.Count),
	)

	return results, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueDetail, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	past, err := s.repo.Show.FindPastForVenue(ctx, venue.ID, now)
	if err != nil {
		return nil, fmt.Errorf("past shows for venue %s: %w", venueID, err)
	}
	upcoming, err := s.repo.Show.FindUpcomingForVenue(ctx, venue.ID, now)
	if err != nil {
		return nil, fmt.Errorf("upcoming shows for venue %s: %w", venueID, err)
	}

	return response.VenueToDetail(venue, past, upcoming), nil
}

// GetVenueForm returns the edit form pre-populated from the stored
// venue, never from placeholder data.
func (s *venueService) GetVenueForm(ctx context.Context, venueID string) (*request.VenueForm, error) {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	return &request.VenueForm{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              entity.StringValue(venue.Phone),
		ImageLink:          entity.StringValue(venue.ImageLink),
		FacebookLink:       entity.StringValue(venue.FacebookLink),
		WebsiteLink:        entity.StringValue(venue.Website),
		Genres:             venue.Genres,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: entity.StringValue(venue.SeekingDescription),
	}, nil
}

func (s *venueService) CreateVenue(ctx context.Context, form *request.VenueForm) error {
	now := time.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Address:            form.Address,
		Phone:              optional(form.Phone),
		ImageLink:          optional(form.ImageLink),
		FacebookLink:       optional(form.FacebookLink),
		Website:            optional(form.WebsiteLink),
		Genres:             form.Genres,
		SeekingTalent:      form.SeekingTalent,
		SeekingDescription: optional(form.SeekingDescription),
	}

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
		zap.String("city", venue.City),
	)

	return nil
}

func (s *venueService) UpdateVenue(ctx context.Context, venueID string, form *request.VenueForm) error {
	venue, err := s.findVenue(ctx, venueID)
	if err != nil {
		return err
	}

	venue.Name = form.Name
	venue.City = form.City
	venue.State = form.State
	venue.Address = form.Address
	venue.Phone = optional(form.Phone)
	venue.ImageLink = optional(form.ImageLink)
	venue.FacebookLink = optional(form.FacebookLink)
	venue.Website = optional(form.WebsiteLink)
	venue.Genres = form.Genres
	venue.SeekingTalent = form.SeekingTalent
	venue.SeekingDescription = optional(form.SeekingDescription)
	venue.UpdatedAt = time.Now()

	if err := s.repo.Venue.Update(ctx, venue); err != nil {
		return fmt.Errorf("update venue %s: %w", venueID, err)
	}

	s.log.Info("Venue updated",
		zap.String("venue_id", venueID),
		zap.String("name", venue.Name),
	)

	return nil
}

func (s *venueService) DeleteVenue(ctx context.Context, venueID string) error {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return repository.ErrNotFound
	}

	if err := s.repo.Venue.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venue %s: %w", venueID, err)
	}

	return nil
}

// findVenue resolves the path id to a stored venue. A malformed id can
// never match a row, so it maps to not-found like a missing one.
func (s *venueService) findVenue(ctx context.Context, venueID string) (*entity.Venue, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.repo.Venue.FindByID(ctx, id)
}
