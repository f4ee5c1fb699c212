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

type ShowService interface {
	ListShows(ctx context.Context) ([]response.ShowListItem, error)
	CreateShow(ctx context.Context, form *request.ShowForm) error
}

type showService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowService(repo *repository.Repository, log *zap.Logger) ShowService {
	return &showService{
		repo: repo,
		log:  log.With(zap.String("service", "show")),
	}
}

func (s *showService) ListShows(ctx context.Context) ([]response.ShowListItem, error) {
	shows, err := s.repo.Show.FindAllWithDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	s.log.Info("Shows listed", zap.Int("count", len(shows)))

	return response.ShowsToListItems(shows), nil
}

// CreateShow inserts the join row. The database enforces that both
// referenced rows exist; a dangling id surfaces as ErrConstraint.
func (s *showService) CreateShow(ctx context.Context, form *request.ShowForm) error {
	venueID, err := uuid.Parse(form.VenueID)
	if err != nil {
		return fmt.Errorf("parse venue id: %w", repository.ErrConstraint)
	}
	artistID, err := uuid.Parse(form.ArtistID)
	if err != nil {
		return fmt.Errorf("parse artist id: %w", repository.ErrConstraint)
	}
	startTime, err := form.ParsedStartTime()
	if err != nil {
		return fmt.Errorf("parse start time: %w", err)
	}

	show := &entity.Show{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}

	if err := s.repo.Show.Create(ctx, show); err != nil {
		return fmt.Errorf("create show: %w", err)
	}

	s.log.Info("Show created",
		zap.String("show_id", show.ID.String()),
		zap.String("venue_id", form.VenueID),
		zap.String("artist_id", form.ArtistID),
		zap.Time("start_time", startTime),
	)

	return nil
}
