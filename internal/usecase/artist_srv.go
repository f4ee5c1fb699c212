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

type ArtistService interface {
	ListArtists(ctx context.Context) ([]response.ArtistListItem, error)
	SearchArtists(ctx context.Context, term string) (*response.SearchResults, error)
	GetArtistByID(ctx context.Context, artistID string) (*response.ArtistDetail, error)
	GetArtistForm(ctx context.Context, artistID string) (*request.ArtistForm, error)
	CreateArtist(ctx context.Context, form *request.ArtistForm) error
	UpdateArtist(ctx context.Context, artistID string, form *request.ArtistForm) error
}

type artistService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewArtistService(repo *repository.Repository, log *zap.Logger) ArtistService {
	return &artistService{
		repo: repo,
		log:  log.With(zap.String("service", "artist")),
	}
}

func (s *artistService) ListArtists(ctx context.Context) ([]response.ArtistListItem, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}

	s.log.Info("Artists listed", zap.Int("count", len(artists)))

	return response.ArtistsToListItems(artists), nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*response.SearchResults, error) {
	artists, err := s.repo.Artist.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}

	now := time.Now()
	results := &response.SearchResults{
		Count: len(artists),
		Data:  make([]response.SearchResult, len(artists)),
	}
	for i, artist := range artists {
		count, err := s.repo.Show.CountUpcomingForArtist(ctx, artist.ID, now)
		if err != nil {
			return nil, fmt.Errorf("count upcoming shows for artist %s: %w", artist.ID.String(), err)
		}
		results.Data[i] = response.SearchResult{
			ID:               artist.ID.String(),
			Name:             artist.Name,
			NumUpcomingShows: count,
		}
	}

	s.log.Info("Artists searched",
		zap.String("term", term),
		zap.Int("count", results.Count),
	)

	return results, nil
}

func (s *artistService) GetArtistByID(ctx context.Context, artistID string) (*response.ArtistDetail, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	past, err := s.repo.Show.FindPastForArtist(ctx, artist.ID, now)
	if err != nil {
		return nil, fmt.Errorf("past shows for artist %s: %w", artistID, err)
	}
	upcoming, err := s.repo.Show.FindUpcomingForArtist(ctx, artist.ID, now)
	if err != nil {
		return nil, fmt.Errorf("upcoming shows for artist %s: %w", artistID, err)
	}

	return response.ArtistToDetail(artist, past, upcoming), nil
}

// GetArtistForm returns the edit form pre-populated from the stored
// artist.
func (s *artistService) GetArtistForm(ctx context.Context, artistID string) (*request.ArtistForm, error) {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	return &request.ArtistForm{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              entity.StringValue(artist.Phone),
		ImageLink:          entity.StringValue(artist.ImageLink),
		FacebookLink:       entity.StringValue(artist.FacebookLink),
		WebsiteLink:        entity.StringValue(artist.Website),
		Genres:             artist.Genres,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: entity.StringValue(artist.SeekingDescription),
	}, nil
}

func (s *artistService) CreateArtist(ctx context.Context, form *request.ArtistForm) error {
	now := time.Now()
	artist := &entity.Artist{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              optional(form.Phone),
		ImageLink:          optional(form.ImageLink),
		FacebookLink:       optional(form.FacebookLink),
		Website:            optional(form.WebsiteLink),
		Genres:             form.Genres,
		SeekingVenue:       form.SeekingVenue,
		SeekingDescription: optional(form.SeekingDescription),
	}

	if err := s.repo.Artist.Create(ctx, artist); err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	s.log.Info("Artist created",
		zap.String("artist_id", artist.ID.String()),
		zap.String("name", artist.Name),
	)

	return nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID string, form *request.ArtistForm) error {
	artist, err := s.findArtist(ctx, artistID)
	if err != nil {
		return err
	}

	artist.Name = form.Name
	artist.City = form.City
	artist.State = form.State
	artist.Phone = optional(form.Phone)
	artist.ImageLink = optional(form.ImageLink)
	artist.FacebookLink = optional(form.FacebookLink)
	artist.Website = optional(form.WebsiteLink)
	artist.Genres = form.Genres
	artist.SeekingVenue = form.SeekingVenue
	artist.SeekingDescription = optional(form.SeekingDescription)
	artist.UpdatedAt = time.Now()

	if err := s.repo.Artist.Update(ctx, artist); err != nil {
		return fmt.Errorf("update artist %s: %w", artistID, err)
	}

	s.log.Info("Artist updated",
		zap.String("artist_id", artistID),
		zap.String("name", artist.Name),
	)

	return nil
}

func (s *artistService) findArtist(ctx context.Context, artistID string) (*entity.Artist, error) {
	id, err := uuid.Parse(artistID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.repo.Artist.FindByID(ctx, id)
}
