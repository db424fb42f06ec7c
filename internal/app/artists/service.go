package artists

import (
	"context"
	"strings"
	"time"

	"fyyur/internal/forms"
	"fyyur/internal/models"
)

// Store captures the persistence needs for artist workflows.
type Store interface {
	ListArtists(ctx context.Context, now time.Time) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.ArtistSummary, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	ListArtistShows(ctx context.Context, artistID int64) ([]models.VenueShow, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
}

// Service coordinates artist listing, detail and editing.
type Service interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (models.ArtistSearchResult, error)
	Detail(ctx context.Context, id int64) (models.ArtistDetail, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Create(ctx context.Context, form forms.ArtistForm) (models.Artist, error)
	Update(ctx context.Context, id int64, form forms.ArtistForm) (models.Artist, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a Service backed by the provided Store. A nil clock means time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) List(ctx context.Context) ([]models.ArtistSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx, s.now())
}

func (s *service) Search(ctx context.Context, term string) (models.ArtistSearchResult, error) {
	if err := ctx.Err(); err != nil {
		return models.ArtistSearchResult{}, err
	}
	data, err := s.store.SearchArtists(ctx, strings.TrimSpace(term), s.now())
	if err != nil {
		return models.ArtistSearchResult{}, err
	}
	if data == nil {
		data = []models.ArtistSummary{}
	}
	return models.ArtistSearchResult{Count: len(data), Data: data}, nil
}

func (s *service) Detail(ctx context.Context, id int64) (models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ArtistDetail{}, err
	}
	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}
	shows, err := s.store.ListArtistShows(ctx, id)
	if err != nil {
		return models.ArtistDetail{}, err
	}
	past, upcoming := models.PartitionShows(shows, s.now())
	return models.ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Create(ctx context.Context, form forms.ArtistForm) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	if err := form.Validate(); err != nil {
		return models.Artist{}, err
	}
	return s.store.CreateArtist(ctx, form.Artist())
}

func (s *service) Update(ctx context.Context, id int64, form forms.ArtistForm) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	if err := form.Validate(); err != nil {
		return models.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, form.Artist())
}
