package venues

import (
	"context"
	"strings"
	"time"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

// Store captures the persistence needs for venue workflows.
type Store interface {
	ListVenues(ctx context.Context, now time.Time) ([]store.VenueWithCounts, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]store.VenueWithCounts, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	ListVenueShows(ctx context.Context, venueID int64) ([]models.ArtistShow, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
}

// Service coordinates venue listing, detail and editing.
type Service interface {
	Areas(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (models.VenueSearchResult, error)
	Detail(ctx context.Context, id int64) (models.VenueDetail, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, form forms.VenueForm) (models.Venue, error)
	Update(ctx context.Context, id int64, form forms.VenueForm) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
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

func (s *service) Areas(ctx context.Context) ([]models.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.store.ListVenues(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return GroupByArea(rows), nil
}

func (s *service) Search(ctx context.Context, term string) (models.VenueSearchResult, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueSearchResult{}, err
	}
	rows, err := s.store.SearchVenues(ctx, strings.TrimSpace(term), s.now())
	if err != nil {
		return models.VenueSearchResult{}, err
	}
	data := make([]models.VenueSummary, 0, len(rows))
	for _, row := range rows {
		data = append(data, row.VenueSummary)
	}
	return models.VenueSearchResult{Count: len(data), Data: data}, nil
}

func (s *service) Detail(ctx context.Context, id int64) (models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.VenueDetail{}, err
	}
	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}
	shows, err := s.store.ListVenueShows(ctx, id)
	if err != nil {
		return models.VenueDetail{}, err
	}
	past, upcoming := models.PartitionShows(shows, s.now())
	return models.VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Create(ctx context.Context, form forms.VenueForm) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	if err := form.Validate(); err != nil {
		return models.Venue{}, err
	}
	return s.store.CreateVenue(ctx, form.Venue())
}

func (s *service) Update(ctx context.Context, id int64, form forms.VenueForm) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	if err := form.Validate(); err != nil {
		return models.Venue{}, err
	}
	return s.store.UpdateVenue(ctx, id, form.Venue())
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}

// GroupByArea buckets venues by (city, state) in first-seen order.
func GroupByArea(rows []store.VenueWithCounts) []models.Area {
	type key struct{ city, state string }

	areas := []models.Area{}
	index := make(map[key]int)
	for _, row := range rows {
		k := key{row.City, row.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, models.Area{City: row.City, State: row.State, Venues: []models.VenueSummary{}})
		}
		areas[i].Venues = append(areas[i].Venues, row.VenueSummary)
	}
	return areas
}
