package shows

import (
	"context"

	"fyyur/internal/forms"
	"fyyur/internal/models"
)

// Store defines persistence operations for shows
type Store interface {
	CreateShow(ctx context.Context, show models.Show) error
	ListShows(ctx context.Context) ([]models.ShowWithDetails, error)
}

// Service coordinates show-related operations
type Service interface {
	List(ctx context.Context) ([]models.ShowWithDetails, error)
	Create(ctx context.Context, form forms.ShowForm) (models.Show, error)
}

type service struct {
	store Store
}

// New constructs a shows Service
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.ShowWithDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

// Create validates the form and books the show. A second booking of the same
// venue and artist pair fails with store.ErrShowExists.
func (s *service) Create(ctx context.Context, form forms.ShowForm) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}
	if err := form.Validate(); err != nil {
		return models.Show{}, err
	}
	show, err := form.Show()
	if err != nil {
		return models.Show{}, err
	}
	if err := s.store.CreateShow(ctx, show); err != nil {
		return models.Show{}, err
	}
	return show, nil
}
