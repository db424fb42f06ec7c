package store

import (
	"context"
	"fmt"

	"fyyur/internal/models"
)

// CreateShow records a show. A second show for the same venue and artist
// fails with ErrShowExists; unknown ids fail with ErrShowReference.
func (s *Store) CreateShow(ctx context.Context, show models.Show) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
	`, show.VenueID, show.ArtistID, show.StartTime); err != nil {
		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: %v", ErrShowExists, err)
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: %v", ErrShowReference, err)
		}
		return fmt.Errorf("insert show: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", ErrShowExists, err)
		}
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// ListShows returns every show with venue and artist names, soonest first.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowWithDetails, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.venue_id, v.name, s.artist_id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		INNER JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowWithDetails{}
	for rows.Next() {
		var show models.ShowWithDetails
		if err := rows.Scan(&show.VenueID, &show.VenueName, &show.ArtistID,
			&show.ArtistName, &show.ArtistImageLink, &show.StartTime); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}
