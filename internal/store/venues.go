package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

// VenueWithCounts is a venue listing row: summary, location and show counts.
type VenueWithCounts struct {
	models.VenueSummary
	City  string
	State string
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
		       facebook_link, website_link, seeking_talent, seeking_description`

const venueCountsQuery = `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.venue_id) AS num_shows,
		       COUNT(s.venue_id) FILTER (WHERE s.start_time >= $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
	`

// ListVenues returns every venue with its show counts, ordered by id.
// Upcoming counts are relative to now.
func (s *Store) ListVenues(ctx context.Context, now time.Time) ([]VenueWithCounts, error) {
	return s.queryVenueCounts(ctx, venueCountsQuery+`
		GROUP BY v.id
		ORDER BY v.id ASC
	`, now)
}

// SearchVenues returns venues whose name contains term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) ([]VenueWithCounts, error) {
	return s.queryVenueCounts(ctx, venueCountsQuery+`
		WHERE v.name ILIKE $2 ESCAPE '\'
		GROUP BY v.id
		ORDER BY v.id ASC
	`, now, containsPattern(term))
}

func (s *Store) queryVenueCounts(ctx context.Context, query string, args ...any) ([]VenueWithCounts, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := []VenueWithCounts{}
	for rows.Next() {
		var v VenueWithCounts
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumShows, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

// GetVenue retrieves a single venue by ID
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	var v models.Venue
	err := s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id).Scan(venueFields(&v)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("select venue: %w", err)
	}
	return v, nil
}

// ListVenueShows returns every show at the venue with the performing artist, oldest first.
func (s *Store) ListVenueShows(ctx context.Context, venueID int64) ([]models.ArtistShow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.name, a.image_link, s.start_time
		FROM shows s
		INNER JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC
	`, venueID)
	if err != nil {
		return nil, fmt.Errorf("select venue shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ArtistShow{}
	for rows.Next() {
		var show models.ArtistShow
		if err := rows.Scan(&show.ArtistID, &show.ArtistName, &show.ArtistImageLink, &show.StartTime); err != nil {
			return nil, fmt.Errorf("scan venue show: %w", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue shows: %w", err)
	}
	return shows, nil
}

// CreateVenue inserts a venue and returns it with its assigned id.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Venue{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO venues (name, city, state, address, phone, genres, image_link,
		                    facebook_link, website_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
		venue.ImageLink, venue.FacebookLink, venue.WebsiteLink, venue.SeekingTalent,
		venue.SeekingDescription,
	).Scan(&venue.ID); err != nil {
		return models.Venue{}, fmt.Errorf("insert venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Venue{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return venue, nil
}

// UpdateVenue replaces every attribute of an existing venue.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Venue{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var v models.Venue
	err = tx.QueryRowContext(ctx, `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
		    image_link = $7, facebook_link = $8, website_link = $9,
		    seeking_talent = $10, seeking_description = $11
		WHERE id = $12
		RETURNING `+venueColumns+`
	`, venue.Name, venue.City, venue.State, venue.Address, venue.Phone, pq.Array(venue.Genres),
		venue.ImageLink, venue.FacebookLink, venue.WebsiteLink, venue.SeekingTalent,
		venue.SeekingDescription, id,
	).Scan(venueFields(&v)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("update venue: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Venue{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return v, nil
}

// DeleteVenue removes a venue together with its shows.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
		return fmt.Errorf("delete venue shows: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// CountVenues reports how many venues exist.
func (s *Store) CountVenues(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	return count, nil
}

func venueFields(v *models.Venue) []any {
	return []any{
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, pq.Array(&v.Genres),
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent, &v.SeekingDescription,
	}
}
