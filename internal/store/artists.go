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

const artistColumns = `id, name, city, state, phone, genres, image_link,
		       facebook_link, website_link, seeking_venue, seeking_description`

const artistCountsQuery = `
		SELECT a.id, a.name,
		       COUNT(s.artist_id) AS num_shows,
		       COUNT(s.artist_id) FILTER (WHERE s.start_time >= $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
	`

// ListArtists returns every artist with show counts, ordered by id.
func (s *Store) ListArtists(ctx context.Context, now time.Time) ([]models.ArtistSummary, error) {
	return s.queryArtistCounts(ctx, artistCountsQuery+`
		GROUP BY a.id
		ORDER BY a.id ASC
	`, now)
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) ([]models.ArtistSummary, error) {
	return s.queryArtistCounts(ctx, artistCountsQuery+`
		WHERE a.name ILIKE $2 ESCAPE '\'
		GROUP BY a.id
		ORDER BY a.id ASC
	`, now, containsPattern(term))
}

func (s *Store) queryArtistCounts(ctx context.Context, query string, args ...any) ([]models.ArtistSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.NumShows, &a.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

// GetArtist retrieves a single artist by ID
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	var a models.Artist
	err := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id).Scan(artistFields(&a)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}
	return a, nil
}

// ListArtistShows returns every show of the artist with its venue, oldest first.
func (s *Store) ListArtistShows(ctx context.Context, artistID int64) ([]models.VenueShow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.name, v.image_link, s.start_time
		FROM shows s
		INNER JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select artist shows: %w", err)
	}
	defer rows.Close()

	shows := []models.VenueShow{}
	for rows.Next() {
		var show models.VenueShow
		if err := rows.Scan(&show.VenueID, &show.VenueName, &show.VenueImageLink, &show.StartTime); err != nil {
			return nil, fmt.Errorf("scan artist show: %w", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist shows: %w", err)
	}
	return shows, nil
}

// CreateArtist inserts an artist and returns it with its assigned id.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Artist{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.WebsiteLink, artist.SeekingVenue,
		artist.SeekingDescription,
	).Scan(&artist.ID); err != nil {
		return models.Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Artist{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return artist, nil
}

// UpdateArtist replaces every attribute of an existing artist.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Artist{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var a models.Artist
	err = tx.QueryRowContext(ctx, `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, website_link = $8,
		    seeking_venue = $9, seeking_description = $10
		WHERE id = $11
		RETURNING `+artistColumns+`
	`, artist.Name, artist.City, artist.State, artist.Phone, pq.Array(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.WebsiteLink, artist.SeekingVenue,
		artist.SeekingDescription, id,
	).Scan(artistFields(&a)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("update artist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Artist{}, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return a, nil
}

func artistFields(a *models.Artist) []any {
	return []any{
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, pq.Array(&a.Genres),
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription,
	}
}
