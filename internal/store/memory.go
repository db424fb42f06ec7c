package store

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"fyyur/internal/models"
)

// Memory keeps venues, artists and shows in process memory. It honours the
// same contracts as Store, including one show per venue and artist pair.
type Memory struct {
	mu           sync.RWMutex
	venues       map[int64]models.Venue
	artists      map[int64]models.Artist
	shows        map[showKey]time.Time
	nextVenueID  int64
	nextArtistID int64
}

type showKey struct {
	venueID  int64
	artistID int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		venues:       make(map[int64]models.Venue),
		artists:      make(map[int64]models.Artist),
		shows:        make(map[showKey]time.Time),
		nextVenueID:  1,
		nextArtistID: 1,
	}
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) ListVenues(_ context.Context, now time.Time) ([]VenueWithCounts, error) {
	return m.venueCounts("", now), nil
}

func (m *Memory) SearchVenues(_ context.Context, term string, now time.Time) ([]VenueWithCounts, error) {
	return m.venueCounts(strings.ToLower(term), now), nil
}

func (m *Memory) venueCounts(term string, now time.Time) []VenueWithCounts {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []VenueWithCounts{}
	for _, id := range sortedKeys(m.venues) {
		v := m.venues[id]
		if !strings.Contains(strings.ToLower(v.Name), term) {
			continue
		}
		row := VenueWithCounts{City: v.City, State: v.State}
		row.ID, row.Name = v.ID, v.Name
		for key, start := range m.shows {
			if key.venueID != id {
				continue
			}
			row.NumShows++
			if !start.Before(now) {
				row.NumUpcomingShows++
			}
		}
		out = append(out, row)
	}
	return out
}

func (m *Memory) GetVenue(_ context.Context, id int64) (models.Venue, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.venues[id]
	if !ok {
		return models.Venue{}, ErrVenueNotFound
	}
	return cloneVenue(v), nil
}

func (m *Memory) ListVenueShows(_ context.Context, venueID int64) ([]models.ArtistShow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shows := []models.ArtistShow{}
	for key, start := range m.shows {
		if key.venueID != venueID {
			continue
		}
		a := m.artists[key.artistID]
		shows = append(shows, models.ArtistShow{
			ArtistID:        a.ID,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			StartTime:       start,
		})
	}
	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].StartTime.Before(shows[j].StartTime)
	})
	return shows, nil
}

func (m *Memory) CreateVenue(_ context.Context, venue models.Venue) (models.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	venue.ID = m.nextVenueID
	m.nextVenueID++
	m.venues[venue.ID] = cloneVenue(venue)
	return cloneVenue(venue), nil
}

func (m *Memory) UpdateVenue(_ context.Context, id int64, venue models.Venue) (models.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.venues[id]; !ok {
		return models.Venue{}, ErrVenueNotFound
	}
	venue.ID = id
	m.venues[id] = cloneVenue(venue)
	return cloneVenue(venue), nil
}

func (m *Memory) DeleteVenue(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.venues[id]; !ok {
		return ErrVenueNotFound
	}
	for key := range m.shows {
		if key.venueID == id {
			delete(m.shows, key)
		}
	}
	delete(m.venues, id)
	return nil
}

func (m *Memory) CountVenues(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.venues), nil
}

func (m *Memory) ListArtists(_ context.Context, now time.Time) ([]models.ArtistSummary, error) {
	return m.artistCounts("", now), nil
}

func (m *Memory) SearchArtists(_ context.Context, term string, now time.Time) ([]models.ArtistSummary, error) {
	return m.artistCounts(strings.ToLower(term), now), nil
}

func (m *Memory) artistCounts(term string, now time.Time) []models.ArtistSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.ArtistSummary{}
	for _, id := range sortedKeys(m.artists) {
		a := m.artists[id]
		if !strings.Contains(strings.ToLower(a.Name), term) {
			continue
		}
		row := models.ArtistSummary{ID: a.ID, Name: a.Name}
		for key, start := range m.shows {
			if key.artistID != id {
				continue
			}
			row.NumShows++
			if !start.Before(now) {
				row.NumUpcomingShows++
			}
		}
		out = append(out, row)
	}
	return out
}

func (m *Memory) GetArtist(_ context.Context, id int64) (models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.artists[id]
	if !ok {
		return models.Artist{}, ErrArtistNotFound
	}
	return cloneArtist(a), nil
}

func (m *Memory) ListArtistShows(_ context.Context, artistID int64) ([]models.VenueShow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shows := []models.VenueShow{}
	for key, start := range m.shows {
		if key.artistID != artistID {
			continue
		}
		v := m.venues[key.venueID]
		shows = append(shows, models.VenueShow{
			VenueID:        v.ID,
			VenueName:      v.Name,
			VenueImageLink: v.ImageLink,
			StartTime:      start,
		})
	}
	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].StartTime.Before(shows[j].StartTime)
	})
	return shows, nil
}

func (m *Memory) CreateArtist(_ context.Context, artist models.Artist) (models.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	artist.ID = m.nextArtistID
	m.nextArtistID++
	m.artists[artist.ID] = cloneArtist(artist)
	return cloneArtist(artist), nil
}

func (m *Memory) UpdateArtist(_ context.Context, id int64, artist models.Artist) (models.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.artists[id]; !ok {
		return models.Artist{}, ErrArtistNotFound
	}
	artist.ID = id
	m.artists[id] = cloneArtist(artist)
	return cloneArtist(artist), nil
}

func (m *Memory) CreateShow(_ context.Context, show models.Show) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.venues[show.VenueID]; !ok {
		return ErrShowReference
	}
	if _, ok := m.artists[show.ArtistID]; !ok {
		return ErrShowReference
	}
	key := showKey{venueID: show.VenueID, artistID: show.ArtistID}
	if _, ok := m.shows[key]; ok {
		return ErrShowExists
	}
	m.shows[key] = show.StartTime
	return nil
}

func (m *Memory) ListShows(context.Context) ([]models.ShowWithDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shows := make([]models.ShowWithDetails, 0, len(m.shows))
	for key, start := range m.shows {
		v, a := m.venues[key.venueID], m.artists[key.artistID]
		shows = append(shows, models.ShowWithDetails{
			Show:            models.Show{VenueID: v.ID, ArtistID: a.ID, StartTime: start},
			VenueName:       v.Name,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
		})
	}
	sort.Slice(shows, func(i, j int) bool {
		if !shows[i].StartTime.Equal(shows[j].StartTime) {
			return shows[i].StartTime.Before(shows[j].StartTime)
		}
		if shows[i].VenueID != shows[j].VenueID {
			return shows[i].VenueID < shows[j].VenueID
		}
		return shows[i].ArtistID < shows[j].ArtistID
	})
	return shows, nil
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func cloneVenue(v models.Venue) models.Venue {
	v.Genres = slices.Clone(v.Genres)
	return v
}

func cloneArtist(a models.Artist) models.Artist {
	a.Genres = slices.Clone(a.Genres)
	return a
}
