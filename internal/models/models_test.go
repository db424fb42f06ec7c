package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenresRoundTrip(t *testing.T) {
	cases := [][]string{
		{"Jazz", "Reggae"},
		{"Rock n Roll"},
		{"R&B", "Hip-Hop", "Musical Theatre", "Heavy Metal"},
		{"Reggae", "Jazz"},
	}
	for _, genres := range cases {
		joined := JoinGenres(genres)
		assert.Equal(t, genres, SplitGenres(joined), "joined form %q", joined)
	}
}

func TestJoinGenresSeparator(t *testing.T) {
	assert.Equal(t, "Jazz, Reggae, Swing", JoinGenres([]string{"Jazz", "Reggae", "Swing"}))
	assert.Equal(t, "", JoinGenres(nil))
}

func TestSplitGenresEmpty(t *testing.T) {
	assert.Empty(t, SplitGenres(""))
}

func TestPartitionShows(t *testing.T) {
	now := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	shows := []ArtistShow{
		{ArtistID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ArtistID: 2, StartTime: now},
		{ArtistID: 3, StartTime: now.Add(-time.Nanosecond)},
		{ArtistID: 4, StartTime: now.Add(72 * time.Hour)},
	}

	past, upcoming := PartitionShows(shows, now)

	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, int64(1), past[0].ArtistID)
	assert.Equal(t, int64(3), past[1].ArtistID)
	assert.Equal(t, int64(2), upcoming[0].ArtistID)
	assert.Equal(t, int64(4), upcoming[1].ArtistID)
	for _, s := range past {
		assert.True(t, s.StartTime.Before(now))
	}
	for _, s := range upcoming {
		assert.False(t, s.StartTime.Before(now))
	}
}

func TestPartitionShowsEmpty(t *testing.T) {
	past, upcoming := PartitionShows([]VenueShow(nil), time.Now())
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}
