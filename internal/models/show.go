package models

import "time"

// Show is a scheduled performance of one artist at one venue.
// A venue and artist pair can have at most one show.
type Show struct {
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowWithDetails includes the names of both sides of the show.
// Populated via JOIN queries.
type ShowWithDetails struct {
	Show
	VenueName       string `json:"venue_name"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link,omitempty"`
}

// ArtistShow is a show seen from the venue side
type ArtistShow struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShow is a show seen from the artist side
type VenueShow struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link,omitempty"`
	StartTime      time.Time `json:"start_time"`
}

// Timed is implemented by anything with a start time.
type Timed interface {
	Start() time.Time
}

func (s ArtistShow) Start() time.Time { return s.StartTime }
func (s VenueShow) Start() time.Time  { return s.StartTime }

// PartitionShows splits shows into those starting strictly before now and
// those starting at or after now. Input order is kept in both halves.
func PartitionShows[T Timed](shows []T, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(shows))
	upcoming = make([]T, 0, len(shows))
	for _, show := range shows {
		if show.Start().Before(now) {
			past = append(past, show)
		} else {
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}
