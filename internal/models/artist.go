package models

// Artist represents a performer that can be booked
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone,omitempty"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	WebsiteLink        string   `json:"website,omitempty"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

// ArtistSummary is the short form of an artist used by listings and search results
type ArtistSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumShows         int    `json:"num_shows"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistDetail is an artist together with its shows split around a reference time
type ArtistDetail struct {
	Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ArtistSearchResult holds the artists whose name matched a search term
type ArtistSearchResult struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}
