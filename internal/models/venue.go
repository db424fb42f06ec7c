package models

// Venue represents a place that can host shows
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone,omitempty"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	WebsiteLink        string   `json:"website,omitempty"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description,omitempty"` // Only meaningful when SeekingTalent
}

// VenueSummary is the short form of a venue used by listings and search results
type VenueSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// NumShows counts every show at the venue regardless of start time.
	NumShows         int `json:"num_shows"`
	NumUpcomingShows int `json:"num_upcoming_shows"`
}

// Area groups the venues sharing a city and state
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueDetail is a venue together with its shows split around a reference time
type VenueDetail struct {
	Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// VenueSearchResult holds the venues whose name matched a search term
type VenueSearchResult struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}
