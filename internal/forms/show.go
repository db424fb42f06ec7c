package forms

import (
	"fmt"
	"net/url"

	"fyyur/internal/models"
)

// ShowForm is a show submission. Fields stay as text until validated.
type ShowForm struct {
	VenueID   string `form:"venue_id" validate:"required,id"`
	ArtistID  string `form:"artist_id" validate:"required,id"`
	StartTime string `form:"start_time" validate:"required,starttime"`
}

// DecodeShow reads a show form from submitted values.
func DecodeShow(values url.Values) ShowForm {
	return ShowForm{
		VenueID:   text(values, "venue_id"),
		ArtistID:  text(values, "artist_id"),
		StartTime: text(values, "start_time"),
	}
}

func (f ShowForm) Validate() error {
	return check(f)
}

// Show converts a validated form into a show.
func (f ShowForm) Show() (models.Show, error) {
	venueID, err := parseID(f.VenueID)
	if err != nil {
		return models.Show{}, fmt.Errorf("venue_id: %w", err)
	}
	artistID, err := parseID(f.ArtistID)
	if err != nil {
		return models.Show{}, fmt.Errorf("artist_id: %w", err)
	}
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}
	return models.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}
