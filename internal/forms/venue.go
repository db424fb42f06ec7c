package forms

import (
	"net/url"
	"slices"

	"fyyur/internal/models"
)

// VenueForm is a full venue submission. Edits resubmit every field.
type VenueForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"required"`
	State              string   `form:"state" validate:"required,state"`
	Address            string   `form:"address" validate:"required"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,uri"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,facebook"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,uri"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

// DecodeVenue reads a venue form from submitted values.
func DecodeVenue(values url.Values) VenueForm {
	return VenueForm{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              text(values, "state"),
		Address:            text(values, "address"),
		Phone:              text(values, "phone"),
		Genres:             list(values, "genres"),
		ImageLink:          text(values, "image_link"),
		FacebookLink:       text(values, "facebook_link"),
		WebsiteLink:        text(values, "website_link"),
		SeekingTalent:      Checked(values, "seeking_talent"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// VenueFormFrom pre-populates a form from a stored venue.
func VenueFormFrom(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             slices.Clone(v.Genres),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// Validate returns nil or a *ValidationError.
func (f VenueForm) Validate() error {
	return check(f)
}

// Venue converts the form into a venue with no id.
func (f VenueForm) Venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             slices.Clone(f.Genres),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}
