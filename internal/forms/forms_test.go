package forms

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

func validVenueValues() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Reggae"},
		"image_link":          {"https://images.unsplash.com/photo-1543900694"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"website_link":        {"https://www.themusicalhop.com"},
		"seeking_talent":      {"y"},
		"seeking_description": {"We are on the lookout for a local artist."},
	}
}

func fieldsOf(t *testing.T, err error) FieldErrors {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr.Fields
}

func TestDecodeVenueValid(t *testing.T) {
	form := DecodeVenue(validVenueValues())
	require.NoError(t, form.Validate())

	venue := form.Venue()
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Reggae"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)
}

func TestDecodeVenueTrimsAndKeepsGenreOrder(t *testing.T) {
	values := validVenueValues()
	values.Set("name", "  Park Square Live  ")
	values["genres"] = []string{"Rock n Roll", " ", "Folk", "Classical"}

	form := DecodeVenue(values)
	assert.Equal(t, "Park Square Live", form.Name)
	assert.Equal(t, []string{"Rock n Roll", "Folk", "Classical"}, form.Genres)
}

func TestCheckedIsPresenceOnly(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   bool
	}{
		{name: "absent", values: url.Values{}, want: false},
		{name: "present with y", values: url.Values{"seeking_talent": {"y"}}, want: true},
		{name: "present empty", values: url.Values{"seeking_talent": {""}}, want: true},
		{name: "present false text", values: url.Values{"seeking_talent": {"false"}}, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Checked(tc.values, "seeking_talent"))
		})
	}
}

func TestVenueRequiredFields(t *testing.T) {
	err := DecodeVenue(url.Values{}).Validate()
	fields := fieldsOf(t, err)

	for _, name := range []string{"name", "city", "state", "address", "genres"} {
		assert.Equal(t, "This field is required.", fields.Get(name), name)
	}
	assert.Empty(t, fields.Get("phone"))
	assert.Empty(t, fields.Get("image_link"))
}

func TestPhoneRule(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"326-123-5000", true},
		{"(326) 123-5000", true},
		{"3261235000", true},
		{"326.123.5000", true},
		{"326 123 5000", true},
		{"", true},
		{"abc", false},
		{"326-123-500", false},
		{"+1 326-123-5000", false},
	}
	for _, tc := range tests {
		values := validVenueValues()
		values.Set("phone", tc.phone)
		err := DecodeVenue(values).Validate()
		if tc.valid {
			assert.NoError(t, err, tc.phone)
			continue
		}
		assert.Equal(t, "Invalid phone number. Expected format: XXX-XXX-XXXX", fieldsOf(t, err).Get("phone"), tc.phone)
	}
}

func TestStateRule(t *testing.T) {
	assert.Len(t, States, 51)

	values := validVenueValues()
	values.Set("state", "ZZ")
	fields := fieldsOf(t, DecodeVenue(values).Validate())
	assert.Equal(t, "Invalid state selection", fields.Get("state"))

	values.Set("state", "DC")
	assert.NoError(t, DecodeVenue(values).Validate())
}

func TestGenreRuleListsInvalidItems(t *testing.T) {
	assert.Len(t, Genres, 19)

	values := validVenueValues()
	values["genres"] = []string{"Jazz", "Polka", "Swing"}
	fields := fieldsOf(t, DecodeVenue(values).Validate())
	assert.Equal(t, []string{"Invalid genre(s): Polka, Swing"}, fields["genres"])
}

func TestURLRule(t *testing.T) {
	tests := []struct {
		link  string
		valid bool
	}{
		{"https://www.themusicalhop.com", true},
		{"http://localhost:8080/img.png", true},
		{"/static/img/venue.png", true},
		{"not a url", false},
		{"themusicalhop", false},
	}
	for _, tc := range tests {
		values := validVenueValues()
		values.Set("website_link", tc.link)
		err := DecodeVenue(values).Validate()
		if tc.valid {
			assert.NoError(t, err, tc.link)
			continue
		}
		assert.Equal(t, "Invalid URL", fieldsOf(t, err).Get("website_link"), tc.link)
	}
}

func TestFacebookRule(t *testing.T) {
	values := validVenueValues()
	values.Set("facebook_link", "https://facebook.com/TheMusicalHop")
	fields := fieldsOf(t, DecodeVenue(values).Validate())
	assert.Equal(t, `Facebook link must start with "https://www.facebook.com/"`, fields.Get("facebook_link"))

	artist := url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"genres":        {"Rock n Roll"},
		"facebook_link": {"https://www.facebook.com/GunsNPetals"},
		"website_link":  {"https://www.gunsnpetalsband.com"},
	}
	assert.NoError(t, DecodeArtist(artist).Validate())

	artist.Set("facebook_link", "www.facebook.com/GunsNPetals")
	assert.NotEmpty(t, fieldsOf(t, DecodeArtist(artist).Validate()).Get("facebook_link"))
}

func TestVenueFormFromRoundTrip(t *testing.T) {
	venue := models.Venue{
		ID:            7,
		Name:          "The Dueling Pianos Bar",
		City:          "New York",
		State:         "NY",
		Address:       "335 Delancey Street",
		Genres:        []string{"Classical", "R&B", "Hip-Hop"},
		SeekingTalent: true,
	}
	form := VenueFormFrom(venue)
	assert.Equal(t, venue.Genres, form.Genres)
	assert.True(t, form.SeekingTalent)

	back := form.Venue()
	back.ID = venue.ID
	assert.Equal(t, venue, back)
}

func TestArtistFormFromRoundTrip(t *testing.T) {
	artist := models.Artist{
		ID:           4,
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       []string{"Jazz"},
		SeekingVenue: false,
	}
	back := ArtistFormFrom(artist).Artist()
	back.ID = artist.ID
	assert.Equal(t, artist, back)
}

func TestShowForm(t *testing.T) {
	form := DecodeShow(url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"4"},
		"start_time": {"2035-04-01 20:00:00"},
	})
	require.NoError(t, form.Validate())

	show, err := form.Show()
	require.NoError(t, err)
	assert.Equal(t, int64(1), show.VenueID)
	assert.Equal(t, int64(4), show.ArtistID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), show.StartTime)
}

func TestShowFormInvalid(t *testing.T) {
	fields := fieldsOf(t, DecodeShow(url.Values{
		"venue_id":   {"zero"},
		"artist_id":  {"-3"},
		"start_time": {"tomorrow"},
	}).Validate())

	assert.Equal(t, "Must be a positive whole number.", fields.Get("venue_id"))
	assert.Equal(t, "Must be a positive whole number.", fields.Get("artist_id"))
	assert.Equal(t, "Not a valid datetime value.", fields.Get("start_time"))
}

func TestParseStartTimeLayouts(t *testing.T) {
	for _, raw := range []string{
		"2035-04-01 20:00:00",
		"2035-04-01 20:00",
		"2035-04-01T20:00",
		"2035-04-01T20:00:00",
		"2035-04-01T20:00:00Z",
	} {
		got, err := ParseStartTime(raw)
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)), raw)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: FieldErrors{
		"state": {"Invalid state selection"},
		"name":  {"This field is required."},
	}}
	assert.Equal(t, "invalid form: name: This field is required., state: Invalid state selection", err.Error())
}
