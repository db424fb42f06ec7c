package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
)

type seedVenue struct {
	Name, City, State, Address, Phone string
	Genres                            string
	Website, Facebook, Image          string
	SeekingTalent                     bool
	SeekingDescription                string
}

type seedArtist struct {
	Name, City, State, Phone string
	Genres                   string
	Website, Facebook, Image string
	SeekingVenue             bool
	SeekingDescription       string
}

type seedShow struct {
	Venue, Artist int // indexes into the seed slices
	Start         string
}

var demoVenues = []seedVenue{
	{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Phone: "123-123-1234",
		Genres:        "Jazz, Reggae, Classical, Folk",
		Website:       "https://www.themusicalhop.com",
		Facebook:      "https://www.facebook.com/TheMusicalHop",
		Image:         "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		SeekingTalent: true, SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
	},
	{
		Name: "The Dueling Pianos Bar", City: "New York", State: "NY",
		Address: "335 Delancey Street", Phone: "914-003-1132",
		Genres:   "Classical, R&B, Hip-Hop",
		Website:  "https://www.theduelingpianos.com",
		Facebook: "https://www.facebook.com/theduelingpianos",
		Image:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=400",
	},
	{
		Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
		Address: "34 Whiskey Moore Ave", Phone: "415-000-1234",
		Genres:   "Rock n Roll, Jazz, Classical, Folk",
		Website:  "https://www.parksquarelivemusicandcoffee.com",
		Facebook: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		Image:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=400",
	},
}

var demoArtists = []seedArtist{
	{
		Name: "Guns N Petals", City: "San Francisco", State: "CA", Phone: "326-123-5000",
		Genres:       "Rock n Roll",
		Website:      "https://www.gunsnpetalsband.com",
		Facebook:     "https://www.facebook.com/GunsNPetals",
		Image:        "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		SeekingVenue: true, SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name: "Matt Quevedo", City: "New York", State: "NY", Phone: "300-400-5000",
		Genres:   "Jazz",
		Facebook: "https://www.facebook.com/mattquevedo923251523",
		Image:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Phone: "432-325-5432",
		Genres: "Jazz, Classical",
		Image:  "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

var demoShows = []seedShow{
	{Venue: 0, Artist: 0, Start: "2019-05-21T21:30:00Z"},
	{Venue: 2, Artist: 1, Start: "2019-06-15T23:00:00Z"},
	{Venue: 2, Artist: 2, Start: "2035-04-01T20:00:00Z"},
	{Venue: 1, Artist: 2, Start: "2035-04-08T20:00:00Z"},
}

// bootstrapDemoData fills an empty store with sample listings.
func bootstrapDemoData(ctx context.Context, data backend) error {
	count, err := data.CountVenues(ctx)
	if err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		log.Debug().Int("venues", count).Msg("store not empty, skipping demo data")
		return nil
	}

	venueIDs := make([]int64, len(demoVenues))
	for i, sv := range demoVenues {
		v, err := data.CreateVenue(ctx, models.Venue{
			Name:               sv.Name,
			City:               sv.City,
			State:              sv.State,
			Address:            sv.Address,
			Phone:              sv.Phone,
			Genres:             models.SplitGenres(sv.Genres),
			WebsiteLink:        sv.Website,
			FacebookLink:       sv.Facebook,
			ImageLink:          sv.Image,
			SeekingTalent:      sv.SeekingTalent,
			SeekingDescription: sv.SeekingDescription,
		})
		if err != nil {
			return fmt.Errorf("bootstrap venue %q: %w", sv.Name, err)
		}
		venueIDs[i] = v.ID
	}

	artistIDs := make([]int64, len(demoArtists))
	for i, sa := range demoArtists {
		a, err := data.CreateArtist(ctx, models.Artist{
			Name:               sa.Name,
			City:               sa.City,
			State:              sa.State,
			Phone:              sa.Phone,
			Genres:             models.SplitGenres(sa.Genres),
			WebsiteLink:        sa.Website,
			FacebookLink:       sa.Facebook,
			ImageLink:          sa.Image,
			SeekingVenue:       sa.SeekingVenue,
			SeekingDescription: sa.SeekingDescription,
		})
		if err != nil {
			return fmt.Errorf("bootstrap artist %q: %w", sa.Name, err)
		}
		artistIDs[i] = a.ID
	}

	for _, ss := range demoShows {
		start, err := time.Parse(time.RFC3339, ss.Start)
		if err != nil {
			return fmt.Errorf("bootstrap show time %q: %w", ss.Start, err)
		}
		if err := data.CreateShow(ctx, models.Show{
			VenueID:   venueIDs[ss.Venue],
			ArtistID:  artistIDs[ss.Artist],
			StartTime: start,
		}); err != nil {
			return fmt.Errorf("bootstrap show: %w", err)
		}
	}

	log.Info().
		Int("venues", len(demoVenues)).
		Int("artists", len(demoArtists)).
		Int("shows", len(demoShows)).
		Msg("demo data loaded")
	return nil
}
