package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/forms"
	"fyyur/internal/store"
)

var demoNow = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBootstrapDemoDataIsValidAndIdempotent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	require.NoError(t, bootstrapDemoData(ctx, mem))
	require.NoError(t, bootstrapDemoData(ctx, mem))

	venues, err := mem.ListVenues(ctx, demoNow)
	require.NoError(t, err)
	assert.Len(t, venues, len(demoVenues))

	shows, err := mem.ListShows(ctx)
	require.NoError(t, err)
	assert.Len(t, shows, len(demoShows))

	for _, row := range venues {
		v, err := mem.GetVenue(ctx, row.ID)
		require.NoError(t, err)
		assert.NoError(t, forms.VenueFormFrom(v).Validate(), v.Name)
	}
	artists, err := mem.ListArtists(ctx, demoNow)
	require.NoError(t, err)
	for _, row := range artists {
		a, err := mem.GetArtist(ctx, row.ID)
		require.NoError(t, err)
		assert.NoError(t, forms.ArtistFormFrom(a).Validate(), a.Name)
	}
}
