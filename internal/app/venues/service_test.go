package venues

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

var now = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func hopForm() forms.VenueForm {
	return forms.VenueForm{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Phone:         "123-123-1234",
		Genres:        []string{"Jazz", "Reggae", "Classical", "Folk"},
		FacebookLink:  "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:   "https://www.themusicalhop.com",
		SeekingTalent: true,
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory(), fixedClock)

	created, err := svc.Create(ctx, hopForm())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, hopForm(), forms.VenueFormFrom(got))
}

func TestCreateRejectsInvalidForm(t *testing.T) {
	mem := store.NewMemory()
	svc := New(mem, fixedClock)

	form := hopForm()
	form.State = "ZZ"
	form.Phone = "12"
	_, err := svc.Create(context.Background(), form)

	var verr *forms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "state")
	assert.Contains(t, verr.Fields, "phone")

	n, _ := mem.CountVenues(context.Background())
	assert.Zero(t, n, "invalid form must not be persisted")
}

func TestUpdateReplacesEveryField(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory(), fixedClock)
	created, err := svc.Create(ctx, hopForm())
	require.NoError(t, err)

	edit := hopForm()
	edit.Name = "The Dueling Pianos Bar"
	edit.City = "New York"
	edit.State = "NY"
	edit.Phone = ""
	edit.Genres = []string{"Classical", "R&B", "Hip-Hop"}
	edit.FacebookLink = ""
	edit.SeekingTalent = false

	updated, err := svc.Update(ctx, created.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, edit, forms.VenueFormFrom(got))
}

func TestUpdateMissingVenue(t *testing.T) {
	svc := New(store.NewMemory(), fixedClock)
	_, err := svc.Update(context.Background(), 99, hopForm())
	assert.ErrorIs(t, err, store.ErrVenueNotFound)
}

func TestDetailPartitionsShows(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := New(mem, fixedClock)

	venue, err := svc.Create(ctx, hopForm())
	require.NoError(t, err)
	a1, _ := mem.CreateArtist(ctx, models.Artist{Name: "Guns N Petals", Genres: []string{"Rock n Roll"}})
	a2, _ := mem.CreateArtist(ctx, models.Artist{Name: "Matt Quevedo", Genres: []string{"Jazz"}})
	a3, _ := mem.CreateArtist(ctx, models.Artist{Name: "The Wild Sax Band", Genres: []string{"Jazz"}})
	require.NoError(t, mem.CreateShow(ctx, models.Show{VenueID: venue.ID, ArtistID: a1.ID, StartTime: now.Add(-48 * time.Hour)}))
	require.NoError(t, mem.CreateShow(ctx, models.Show{VenueID: venue.ID, ArtistID: a2.ID, StartTime: now}))
	require.NoError(t, mem.CreateShow(ctx, models.Show{VenueID: venue.ID, ArtistID: a3.ID, StartTime: now.Add(72 * time.Hour)}))

	detail, err := svc.Detail(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, len(detail.PastShows), detail.PastShowsCount)
	assert.Equal(t, len(detail.UpcomingShows), detail.UpcomingShowsCount)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", detail.PastShows[0].ArtistName)
	assert.Equal(t, "Matt Quevedo", detail.UpcomingShows[0].ArtistName)
}

func TestDetailWithoutShowsHasEmptyLists(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory(), fixedClock)
	venue, err := svc.Create(ctx, hopForm())
	require.NoError(t, err)

	detail, err := svc.Detail(ctx, venue.ID)
	require.NoError(t, err)
	assert.NotNil(t, detail.PastShows)
	assert.NotNil(t, detail.UpcomingShows)
	assert.Zero(t, detail.PastShowsCount)
	assert.Zero(t, detail.UpcomingShowsCount)
}

func TestDetailMissingVenue(t *testing.T) {
	svc := New(store.NewMemory(), fixedClock)
	_, err := svc.Detail(context.Background(), 7)
	assert.ErrorIs(t, err, store.ErrVenueNotFound)
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory(), fixedClock)
	for _, name := range []string{"The Musical Hop", "Park Square Live Music & Coffee", "The Dueling Pianos Bar"} {
		form := hopForm()
		form.Name = name
		_, err := svc.Create(ctx, form)
		require.NoError(t, err)
	}

	result, err := svc.Search(ctx, "hop")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "The Musical Hop", result.Data[0].Name)

	result, err = svc.Search(ctx, "Music")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Len(t, result.Data, result.Count)

	result, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)

	result, err = svc.Search(ctx, "nothing like this")
	require.NoError(t, err)
	assert.Zero(t, result.Count)
	assert.NotNil(t, result.Data)
}

func TestDeleteMissingVenue(t *testing.T) {
	svc := New(store.NewMemory(), fixedClock)
	err := svc.Delete(context.Background(), 42)
	assert.True(t, errors.Is(err, store.ErrVenueNotFound))
}

func TestDeleteRemovesVenueFromAreas(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory(), fixedClock)
	venue, err := svc.Create(ctx, hopForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, venue.ID))
	areas, err := svc.Areas(ctx)
	require.NoError(t, err)
	assert.Empty(t, areas)
}

func TestGroupByAreaKeepsFirstSeenOrder(t *testing.T) {
	row := func(id int64, name, city, state string) store.VenueWithCounts {
		r := store.VenueWithCounts{City: city, State: state}
		r.ID, r.Name = id, name
		return r
	}
	areas := GroupByArea([]store.VenueWithCounts{
		row(1, "The Musical Hop", "San Francisco", "CA"),
		row(2, "The Dueling Pianos Bar", "New York", "NY"),
		row(3, "Park Square Live Music & Coffee", "San Francisco", "CA"),
		row(4, "Somewhere Else", "San Francisco", "NM"),
	})

	require.Len(t, areas, 3)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, "CA", areas[0].State)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, int64(3), areas[0].Venues[1].ID)
	assert.Equal(t, "New York", areas[1].City)
	assert.Equal(t, "NM", areas[2].State)
}

func TestAreasCountsUpcomingShows(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	svc := New(mem, fixedClock)
	venue, err := svc.Create(ctx, hopForm())
	require.NoError(t, err)
	a1, _ := mem.CreateArtist(ctx, models.Artist{Name: "Past"})
	a2, _ := mem.CreateArtist(ctx, models.Artist{Name: "Future"})
	require.NoError(t, mem.CreateShow(ctx, models.Show{VenueID: venue.ID, ArtistID: a1.ID, StartTime: now.Add(-time.Hour)}))
	require.NoError(t, mem.CreateShow(ctx, models.Show{VenueID: venue.ID, ArtistID: a2.ID, StartTime: now.Add(time.Hour)}))

	areas, err := svc.Areas(ctx)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, 2, areas[0].Venues[0].NumShows)
	assert.Equal(t, 1, areas[0].Venues[0].NumUpcomingShows)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := New(store.NewMemory(), fixedClock)

	_, err := svc.Areas(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, svc.Delete(ctx, 1), context.Canceled)
}
