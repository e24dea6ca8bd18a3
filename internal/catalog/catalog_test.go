package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourbook/internal/models"
	"tourbook/internal/ticketing"
)

type fakeSource struct {
	events  []ticketing.Event
	queries []ticketing.Query
}

func (f *fakeSource) FetchEvents(_ context.Context, q ticketing.Query) []ticketing.Event {
	f.queries = append(f.queries, q)
	out := make([]ticketing.Event, len(f.events))
	copy(out, f.events)
	return out
}

func fixedNow() time.Time {
	return time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)
}

func amount(v float64) *float64 { return &v }

func newCatalog(src EventSource) *Catalog {
	return New(src, Options{Now: fixedNow}, zerolog.Nop())
}

func sampleEvents() []ticketing.Event {
	return []ticketing.Event{
		{ID: "A", Name: "Alpine Jazz", City: "Innsbruck", Country: "Austria", Classification: "music",
			StartDate: "2026-12-20", EndDate: "2026-12-21", DurationDays: 2, PriceMin: amount(40), PriceMax: amount(90), Currency: "EUR"},
		{ID: "B", Name: "Harbour Walk", City: "Lisbon", Country: "Portugal", Classification: "city",
			StartDate: "2026-10-20", DurationDays: 1, PriceMax: amount(25)},
		{ID: "C", Name: "Desert Nights", City: "Merzouga", Country: "Morocco", Classification: "Mountain",
			StartDate: "not a date", DurationDays: 3},
	}
}

func TestRefreshAppliesFutureFilter(t *testing.T) {
	src := &fakeSource{events: sampleEvents()}
	c := newCatalog(src)

	n := c.Refresh(context.Background(), "", "")
	assert.Equal(t, 2, n)

	ids := externalIDs(c.List())
	assert.Equal(t, []string{"A", "C"}, ids)
	require.Len(t, src.queries, 1)
	assert.Empty(t, src.queries[0].City)
}

func TestRefreshKeepsUnfilteredWhenEverythingIsSoon(t *testing.T) {
	src := &fakeSource{events: []ticketing.Event{
		{ID: "X", Name: "Tomorrow", StartDate: "2026-10-15"},
		{ID: "Y", Name: "Next week", StartDate: "2026-10-21"},
	}}
	c := newCatalog(src)

	assert.Equal(t, 2, c.Refresh(context.Background(), "", ""))
	assert.NotEmpty(t, c.Search(context.Background(), SearchParams{}))
}

func TestFallbackCatalogIsNeverEmpty(t *testing.T) {
	src := &fakeSource{events: ticketing.Fallback()}
	c := newCatalog(src)

	tours := c.Search(context.Background(), SearchParams{})
	assert.Len(t, tours, 15)
}

func TestRefreshWithEmptySourceKeepsSnapshot(t *testing.T) {
	src := &fakeSource{events: sampleEvents()}
	c := newCatalog(src)
	c.Refresh(context.Background(), "", "")

	src.events = nil
	assert.Equal(t, 2, c.Refresh(context.Background(), "", ""))
	assert.Equal(t, 2, c.Len())
}

func TestIDsSurviveRefresh(t *testing.T) {
	src := &fakeSource{events: sampleEvents()}
	c := newCatalog(src)
	c.Refresh(context.Background(), "", "")

	before := c.List()
	idOfC := before[1].ID

	src.events = []ticketing.Event{sampleEvents()[2], sampleEvents()[0]}
	c.Refresh(context.Background(), "", "")

	tour, err := c.GetByID(idOfC)
	require.NoError(t, err)
	assert.Equal(t, "C", tour.ExternalID)
}

func TestSearchFilters(t *testing.T) {
	src := &fakeSource{events: sampleEvents()}
	c := newCatalog(src)
	ctx := context.Background()

	byLocation := c.Search(ctx, SearchParams{Location: "austr"})
	assert.Equal(t, []string{"A"}, externalIDs(byLocation))
	assert.Equal(t, "austr", src.queries[len(src.queries)-1].City)

	byType := c.Search(ctx, SearchParams{Type: "mountain"})
	assert.Equal(t, []string{"C"}, externalIDs(byType))

	cheap := c.Search(ctx, SearchParams{MaxPrice: amount(30)})
	assert.Equal(t, []string{"C"}, externalIDs(cheap))

	pricey := c.Search(ctx, SearchParams{MinPrice: amount(40)})
	assert.Equal(t, []string{"A"}, externalIDs(pricey))

	three := 3
	byDuration := c.Search(ctx, SearchParams{Duration: &three})
	assert.Equal(t, []string{"C"}, externalIDs(byDuration))

	byKeyword := c.Search(ctx, SearchParams{Keyword: "JAZZ"})
	assert.Equal(t, []string{"A"}, externalIDs(byKeyword))
	assert.Equal(t, "JAZZ", src.queries[len(src.queries)-1].Keyword)
}

func TestListFeatured(t *testing.T) {
	src := &fakeSource{events: ticketing.Fallback()}
	c := newCatalog(src)

	featured := c.ListFeatured(context.Background(), 6)
	assert.Len(t, featured, 6)
	assert.Len(t, src.queries, 1)

	c.ListFeatured(context.Background(), 6)
	assert.Len(t, src.queries, 1, "populated catalog is not refreshed again")
}

func TestAddAndUpdateCurated(t *testing.T) {
	src := &fakeSource{events: sampleEvents()}
	c := newCatalog(src)
	ctx := context.Background()
	c.Refresh(ctx, "", "")

	in := TourInput{Title: "Carpathian Weekend", Price: 250, City: "Yaremche", Country: "Ukraine", Type: "mountain", DurationDays: 3}
	added, err := c.Add(in)
	require.NoError(t, err)
	assert.Equal(t, models.TourSourceCurated, added.Source)
	assert.Equal(t, "local:carpathian-weekend", added.ExternalID)
	assert.Equal(t, ticketing.DefaultPhotoURL, added.PhotoURL)

	again, err := c.Add(in)
	require.NoError(t, err)
	assert.Equal(t, "local:carpathian-weekend-2", again.ExternalID)
	assert.NotEqual(t, added.ID, again.ID)

	c.Refresh(ctx, "", "")
	_, err = c.GetByID(added.ID)
	require.NoError(t, err)

	list := c.List()
	assert.Equal(t, added.ID, list[len(list)-2].ID)

	in.Price = 300
	updated, err := c.Update(added.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Price)
}

func TestUpdatePromotesEventTour(t *testing.T) {
	src := &fakeSource{events: sampleEvents()}
	c := newCatalog(src)
	ctx := context.Background()
	c.Refresh(ctx, "", "")

	event := c.List()[0]
	require.Equal(t, "A", event.ExternalID)

	edited, err := c.Update(event.ID, TourInput{Title: "Alpine Jazz Deluxe", Price: 120, City: "Innsbruck", Country: "Austria", Type: "music", DurationDays: 2})
	require.NoError(t, err)
	assert.Equal(t, models.TourSourceCurated, edited.Source)
	assert.Nil(t, edited.MinPrice)
	assert.Equal(t, 120.0, edited.UnitPrice())

	c.Refresh(ctx, "", "")
	got, err := c.GetByID(event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpine Jazz Deluxe", got.Title)
	assert.Equal(t, 2, c.Len())
}

func TestInvalidInput(t *testing.T) {
	c := newCatalog(&fakeSource{})

	_, err := c.Add(TourInput{Title: "", City: "Kyiv", Country: "Ukraine", Type: "city", DurationDays: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTour))

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "Title", inputErr.Field)

	_, err = c.Add(TourInput{Title: "Trip", City: "Kyiv", Country: "Ukraine", Type: "city", DurationDays: 0})
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "DurationDays", inputErr.Field)

	_, err = c.Update(999, TourInput{Title: "Trip", City: "Kyiv", Country: "Ukraine", Type: "city", DurationDays: 1})
	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestGetByIDIsolatesCopies(t *testing.T) {
	c := newCatalog(&fakeSource{events: sampleEvents()})
	c.Refresh(context.Background(), "", "")

	tour := c.List()[0]
	*tour.MinPrice = 1
	tour.Categories = append(tour.Categories, "mutated")

	fresh, err := c.GetByID(tour.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, *fresh.MinPrice)
}

func externalIDs(tours []models.Tour) []string {
	out := make([]string, 0, len(tours))
	for _, t := range tours {
		out = append(out, t.ExternalID)
	}
	return out
}
