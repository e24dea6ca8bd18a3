package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourbook/internal/models"
	"tourbook/internal/ticketing"
)

func TestDescribe(t *testing.T) {
	ev := ticketing.Event{
		Name:        "Alpine Jazz",
		Description: "Bring warm layers.",
		Venue:       "Alpine Hall",
		StartDate:   "2026-12-20",
		StartTime:   "19:30",
		EndDate:     "2026-12-21",
		PriceMin:    amount(40),
		PriceMax:    amount(90),
		Currency:    "EUR",
		Genres:      []string{"Music", "Jazz"},
		URL:         "https://tickets.example/a",
	}

	got := strings.Split(describe(ev), "\n\n")
	assert.Equal(t, []string{
		"Bring warm layers.",
		"Venue: Alpine Hall (address to be announced).",
		"Schedule: starts 2026-12-20 at 19:30; ends 2026-12-21",
		"Ticket price range: 40–90 EUR.",
		"Tour categories: Music, Jazz.",
		"Tickets and details: https://tickets.example/a",
	}, got)
}

func TestDescribeSinglePriceAndEmpty(t *testing.T) {
	single := describe(ticketing.Event{PriceMax: amount(25), StartDate: "2026-10-20", EndDate: "2026-10-20"})
	assert.Equal(t, "Schedule: starts 2026-10-20\n\nApproximate price: 25.", single)

	assert.Equal(t, "Up-to-date details will be published by the event organiser.", describe(ticketing.Event{}))
}

func TestFromEvent(t *testing.T) {
	tour := fromEvent(ticketing.Event{ID: "E", PriceMax: amount(70), DurationDays: 0, Genres: []string{"Folk"}})

	assert.Equal(t, "Live Experience", tour.Title)
	assert.Equal(t, "experience", tour.Type)
	assert.Equal(t, 70.0, tour.Price)
	assert.Equal(t, 70.0, tour.UnitPrice())
	assert.Equal(t, 1, tour.DurationDays)
	assert.Equal(t, ticketing.DefaultPhotoURL, tour.PhotoURL)
	assert.Equal(t, []string{"Folk"}, tour.Categories)
	assert.Equal(t, models.TourSourceEvent, tour.Source)
}

func TestFutureReadyThresholdIsInclusive(t *testing.T) {
	now := time.Date(2026, time.October, 14, 23, 0, 0, 0, time.UTC)
	tours := []models.Tour{
		{ExternalID: "edge", StartDate: "2026-11-13"},
		{ExternalID: "early", StartDate: "2026-11-12"},
	}
	kept := futureReady(tours, now, 30)
	assert.Equal(t, []string{"edge"}, externalIDs(kept))
}
