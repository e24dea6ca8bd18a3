package catalog

import (
	"fmt"
	"strings"
	"time"

	"tourbook/internal/models"
	"tourbook/internal/ticketing"
)

func fromEvent(ev ticketing.Event) models.Tour {
	var anchor float64
	switch {
	case ev.PriceMin != nil:
		anchor = *ev.PriceMin
	case ev.PriceMax != nil:
		anchor = *ev.PriceMax
	}

	key := ev.ID
	if key == "" {
		key = "event:" + ev.Name + "|" + ev.StartDate
	}

	tour := models.Tour{
		Title:        orDefault(ev.Name, "Live Experience"),
		Description:  describe(ev),
		Price:        anchor,
		MinPrice:     ev.PriceMin,
		MaxPrice:     ev.PriceMax,
		City:         ev.City,
		Country:      ev.Country,
		Type:         orDefault(ev.Classification, "experience"),
		DurationDays: ev.DurationDays,
		PhotoURL:     orDefault(ev.Image, ticketing.DefaultPhotoURL),
		Venue:        ev.Venue,
		Address:      ev.Address,
		Timezone:     ev.Timezone,
		StartDate:    ev.StartDate,
		EndDate:      ev.EndDate,
		StartTime:    ev.StartTime,
		TicketURL:    ev.URL,
		Currency:     ev.Currency,
		ExternalID:   key,
		Lat:          ev.Lat,
		Lng:          ev.Lng,
		Categories:   append([]string{}, ev.Genres...),
		Source:       models.TourSourceEvent,
	}
	if tour.DurationDays < 1 {
		tour.DurationDays = 1
	}
	return tour
}

func describe(ev ticketing.Event) string {
	var parts []string
	if base := strings.TrimSpace(ev.Description); base != "" {
		parts = append(parts, base)
	}

	if ev.Venue != "" || ev.Address != "" {
		parts = append(parts, fmt.Sprintf("Venue: %s (%s).",
			orDefault(ev.Venue, "to be announced"),
			orDefault(ev.Address, "address to be announced")))
	}

	var schedule []string
	if ev.StartDate != "" {
		start := ev.StartDate
		if ev.StartTime != "" {
			start += " at " + ev.StartTime
		}
		schedule = append(schedule, "starts "+start)
	}
	if ev.EndDate != "" && ev.EndDate != ev.StartDate {
		schedule = append(schedule, "ends "+ev.EndDate)
	}
	if len(schedule) > 0 {
		parts = append(parts, "Schedule: "+strings.Join(schedule, "; "))
	}

	switch {
	case ev.PriceMin != nil && ev.PriceMax != nil:
		parts = append(parts, strings.TrimSpace(fmt.Sprintf("Ticket price range: %.0f–%.0f %s",
			*ev.PriceMin, *ev.PriceMax, ev.Currency))+".")
	case ev.PriceMin != nil || ev.PriceMax != nil:
		price := ev.PriceMin
		if price == nil {
			price = ev.PriceMax
		}
		parts = append(parts, strings.TrimSpace(fmt.Sprintf("Approximate price: %.0f %s",
			*price, ev.Currency))+".")
	}

	if len(ev.Genres) > 0 {
		parts = append(parts, "Tour categories: "+strings.Join(ev.Genres, ", ")+".")
	}
	if ev.URL != "" {
		parts = append(parts, "Tickets and details: "+ev.URL)
	}

	if len(parts) == 0 {
		return "Up-to-date details will be published by the event organiser."
	}
	return strings.Join(parts, "\n\n")
}

// futureReady drops tours starting within leadDays of now. Tours without a
// parseable start date always pass. An empty result falls back to the input.
func futureReady(tours []models.Tour, now time.Time, leadDays int) []models.Tour {
	if len(tours) == 0 {
		return tours
	}

	y, m, d := now.Date()
	threshold := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, leadDays)

	kept := make([]models.Tour, 0, len(tours))
	for _, t := range tours {
		if t.StartDate == "" {
			kept = append(kept, t)
			continue
		}
		start, err := time.Parse(models.DateLayout, t.StartDate)
		if err != nil || !start.Before(threshold) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return tours
	}
	return kept
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
