// Package ticketing talks to the Ticketmaster Discovery API and turns its
// events into flat records. Every failure path ends in the static fallback
// catalogue, so callers never see an upstream error.
package ticketing

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const DefaultPhotoURL = "https://images.unsplash.com/photo-1470229538611-16ba8c7ffbd7?q=80&w=1600&auto=format&fit=crop"

const dateLayout = "2006-01-02"

type Event struct {
	ID             string
	Name           string
	City           string
	Country        string
	Address        string
	Venue          string
	Timezone       string
	Image          string
	PriceMin       *float64
	PriceMax       *float64
	Currency       string
	Classification string
	Genres         []string
	StartDate      string
	EndDate        string
	StartTime      string
	URL            string
	Description    string
	Lat            string
	Lng            string
	DurationDays   int
}

type Query struct {
	City             string
	CountryCode      string
	Keyword          string
	ClassificationID string
	Size             int
}

func normalize(ev gjson.Result) Event {
	venue := ev.Get("_embedded.venues.0")

	city := firstNonEmpty(venue.Get("city.name").String(), ev.Get("city").String())
	country := firstNonEmpty(venue.Get("country.name").String(), ev.Get("country").String())

	address := joinNonEmpty(", ",
		venue.Get("address.line1").String(),
		venue.Get("city.name").String(),
		venue.Get("state.name").String(),
		venue.Get("country.name").String(),
	)

	var priceMin, priceMax *float64
	priceRange := ev.Get("priceRanges.0")
	if v := priceRange.Get("min"); v.Exists() {
		f := v.Float()
		priceMin = &f
	}
	if v := priceRange.Get("max"); v.Exists() {
		f := v.Float()
		priceMax = &f
	}

	classification := ev.Get("classifications.0")
	segment := classification.Get("segment.name").String()
	genre := classification.Get("genre.name").String()
	subGenre := classification.Get("subGenre.name").String()

	var genres []string
	for _, name := range []string{segment, genre, subGenre} {
		if name != "" {
			genres = append(genres, name)
		}
	}

	startDate := ev.Get("dates.start.localDate").String()
	endDate := ev.Get("dates.end.localDate").String()

	return Event{
		ID:             ev.Get("id").String(),
		Name:           firstNonEmpty(ev.Get("name").String(), "Live Experience"),
		City:           city,
		Country:        country,
		Address:        address,
		Venue:          venue.Get("name").String(),
		Timezone:       firstNonEmpty(venue.Get("timezone").String(), ev.Get("dates.timezone").String()),
		Image:          heroImage(ev.Get("images").Array()),
		PriceMin:       priceMin,
		PriceMax:       priceMax,
		Currency:       priceRange.Get("currency").String(),
		Classification: firstNonEmpty(genre, segment, "experience"),
		Genres:         genres,
		StartDate:      startDate,
		EndDate:        endDate,
		StartTime:      ev.Get("dates.start.localTime").String(),
		URL:            ev.Get("url").String(),
		Description:    baseDescription(ev),
		Lat:            venue.Get("location.latitude").String(),
		Lng:            venue.Get("location.longitude").String(),
		DurationDays:   DurationDays(startDate, endDate),
	}
}

// heroImage prefers a wide 16:9 rendition, then whatever comes first.
func heroImage(images []gjson.Result) string {
	for _, img := range images {
		if img.Get("ratio").String() == "16_9" && img.Get("width").Int() >= 1024 {
			if url := img.Get("url").String(); url != "" {
				return url
			}
		}
	}
	if len(images) > 0 {
		if url := images[0].Get("url").String(); url != "" {
			return url
		}
	}
	return DefaultPhotoURL
}

func baseDescription(ev gjson.Result) string {
	var parts []string
	if info := strings.TrimSpace(ev.Get("info").String()); info != "" {
		parts = append(parts, info)
	}
	if note := strings.TrimSpace(ev.Get("pleaseNote").String()); note != "" {
		parts = append(parts, "Good to know: "+note)
	}
	if seatMap := ev.Get("seatmap.staticUrl").String(); seatMap != "" {
		parts = append(parts, "Seating plan: "+seatMap)
	}
	return strings.Join(parts, "\n\n")
}

// DurationDays counts calendar days from start to end inclusive. Anything
// that does not parse counts as a one-day event.
func DurationDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return 1
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(sep string, values ...string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, sep)
}
