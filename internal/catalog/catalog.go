// Package catalog keeps the bookable tours in memory: event tours mirrored
// from the ticketing source plus tours curated by administrators.
package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"tourbook/internal/models"
	"tourbook/internal/ticketing"
)

var (
	ErrTourNotFound = errors.New("tour not found")
	ErrInvalidTour  = errors.New("invalid tour")
)

const (
	DefaultLeadDays = 30
	curatedPrefix   = "local:"
)

type EventSource interface {
	FetchEvents(ctx context.Context, q ticketing.Query) []ticketing.Event
}

type Options struct {
	LeadDays int
	Now      func() time.Time
}

type SearchParams struct {
	Location string
	Type     string
	MinPrice *float64
	MaxPrice *float64
	Duration *int
	Keyword  string
}

type TourInput struct {
	Title        string  `validate:"required,max=200"`
	Description  string  `validate:"max=5000"`
	Price        float64 `validate:"gte=0"`
	City         string  `validate:"required,max=120"`
	Country      string  `validate:"required,max=120"`
	Type         string  `validate:"required,max=60"`
	DurationDays int     `validate:"gte=1,lte=365"`
	PhotoURL     string  `validate:"omitempty,url"`
}

type Catalog struct {
	source   EventSource
	validate *validator.Validate
	log      zerolog.Logger
	opts     Options

	mu      sync.RWMutex
	events  []models.Tour
	curated []models.Tour
	ids     map[string]int
	nextID  int
}

func New(source EventSource, opts Options, log zerolog.Logger) *Catalog {
	if opts.LeadDays <= 0 {
		opts.LeadDays = DefaultLeadDays
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Catalog{
		source:   source,
		validate: validator.New(),
		log:      log,
		opts:     opts,
		ids:      make(map[string]int),
		nextID:   1,
	}
}

// Refresh replaces the event tours with a fresh pull from the source. An
// empty city or keyword is passed through as is, leaving the choice to the
// source. An empty pull leaves the current snapshot in place. It returns the
// number of event tours held afterwards.
func (c *Catalog) Refresh(ctx context.Context, city, keyword string) int {
	events := c.source.FetchEvents(ctx, ticketing.Query{City: city, Keyword: keyword})

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(events) == 0 {
		return len(c.events)
	}

	promoted := make(map[string]struct{}, len(c.curated))
	for _, t := range c.curated {
		promoted[t.ExternalID] = struct{}{}
	}

	tours := make([]models.Tour, 0, len(events))
	for _, ev := range events {
		tour := fromEvent(ev)
		if _, ok := promoted[tour.ExternalID]; ok {
			continue
		}
		tour.ID = c.idFor(tour.ExternalID)
		tours = append(tours, tour)
	}

	c.events = futureReady(tours, c.opts.Now(), c.opts.LeadDays)

	c.log.Debug().
		Int("fetched", len(events)).
		Int("kept", len(c.events)).
		Str("city", city).
		Str("keyword", keyword).
		Msg("catalog refreshed")

	return len(c.events)
}

// Search refreshes from the source with the location and keyword before
// filtering, so every query reflects the latest upstream data.
func (c *Catalog) Search(ctx context.Context, p SearchParams) []models.Tour {
	c.Refresh(ctx, p.Location, p.Keyword)

	location := strings.ToLower(strings.TrimSpace(p.Location))
	tourType := strings.ToLower(strings.TrimSpace(p.Type))
	keyword := strings.ToLower(strings.TrimSpace(p.Keyword))

	result := make([]models.Tour, 0)
	for _, t := range c.List() {
		if location != "" &&
			!strings.Contains(strings.ToLower(t.City), location) &&
			!strings.Contains(strings.ToLower(t.Country), location) {
			continue
		}
		if tourType != "" && strings.ToLower(t.Type) != tourType {
			continue
		}
		if p.MinPrice != nil && t.Price < *p.MinPrice {
			continue
		}
		if p.MaxPrice != nil && t.Price > *p.MaxPrice {
			continue
		}
		if p.Duration != nil && t.DurationDays != *p.Duration {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(t.Title), keyword) &&
			!strings.Contains(strings.ToLower(t.Description), keyword) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func (c *Catalog) GetByID(id int) (models.Tour, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := indexOf(c.events, id); i >= 0 {
		return cloneTour(c.events[i]), nil
	}
	if i := indexOf(c.curated, id); i >= 0 {
		return cloneTour(c.curated[i]), nil
	}
	return models.Tour{}, ErrTourNotFound
}

func (c *Catalog) ListFeatured(ctx context.Context, limit int) []models.Tour {
	if c.Len() == 0 {
		c.Refresh(ctx, "", "")
	}
	tours := c.List()
	if limit >= 0 && len(tours) > limit {
		tours = tours[:limit]
	}
	return tours
}

// List returns event tours followed by curated ones.
func (c *Catalog) List() []models.Tour {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Tour, 0, len(c.events)+len(c.curated))
	for _, t := range c.events {
		out = append(out, cloneTour(t))
	}
	for _, t := range c.curated {
		out = append(out, cloneTour(t))
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events) + len(c.curated)
}

func (c *Catalog) Add(in TourInput) (models.Tour, error) {
	if err := c.check(in); err != nil {
		return models.Tour{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.curatedKey(in.Title)
	tour := models.Tour{
		ID:         c.idFor(key),
		ExternalID: key,
		Source:     models.TourSourceCurated,
		Categories: []string{},
	}
	apply(&tour, in)
	c.curated = append(c.curated, tour)

	return cloneTour(tour), nil
}

// Update edits a tour in place. An event tour that gets edited becomes
// curated so the edit outlives the next refresh.
func (c *Catalog) Update(id int, in TourInput) (models.Tour, error) {
	if err := c.check(in); err != nil {
		return models.Tour{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := indexOf(c.curated, id); i >= 0 {
		apply(&c.curated[i], in)
		return cloneTour(c.curated[i]), nil
	}

	i := indexOf(c.events, id)
	if i < 0 {
		return models.Tour{}, ErrTourNotFound
	}

	tour := c.events[i]
	apply(&tour, in)
	tour.Source = models.TourSourceCurated
	c.events = append(c.events[:i:i], c.events[i+1:]...)
	c.curated = append(c.curated, tour)

	c.log.Info().Int("tour_id", id).Str("external_id", tour.ExternalID).Msg("event tour promoted to curated")

	return cloneTour(tour), nil
}

func (c *Catalog) check(in TourInput) error {
	if err := c.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &InputError{Field: verrs[0].Field(), Tag: verrs[0].Tag()}
		}
		return err
	}
	return nil
}

// idFor must be called with the write lock held.
func (c *Catalog) idFor(key string) int {
	if id, ok := c.ids[key]; ok {
		return id
	}
	id := c.nextID
	c.nextID++
	c.ids[key] = id
	return id
}

// curatedKey must be called with the write lock held.
func (c *Catalog) curatedKey(title string) string {
	base := curatedPrefix + slug.Make(title)
	key := base
	for n := 2; ; n++ {
		if _, taken := c.ids[key]; !taken {
			return key
		}
		key = base + "-" + strconv.Itoa(n)
	}
}

type InputError struct {
	Field string
	Tag   string
}

func (e *InputError) Error() string {
	return "invalid tour " + strings.ToLower(e.Field) + ": " + e.Tag
}

func (e *InputError) Unwrap() error { return ErrInvalidTour }

func apply(t *models.Tour, in TourInput) {
	t.Title = strings.TrimSpace(in.Title)
	t.Description = strings.TrimSpace(in.Description)
	t.Price = in.Price
	t.MinPrice = nil
	t.MaxPrice = nil
	t.City = strings.TrimSpace(in.City)
	t.Country = strings.TrimSpace(in.Country)
	t.Type = strings.TrimSpace(in.Type)
	t.DurationDays = in.DurationDays
	t.PhotoURL = strings.TrimSpace(in.PhotoURL)
	if t.PhotoURL == "" {
		t.PhotoURL = ticketing.DefaultPhotoURL
	}
}

func indexOf(tours []models.Tour, id int) int {
	for i := range tours {
		if tours[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneTour(t models.Tour) models.Tour {
	if t.MinPrice != nil {
		v := *t.MinPrice
		t.MinPrice = &v
	}
	if t.MaxPrice != nil {
		v := *t.MaxPrice
		t.MaxPrice = &v
	}
	t.Categories = append([]string{}, t.Categories...)
	return t
}
