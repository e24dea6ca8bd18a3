package ticketing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"tourbook/internal/config"
)

const (
	defaultPageSize = 32
	maxPageSize     = 200
	maxBodyBytes    = 8 << 20
)

var errNoEvents = errors.New("no events in response")

type Client struct {
	cfg  config.EventsConfig
	http *http.Client
	log  zerolog.Logger
}

func NewClient(cfg config.EventsConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// FetchEvents makes a single attempt against the Discovery API and returns
// the fallback catalogue when the key is missing, the call fails, or the
// upstream has nothing to offer.
func (c *Client) FetchEvents(ctx context.Context, q Query) []Event {
	if c.cfg.APIKey == "" {
		return Fallback()
	}

	events, err := c.fetch(ctx, q)
	if err != nil {
		c.log.Warn().Err(err).
			Str("city", q.City).
			Str("keyword", q.Keyword).
			Msg("ticketing fetch failed, serving fallback catalogue")
		return Fallback()
	}
	return events
}

func (c *Client) fetch(ctx context.Context, q Query) ([]Event, error) {
	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/events.json?" + c.params(q).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("malformed json payload")
	}

	raw := gjson.GetBytes(body, "_embedded.events").Array()
	if len(raw) == 0 {
		return nil, errNoEvents
	}

	events := make([]Event, 0, len(raw))
	for _, ev := range raw {
		events = append(events, normalize(ev))
	}
	return events, nil
}

func (c *Client) params(q Query) url.Values {
	size := q.Size
	if size <= 0 {
		size = c.cfg.PageSize
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	params := url.Values{}
	params.Set("apikey", c.cfg.APIKey)
	params.Set("locale", "*")
	params.Set("size", strconv.Itoa(size))
	params.Set("sort", "date,asc")
	params.Set("countryCode", firstNonEmpty(q.CountryCode, c.cfg.DefaultCountry))
	params.Set("keyword", firstNonEmpty(q.Keyword, c.cfg.DefaultKeyword))
	if q.City != "" {
		params.Set("city", q.City)
	}
	if c.cfg.Market != "" {
		params.Set("marketId", c.cfg.Market)
	}
	if q.ClassificationID != "" {
		params.Set("classificationId", q.ClassificationID)
	}
	return params
}
