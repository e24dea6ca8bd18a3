package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"tourbook/internal/config"
)

type Report struct {
	Temp        *float64 `json:"temp"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
}

// Mock is served whenever the live provider cannot answer.
func Mock() Report {
	temp := 15.0
	return Report{Temp: &temp, Description: "ясно", Icon: "01d"}
}

var badWeatherStems = []string{"дожд", "снег", "бур", "rain", "snow", "storm"}

// SuitableForElderlyMountain requires a known temperature of at least 10
// degrees and no rain, snow or storm in the description.
func SuitableForElderlyMountain(r Report) bool {
	if r.Temp == nil || *r.Temp < 10 {
		return false
	}
	desc := strings.ToLower(r.Description)
	for _, stem := range badWeatherStems {
		if strings.Contains(desc, stem) {
			return false
		}
	}
	return true
}

type Client struct {
	cfg  config.WeatherConfig
	http *http.Client
	log  zerolog.Logger
}

func NewClient(cfg config.WeatherConfig, log zerolog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

func (c *Client) Current(ctx context.Context, city, country string) Report {
	if c.cfg.APIKey == "" {
		return Mock()
	}
	report, err := c.current(ctx, city, country)
	if err != nil {
		c.log.Warn().Err(err).Str("city", city).Msg("weather lookup failed, serving mock")
		return Mock()
	}
	return report
}

func (c *Client) current(ctx context.Context, city, country string) (Report, error) {
	params := url.Values{}
	params.Set("q", city+","+country)
	params.Set("appid", c.cfg.APIKey)
	params.Set("units", c.cfg.Units)
	params.Set("lang", c.cfg.Lang)

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/weather?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("request weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Report{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Report{}, fmt.Errorf("read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return Report{}, errors.New("malformed json payload")
	}

	doc := gjson.ParseBytes(body)
	report := Report{
		Description: doc.Get("weather.0.description").String(),
		Icon:        doc.Get("weather.0.icon").String(),
	}
	if report.Icon == "" {
		report.Icon = "01d"
	}
	if temp := doc.Get("main.temp"); temp.Exists() {
		v := temp.Float()
		report.Temp = &v
	}
	return report, nil
}
