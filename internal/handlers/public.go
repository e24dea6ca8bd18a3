package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tourbook/internal/catalog"
	"tourbook/internal/maps"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/weather"
)

const featuredLimit = 6

var supportedLanguages = map[string]struct{}{"ru": {}, "en": {}, "es": {}}

func (h HandlerSet) Home(c *gin.Context) {
	tours := h.catalog.ListFeatured(c.Request.Context(), featuredLimit)
	render(c, http.StatusOK, "home", gin.H{"tours": tours})
}

func (h HandlerSet) Search(c *gin.Context) {
	params := catalog.SearchParams{
		Location: c.Query("location"),
		Type:     c.Query("type"),
		MinPrice: queryFloat(c, "min_price"),
		MaxPrice: queryFloat(c, "max_price"),
		Duration: queryInt(c, "duration"),
		Keyword:  c.Query("keyword"),
	}

	tours := h.catalog.Search(c.Request.Context(), params)
	render(c, http.StatusOK, "search", gin.H{
		"tours": tours,
		"query": gin.H{
			"location":  params.Location,
			"type":      params.Type,
			"min_price": params.MinPrice,
			"max_price": params.MaxPrice,
			"duration":  params.Duration,
			"keyword":   params.Keyword,
		},
	})
}

func (h HandlerSet) TourDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}
	tour, err := h.catalog.GetByID(id)
	if err != nil {
		notFound(c)
		return
	}

	report := h.weather.Current(c.Request.Context(), tour.City, tour.Country)

	var weatherOK *bool
	if tour.Type == "elderly_mountain" {
		suitable := weather.SuitableForElderlyMountain(report)
		weatherOK = &suitable
	}

	render(c, http.StatusOK, "tour_detail", gin.H{
		"tour":       tour,
		"weather":    report,
		"weather_ok": weatherOK,
		"map_url":    maps.EmbedURL(tour.City, tour.Country, tour.Lat, tour.Lng),
		"today":      h.clock.Today().Format(models.DateLayout),
	})
}

func (h HandlerSet) SetLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if _, ok := supportedLanguages[lang]; ok {
		if session := middleware.CurrentSession(c); session != nil {
			session.Language = lang
		}
	}

	back := c.GetHeader("Referer")
	if back == "" {
		back = "/"
	}
	redirect(c, back)
}

// queryFloat and queryInt treat absent or unparseable values as "no filter".
func queryFloat(c *gin.Context, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, key string) *int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
