package maps

import (
	"net/url"
	"strings"
)

const embedBase = "https://www.google.com/maps?q="

// EmbedURL points at the coordinates when both are known and falls back to
// a place search on "city, country".
func EmbedURL(city, country, lat, lng string) string {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat != "" && lng != "" {
		return embedBase + lat + "," + lng + "&output=embed"
	}
	return embedBase + url.QueryEscape(city+", "+country) + "&output=embed"
}
