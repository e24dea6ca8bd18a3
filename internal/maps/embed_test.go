package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/maps?q=50.1067,86.9953&output=embed",
		EmbedURL("Gorno-Altaysk", "Russia", "50.1067", "86.9953"))

	assert.Equal(t,
		"https://www.google.com/maps?q=Cortina+d%27Ampezzo%2C+Italy&output=embed",
		EmbedURL("Cortina d'Ampezzo", "Italy", "", ""))

	assert.Equal(t,
		"https://www.google.com/maps?q=Kyiv%2C+Ukraine&output=embed",
		EmbedURL("Kyiv", "Ukraine", "50.45", ""))
}
