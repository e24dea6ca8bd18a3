package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourbook/internal/middleware"
	"tourbook/internal/models"
)

// render writes a view document: the view name, its data, and the
// per-request chrome every page shows (flashes, language, signed-in user).
func render(c *gin.Context, status int, view string, data gin.H) {
	payload := gin.H{
		"view":    view,
		"data":    data,
		"flashes": []models.Flash{},
	}

	if session := middleware.CurrentSession(c); session != nil {
		if flashes := session.PopFlashes(); len(flashes) > 0 {
			payload["flashes"] = flashes
		}
		payload["language"] = session.Language
		if session.Authenticated() {
			payload["current_user"] = gin.H{
				"id":    session.UserID,
				"email": session.Email,
				"role":  session.Role,
			}
		}
	}

	c.JSON(status, payload)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found", gin.H{"path": c.Request.URL.Path})
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

func flashRedirect(c *gin.Context, level models.FlashLevel, message, location string) {
	if session := middleware.CurrentSession(c); session != nil {
		session.AddFlash(level, message)
	}
	redirect(c, location)
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func currentUserID(c *gin.Context) int {
	return c.GetInt(middleware.ContextUserID)
}

type bookingView struct {
	ID          int                  `json:"id"`
	TourID      int                  `json:"tour_id"`
	UserID      int                  `json:"user_id"`
	BookingDate string               `json:"booking_date"`
	TravelDate  string               `json:"travel_date"`
	Passengers  int                  `json:"passengers"`
	TotalPrice  float64              `json:"total_price"`
	Status      models.BookingStatus `json:"status"`
}

func newBookingView(b models.Booking) bookingView {
	return bookingView{
		ID:          b.ID,
		TourID:      b.TourID,
		UserID:      b.UserID,
		BookingDate: b.BookingDate.Format(models.DateLayout),
		TravelDate:  b.TravelDate.Format(models.DateLayout),
		Passengers:  b.Passengers,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
	}
}
