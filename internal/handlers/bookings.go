package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"
)

type bookingForm struct {
	TravelDate string `form:"travel_date"`
	Passengers string `form:"passengers"`
}

// BookTour validates the request first and only then looks at who is
// asking. Anonymous visitors keep the request in their session and are sent
// to registration.
func (h HandlerSet) BookTour(c *gin.Context) {
	tourID, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	var form bookingForm
	_ = c.ShouldBind(&form)

	ctx := c.Request.Context()
	intent, err := h.bookings.Prepare(ctx, service.BookingRequest{
		TourID:     tourID,
		TravelDate: form.TravelDate,
		Passengers: form.Passengers,
	})
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			notFound(c)
			return
		}
		flashRedirect(c, models.FlashError, bookingMessage(err), tourPath(tourID))
		return
	}

	session := middleware.CurrentSession(c)
	if !session.Authenticated() {
		session.BookingIntent = &intent
		flashRedirect(c, models.FlashInfo, "Create an account to finish your booking.", "/register")
		return
	}

	booking, err := h.bookings.Book(ctx, session.UserID, intent)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			notFound(c)
			return
		}
		if service.KindOf(err) == "" {
			h.log.Error().Err(err).Int("tour_id", tourID).Msg("create booking")
		}
		flashRedirect(c, models.FlashError, bookingMessage(err), tourPath(tourID))
		return
	}

	flashRedirect(c, models.FlashSuccess, "Your booking is confirmed.", bookingPath(booking.ID))
}

type bookingEntry struct {
	Booking bookingView  `json:"booking"`
	Tour    *models.Tour `json:"tour"`
}

func (h HandlerSet) MyBookings(c *gin.Context) {
	bookings, err := h.bookings.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}

	entries := make([]bookingEntry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, bookingEntry{Booking: newBookingView(b), Tour: h.lookupTour(b.TourID)})
	}
	render(c, http.StatusOK, "my_bookings", gin.H{"bookings": entries})
}

// BookingDetail is visible to the booking's owner and to administrators.
// Everyone else gets a 404 so booking ids cannot be guessed.
func (h HandlerSet) BookingDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}
	booking, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		notFound(c)
		return
	}

	session := middleware.CurrentSession(c)
	if booking.UserID != session.UserID && !session.IsAdmin() {
		notFound(c)
		return
	}

	render(c, http.StatusOK, "booking_detail", gin.H{
		"booking": newBookingView(booking),
		"tour":    h.lookupTour(booking.TourID),
	})
}

func (h HandlerSet) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c)
		return
	}

	_, err := h.bookings.Cancel(c.Request.Context(), id, currentUserID(c))
	switch {
	case err == nil:
		flashRedirect(c, models.FlashSuccess, "Booking cancelled.", "/my-bookings")
	case errors.Is(err, service.ErrBookingNotFound):
		flashRedirect(c, models.FlashError, "Booking not found.", "/my-bookings")
	case errors.Is(err, service.ErrNotBookingOwner):
		flashRedirect(c, models.FlashError, "You cannot cancel someone else's booking.", "/my-bookings")
	case errors.Is(err, service.ErrBookingAlreadyCancelled):
		flashRedirect(c, models.FlashInfo, "This booking is already cancelled.", "/my-bookings")
	case errors.Is(err, service.ErrCancellationTooLate):
		flashRedirect(c, models.FlashError, "Bookings can only be cancelled more than 3 days before travel.", "/my-bookings")
	default:
		h.log.Error().Err(err).Int("booking_id", id).Msg("cancel booking")
		flashRedirect(c, models.FlashError, "The booking could not be cancelled.", "/my-bookings")
	}
}

func (h HandlerSet) lookupTour(id int) *models.Tour {
	tour, err := h.catalog.GetByID(id)
	if err != nil {
		return nil
	}
	return &tour
}

func tourPath(id int) string {
	return "/tour/" + strconv.Itoa(id)
}

func bookingPath(id int) string {
	return "/booking/" + strconv.Itoa(id)
}

func bookingMessage(err error) string {
	switch service.KindOf(err) {
	case service.KindPassengersInvalid:
		return "Number of passengers must be a whole number."
	case service.KindPassengersOutOfRange:
		return "Number of passengers must be between 1 and 10."
	case service.KindTravelDateMissing:
		return "Please choose a travel date."
	case service.KindTravelDateInvalid:
		return "Travel date is not a valid date."
	case service.KindTravelDatePast:
		return "Travel date cannot be in the past."
	case service.KindTravelDateTooFar:
		return "Travel date cannot be more than one year ahead."
	}
	if errors.Is(err, service.ErrTourNotFound) {
		return "Tour not found."
	}
	return "The booking could not be created."
}
