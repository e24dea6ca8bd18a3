package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tourbook/internal/models"
	"tourbook/internal/repository"
)

const (
	MinPassengers = 1
	MaxPassengers = 10

	cancellationNoticeDays = 3
)

type TourLookup interface {
	GetByID(id int) (models.Tour, error)
}

type BookingService struct {
	tours    TourLookup
	bookings *repository.BookingRepository
	clock    Clock
	log      zerolog.Logger
}

func NewBookingService(tours TourLookup, bookings *repository.BookingRepository, clock Clock, log zerolog.Logger) *BookingService {
	return &BookingService{
		tours:    tours,
		bookings: bookings,
		clock:    clock,
		log:      log,
	}
}

// BookingRequest carries the raw form values of a booking attempt.
type BookingRequest struct {
	TourID     int
	TravelDate string
	Passengers string
}

// Prepare runs every check that does not depend on who is asking and returns
// the intent ready to be booked now or after registration.
func (s *BookingService) Prepare(_ context.Context, req BookingRequest) (models.BookingIntent, error) {
	if _, err := s.tours.GetByID(req.TourID); err != nil {
		return models.BookingIntent{}, err
	}

	passengers, err := strconv.Atoi(strings.TrimSpace(req.Passengers))
	if err != nil {
		return models.BookingIntent{}, invalid(KindPassengersInvalid)
	}
	if passengers < MinPassengers || passengers > MaxPassengers {
		return models.BookingIntent{}, invalid(KindPassengersOutOfRange)
	}

	raw := strings.TrimSpace(req.TravelDate)
	if raw == "" {
		return models.BookingIntent{}, invalid(KindTravelDateMissing)
	}
	travelDate, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return models.BookingIntent{}, invalid(KindTravelDateInvalid)
	}
	if err := s.checkTravelDate(travelDate); err != nil {
		return models.BookingIntent{}, err
	}

	return models.BookingIntent{
		TourID:     req.TourID,
		TravelDate: travelDate,
		Passengers: passengers,
	}, nil
}

func (s *BookingService) checkTravelDate(travelDate time.Time) error {
	today := s.clock.Today()
	if travelDate.Before(today) {
		return invalid(KindTravelDatePast)
	}
	if travelDate.After(today.AddDate(1, 0, 0)) {
		return invalid(KindTravelDateTooFar)
	}
	return nil
}

// Book turns an intent into a confirmed booking. The tour and the date
// window are checked again because an intent may have waited in a session
// across a refresh or past midnight.
func (s *BookingService) Book(ctx context.Context, userID int, intent models.BookingIntent) (models.Booking, error) {
	tour, err := s.tours.GetByID(intent.TourID)
	if err != nil {
		return models.Booking{}, err
	}
	if intent.Passengers < MinPassengers || intent.Passengers > MaxPassengers {
		return models.Booking{}, invalid(KindPassengersOutOfRange)
	}
	if err := s.checkTravelDate(intent.TravelDate); err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:          s.bookings.NextID(),
		TourID:      tour.ID,
		UserID:      userID,
		BookingDate: s.clock.Today(),
		TravelDate:  intent.TravelDate,
		Passengers:  intent.Passengers,
		TotalPrice:  tour.UnitPrice() * float64(intent.Passengers),
		Status:      models.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return models.Booking{}, err
	}

	s.log.Info().
		Int("booking_id", booking.ID).
		Int("tour_id", tour.ID).
		Int("user_id", userID).
		Int("passengers", booking.Passengers).
		Float64("total_price", booking.TotalPrice).
		Msg("booking confirmed")

	return booking, nil
}

// Cancel is allowed for the owner only while the trip is more than three
// days away.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID int) (models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.UserID != userID {
		s.log.Warn().Int("booking_id", bookingID).Int("user_id", userID).Msg("cancel attempt by non-owner")
		return models.Booking{}, ErrNotBookingOwner
	}
	if booking.Status == models.BookingStatusCancelled {
		return booking, ErrBookingAlreadyCancelled
	}

	cutoff := s.clock.Today().AddDate(0, 0, cancellationNoticeDays)
	if !booking.TravelDate.After(cutoff) {
		return booking, ErrCancellationTooLate
	}

	if err := s.bookings.Cancel(ctx, bookingID); err != nil {
		return models.Booking{}, err
	}
	booking.Status = models.BookingStatusCancelled

	s.log.Info().Int("booking_id", bookingID).Int("user_id", userID).Msg("booking cancelled")
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id int) (models.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int) ([]models.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) Count() int {
	return s.bookings.Count()
}
