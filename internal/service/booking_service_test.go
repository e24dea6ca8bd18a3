package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"tourbook/internal/models"
	"tourbook/internal/repository"
)

type BookingServiceSuite struct {
	suite.Suite
	ctx      context.Context
	bookings *repository.BookingRepository
	service  *BookingService
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceSuite))
}

func (s *BookingServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.bookings = repository.NewBookingRepository()
	s.service = s.newService(fixedClock(2026, time.October, 14))
}

func (s *BookingServiceSuite) newService(clock Clock) *BookingService {
	tours := fakeTours{
		1: {ID: 1, Title: "Range", Price: 100, MinPrice: price(80), MaxPrice: price(120)},
		2: {ID: 2, Title: "Upper only", Price: 100, MaxPrice: price(150)},
		3: {ID: 3, Title: "Anchor", Price: 90},
	}
	return NewBookingService(tours, s.bookings, clock, zerolog.Nop())
}

func (s *BookingServiceSuite) TestPrepareRejectsUnknownTour() {
	_, err := s.service.Prepare(s.ctx, BookingRequest{TourID: 42, TravelDate: "2026-11-01", Passengers: "2"})
	s.ErrorIs(err, ErrTourNotFound)
}

func (s *BookingServiceSuite) TestPreparePassengers() {
	cases := map[string]ValidationKind{
		"":    KindPassengersInvalid,
		"two": KindPassengersInvalid,
		"2.5": KindPassengersInvalid,
		"0":   KindPassengersOutOfRange,
		"11":  KindPassengersOutOfRange,
		"-1":  KindPassengersOutOfRange,
		"1":   "",
		"10":  "",
		" 3 ": "",
	}
	for passengers, want := range cases {
		_, err := s.service.Prepare(s.ctx, BookingRequest{TourID: 1, TravelDate: "2026-11-01", Passengers: passengers})
		s.Equal(want, KindOf(err), "passengers %q", passengers)
	}
}

func (s *BookingServiceSuite) TestPrepareTravelDate() {
	cases := map[string]ValidationKind{
		"":           KindTravelDateMissing,
		"14/10/2026": KindTravelDateInvalid,
		"2026-02-30": KindTravelDateInvalid,
		"2026-10-13": KindTravelDatePast,
		"2026-10-14": "",
		"2027-10-14": "",
		"2027-10-15": KindTravelDateTooFar,
	}
	for travelDate, want := range cases {
		_, err := s.service.Prepare(s.ctx, BookingRequest{TourID: 1, TravelDate: travelDate, Passengers: "1"})
		s.Equal(want, KindOf(err), "travel date %q", travelDate)
	}
}

func (s *BookingServiceSuite) TestPassengersCheckedBeforeDate() {
	_, err := s.service.Prepare(s.ctx, BookingRequest{TourID: 1, TravelDate: "", Passengers: "0"})
	s.Equal(KindPassengersOutOfRange, KindOf(err))
}

func (s *BookingServiceSuite) TestBookUsesUnitPrice() {
	cases := []struct {
		tourID int
		want   float64
	}{
		{1, 240},
		{2, 450},
		{3, 270},
	}
	for _, tc := range cases {
		booking, err := s.service.Book(s.ctx, 7, models.BookingIntent{TourID: tc.tourID, TravelDate: date("2026-12-01"), Passengers: 3})
		s.Require().NoError(err)
		s.Equal(tc.want, booking.TotalPrice)
		s.Equal(models.BookingStatusConfirmed, booking.Status)
		s.Equal(date("2026-10-14"), booking.BookingDate)
	}
	s.Equal(3, s.bookings.Count())
}

func (s *BookingServiceSuite) TestBookRevalidatesStaleIntent() {
	intent := models.BookingIntent{TourID: 1, TravelDate: date("2026-10-14"), Passengers: 2}

	later := s.newService(fixedClock(2026, time.October, 15))
	_, err := later.Book(s.ctx, 7, intent)
	s.Equal(KindTravelDatePast, KindOf(err))

	_, err = s.service.Book(s.ctx, 7, models.BookingIntent{TourID: 99, TravelDate: date("2026-11-01"), Passengers: 2})
	s.ErrorIs(err, ErrTourNotFound)
	s.Zero(s.bookings.Count())
}

func (s *BookingServiceSuite) TestCancel() {
	booking, err := s.service.Book(s.ctx, 7, models.BookingIntent{TourID: 3, TravelDate: date("2026-10-18"), Passengers: 1})
	s.Require().NoError(err)

	_, err = s.service.Cancel(s.ctx, booking.ID, 8)
	s.ErrorIs(err, ErrNotBookingOwner)
	stored, _ := s.bookings.GetByID(s.ctx, booking.ID)
	s.Equal(models.BookingStatusConfirmed, stored.Status)

	cancelled, err := s.service.Cancel(s.ctx, booking.ID, 7)
	s.Require().NoError(err)
	s.Equal(models.BookingStatusCancelled, cancelled.Status)

	_, err = s.service.Cancel(s.ctx, booking.ID, 7)
	s.ErrorIs(err, ErrBookingAlreadyCancelled)
	stored, _ = s.bookings.GetByID(s.ctx, booking.ID)
	s.Equal(models.BookingStatusCancelled, stored.Status)

	_, err = s.service.Cancel(s.ctx, 404, 7)
	s.ErrorIs(err, ErrBookingNotFound)
}

func (s *BookingServiceSuite) TestCancelCutoff() {
	tooSoon, err := s.service.Book(s.ctx, 7, models.BookingIntent{TourID: 3, TravelDate: date("2026-10-17"), Passengers: 1})
	s.Require().NoError(err)

	_, err = s.service.Cancel(s.ctx, tooSoon.ID, 7)
	s.ErrorIs(err, ErrCancellationTooLate)
	stored, _ := s.bookings.GetByID(s.ctx, tooSoon.ID)
	s.Equal(models.BookingStatusConfirmed, stored.Status)
}

func (s *BookingServiceSuite) TestCancelCutoffAcrossMonthEnd() {
	svc := s.newService(fixedClock(2026, time.October, 30))

	edge, err := svc.Book(s.ctx, 7, models.BookingIntent{TourID: 3, TravelDate: date("2026-11-02"), Passengers: 1})
	s.Require().NoError(err)
	_, err = svc.Cancel(s.ctx, edge.ID, 7)
	s.ErrorIs(err, ErrCancellationTooLate)

	after, err := svc.Book(s.ctx, 7, models.BookingIntent{TourID: 3, TravelDate: date("2026-11-03"), Passengers: 1})
	s.Require().NoError(err)
	_, err = svc.Cancel(s.ctx, after.ID, 7)
	s.NoError(err)
}
