package repository

import (
	"context"
	"errors"
	"sync"

	"tourbook/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository never removes records; cancellation is a status change.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
	nextID   int
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{nextID: 1}
}

func (r *BookingRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

func (r *BookingRepository) Create(_ context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int) (models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, booking := range r.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return models.Booking{}, ErrBookingNotFound
}

func (r *BookingRepository) ListByUser(_ context.Context, userID int) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.UserID == userID }), nil
}

func (r *BookingRepository) ListByTour(_ context.Context, tourID int) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool { return b.TourID == tourID }), nil
}

func (r *BookingRepository) ListConfirmedByTour(_ context.Context, tourID int) ([]models.Booking, error) {
	return r.filter(func(b models.Booking) bool {
		return b.TourID == tourID && b.Status == models.BookingStatusConfirmed
	}), nil
}

func (r *BookingRepository) List(_ context.Context) ([]models.Booking, error) {
	return r.filter(func(models.Booking) bool { return true }), nil
}

func (r *BookingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

func (r *BookingRepository) Update(_ context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == booking.ID {
			r.bookings[i] = booking
			return nil
		}
	}
	return ErrBookingNotFound
}

func (r *BookingRepository) Cancel(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = models.BookingStatusCancelled
			return nil
		}
	}
	return ErrBookingNotFound
}

func (r *BookingRepository) filter(keep func(models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		if keep(booking) {
			out = append(out, booking)
		}
	}
	return out
}
