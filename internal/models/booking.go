package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

const DateLayout = "2006-01-02"

type Booking struct {
	ID          int           `json:"id"`
	TourID      int           `json:"tour_id"`
	UserID      int           `json:"user_id"`
	BookingDate time.Time     `json:"-"`
	TravelDate  time.Time     `json:"-"`
	Passengers  int           `json:"passengers"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
}
