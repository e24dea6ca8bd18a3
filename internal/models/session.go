package models

import "time"

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashInfo    FlashLevel = "info"
	FlashWarning FlashLevel = "warning"
	FlashError   FlashLevel = "error"
)

type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// BookingIntent is a booking request made before the visitor had an account.
// It is consumed right after registration.
type BookingIntent struct {
	TourID     int       `json:"tour_id"`
	TravelDate time.Time `json:"travel_date"`
	Passengers int       `json:"passengers"`
}

type Session struct {
	ID            string         `json:"id"`
	UserID        int            `json:"user_id,omitempty"`
	Email         string         `json:"email,omitempty"`
	Role          UserRole       `json:"role,omitempty"`
	Language      string         `json:"language,omitempty"`
	BookingIntent *BookingIntent `json:"booking_data,omitempty"`
	Flashes       []Flash        `json:"flashes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	ExpiresAt     time.Time      `json:"expires_at"`
}

func (s *Session) Authenticated() bool {
	return s.UserID != 0
}

func (s *Session) IsAdmin() bool {
	return s.Role == UserRoleAdmin
}

func (s *Session) SignIn(user User) {
	s.UserID = user.ID
	s.Email = user.Email
	s.Role = user.Role
}

// Clear drops every per-user field but keeps the session id and lifetime.
func (s *Session) Clear() {
	s.UserID = 0
	s.Email = ""
	s.Role = ""
	s.Language = ""
	s.BookingIntent = nil
	s.Flashes = nil
}

func (s *Session) AddFlash(level FlashLevel, message string) {
	s.Flashes = append(s.Flashes, Flash{Level: level, Message: message})
}

func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
