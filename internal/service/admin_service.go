package service

import (
	"context"

	"github.com/rs/zerolog"

	"tourbook/internal/catalog"
	"tourbook/internal/models"
	"tourbook/internal/repository"
)

type Dashboard struct {
	Tours    int                  `json:"tours"`
	Bookings int                  `json:"bookings"`
	Users    int                  `json:"users"`
	Feedback models.FeedbackStats `json:"feedback"`
}

// BookingDetails joins a booking with whatever its tour and user look like
// now. Either side may have disappeared.
type BookingDetails struct {
	Booking models.Booking
	Tour    *models.Tour
	User    *models.User
}

type AdminService struct {
	catalog  *catalog.Catalog
	bookings *repository.BookingRepository
	users    *repository.UserRepository
	feedback *repository.FeedbackRepository
	log      zerolog.Logger
}

func NewAdminService(
	cat *catalog.Catalog,
	bookings *repository.BookingRepository,
	users *repository.UserRepository,
	feedback *repository.FeedbackRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		catalog:  cat,
		bookings: bookings,
		users:    users,
		feedback: feedback,
		log:      log,
	}
}

func (s *AdminService) Dashboard(ctx context.Context) Dashboard {
	return Dashboard{
		Tours:    s.catalog.Len(),
		Bookings: s.bookings.Count(),
		Users:    s.users.Count(),
		Feedback: s.feedback.Stats(ctx),
	}
}

func (s *AdminService) Bookings(ctx context.Context) ([]BookingDetails, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		details := BookingDetails{Booking: b}
		if tour, err := s.catalog.GetByID(b.TourID); err == nil {
			details.Tour = &tour
		}
		if user, err := s.users.GetByID(ctx, b.UserID); err == nil {
			details.User = &user
		}
		out = append(out, details)
	}
	return out, nil
}

func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) Tours() []models.Tour {
	return s.catalog.List()
}

func (s *AdminService) AddTour(in catalog.TourInput) (models.Tour, error) {
	tour, err := s.catalog.Add(in)
	if err != nil {
		return models.Tour{}, err
	}
	s.log.Info().Int("tour_id", tour.ID).Str("title", tour.Title).Msg("tour added")
	return tour, nil
}

func (s *AdminService) UpdateTour(id int, in catalog.TourInput) (models.Tour, error) {
	tour, err := s.catalog.Update(id, in)
	if err != nil {
		return models.Tour{}, err
	}
	s.log.Info().Int("tour_id", tour.ID).Msg("tour updated")
	return tour, nil
}
