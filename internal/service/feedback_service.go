package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"tourbook/internal/models"
	"tourbook/internal/repository"
)

const (
	MaxSubjectLength  = 200
	MaxMessageLength  = 2000
	MaxResponseLength = 2000
)

type FeedbackService struct {
	feedback *repository.FeedbackRepository
	validate *validator.Validate
	clock    Clock
	log      zerolog.Logger
}

func NewFeedbackService(feedback *repository.FeedbackRepository, clock Clock, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		validate: validator.New(),
		clock:    clock,
		log:      log,
	}
}

type FeedbackInput struct {
	Subject  string `validate:"required,max=200"`
	Message  string `validate:"required,max=2000"`
	Category string
	Priority string
}

func (s *FeedbackService) Submit(ctx context.Context, userID int, input FeedbackInput) (models.Feedback, error) {
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if err := s.validate.Struct(input); err != nil {
		return models.Feedback{}, feedbackValidation(err)
	}

	priority := models.FeedbackPriority(strings.TrimSpace(input.Priority))
	if !priority.Valid() {
		priority = models.FeedbackPriorityNormal
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = models.DefaultFeedbackCategory
	}

	feedback := models.Feedback{
		ID:        s.feedback.NextID(),
		UserID:    userID,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: s.clock.now(),
		Status:    models.FeedbackStatusNew,
		Priority:  priority,
		Category:  category,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return models.Feedback{}, err
	}

	s.log.Info().
		Int("feedback_id", feedback.ID).
		Int("user_id", userID).
		Str("priority", string(priority)).
		Msg("feedback submitted")
	return feedback, nil
}

func feedbackValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	switch {
	case first.Field() == "Subject" && first.Tag() == "required":
		return invalid(KindSubjectMissing)
	case first.Field() == "Subject":
		return invalid(KindSubjectTooLong)
	case first.Field() == "Message" && first.Tag() == "required":
		return invalid(KindMessageMissing)
	default:
		return invalid(KindMessageTooLong)
	}
}

func (s *FeedbackService) Respond(ctx context.Context, id, adminID int, response string) (models.Feedback, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return models.Feedback{}, ErrEmptyResponse
	}
	if utf8.RuneCountInString(response) > MaxResponseLength {
		return models.Feedback{}, ErrResponseTooLong
	}

	if err := s.feedback.Respond(ctx, id, response, adminID, s.clock.now()); err != nil {
		return models.Feedback{}, err
	}
	s.log.Info().Int("feedback_id", id).Int("admin_id", adminID).Msg("feedback answered")
	return s.feedback.GetByID(ctx, id)
}

func (s *FeedbackService) ChangeStatus(ctx context.Context, id int, status string) error {
	next := models.FeedbackStatus(status)
	if !next.Valid() {
		return ErrInvalidStatus
	}
	if err := s.feedback.ChangeStatus(ctx, id, next); err != nil {
		return err
	}
	s.log.Info().Int("feedback_id", id).Str("status", status).Msg("feedback status changed")
	return nil
}

func (s *FeedbackService) ChangePriority(ctx context.Context, id int, priority string) error {
	next := models.FeedbackPriority(priority)
	if !next.Valid() {
		return ErrInvalidPriority
	}
	if err := s.feedback.ChangePriority(ctx, id, next); err != nil {
		return err
	}
	s.log.Info().Int("feedback_id", id).Str("priority", priority).Msg("feedback priority changed")
	return nil
}

func (s *FeedbackService) Get(ctx context.Context, id int) (models.Feedback, error) {
	return s.feedback.GetByID(ctx, id)
}

// ListByUser returns the user's messages newest first.
func (s *FeedbackService) ListByUser(ctx context.Context, userID int) ([]models.Feedback, error) {
	items, err := s.feedback.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return newer(items[i], items[j])
	})
	return items, nil
}

// ListForAdmin orders by priority, most pressing first, then newest first.
func (s *FeedbackService) ListForAdmin(ctx context.Context) ([]models.Feedback, error) {
	items, err := s.feedback.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Priority.Rank(), items[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return newer(items[i], items[j])
	})
	return items, nil
}

func (s *FeedbackService) Stats(ctx context.Context) models.FeedbackStats {
	return s.feedback.Stats(ctx)
}

func (s *FeedbackService) Count() int {
	return s.feedback.Count()
}

func newer(a, b models.Feedback) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
