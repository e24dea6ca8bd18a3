package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"tourbook/internal/models"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository stores support messages. It does not validate status or
// priority values; that happens before the call.
type FeedbackRepository struct {
	mu       sync.RWMutex
	feedback []models.Feedback
	nextID   int
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{nextID: 1}
}

func (r *FeedbackRepository) NextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

func (r *FeedbackRepository) Create(_ context.Context, feedback models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback = append(r.feedback, feedback)
	return nil
}

func (r *FeedbackRepository) GetByID(_ context.Context, id int) (models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.feedback {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Feedback{}, ErrFeedbackNotFound
}

func (r *FeedbackRepository) ListByUser(_ context.Context, userID int) ([]models.Feedback, error) {
	return r.filter(func(f models.Feedback) bool { return f.UserID == userID }), nil
}

func (r *FeedbackRepository) ListByStatus(_ context.Context, status models.FeedbackStatus) ([]models.Feedback, error) {
	return r.filter(func(f models.Feedback) bool { return f.Status == status }), nil
}

func (r *FeedbackRepository) ListByPriority(_ context.Context, priority models.FeedbackPriority) ([]models.Feedback, error) {
	return r.filter(func(f models.Feedback) bool { return f.Priority == priority }), nil
}

func (r *FeedbackRepository) ListByCategory(_ context.Context, category string) ([]models.Feedback, error) {
	return r.filter(func(f models.Feedback) bool { return f.Category == category }), nil
}

func (r *FeedbackRepository) List(_ context.Context) ([]models.Feedback, error) {
	return r.filter(func(models.Feedback) bool { return true }), nil
}

func (r *FeedbackRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.feedback)
}

func (r *FeedbackRepository) Update(_ context.Context, feedback models.Feedback) error {
	return r.mutate(feedback.ID, func(f *models.Feedback) { *f = feedback })
}

func (r *FeedbackRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.feedback {
		if r.feedback[i].ID == id {
			r.feedback = append(r.feedback[:i], r.feedback[i+1:]...)
			return nil
		}
	}
	return ErrFeedbackNotFound
}

// Respond always moves the message to resolved, closed ones included.
func (r *FeedbackRepository) Respond(_ context.Context, id int, response string, adminID int, at time.Time) error {
	return r.mutate(id, func(f *models.Feedback) {
		f.AdminResponse = response
		f.AdminID = adminID
		f.RespondedAt = &at
		f.Status = models.FeedbackStatusResolved
	})
}

func (r *FeedbackRepository) ChangeStatus(_ context.Context, id int, status models.FeedbackStatus) error {
	return r.mutate(id, func(f *models.Feedback) { f.Status = status })
}

func (r *FeedbackRepository) ChangePriority(_ context.Context, id int, priority models.FeedbackPriority) error {
	return r.mutate(id, func(f *models.Feedback) { f.Priority = priority })
}

func (r *FeedbackRepository) CountNew(_ context.Context) int {
	return len(r.filter(func(f models.Feedback) bool { return f.Status == models.FeedbackStatusNew }))
}

func (r *FeedbackRepository) CountUrgentOpen(_ context.Context) int {
	return len(r.filter(urgentOpen))
}

func (r *FeedbackRepository) Stats(_ context.Context) models.FeedbackStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := models.FeedbackStats{Total: len(r.feedback)}
	for _, f := range r.feedback {
		switch f.Status {
		case models.FeedbackStatusNew:
			stats.New++
		case models.FeedbackStatusInProgress:
			stats.InProgress++
		case models.FeedbackStatusResolved:
			stats.Resolved++
		case models.FeedbackStatusClosed:
			stats.Closed++
		}
		if urgentOpen(f) {
			stats.Urgent++
		}
	}
	return stats
}

func urgentOpen(f models.Feedback) bool {
	return f.Priority == models.FeedbackPriorityUrgent && f.Status != models.FeedbackStatusClosed
}

func (r *FeedbackRepository) mutate(id int, apply func(*models.Feedback)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.feedback {
		if r.feedback[i].ID == id {
			apply(&r.feedback[i])
			return nil
		}
	}
	return ErrFeedbackNotFound
}

func (r *FeedbackRepository) filter(keep func(models.Feedback) bool) []models.Feedback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Feedback, 0, len(r.feedback))
	for _, f := range r.feedback {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}
