package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourbook/internal/models"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(models.User{Email: "admin@mikola.com", Role: models.UserRoleAdmin})

	admin, err := repo.FindByEmail(ctx, "admin@mikola.com")
	require.NoError(t, err)
	assert.Equal(t, 1, admin.ID)

	id := repo.NextID()
	assert.Equal(t, 2, id)
	require.NoError(t, repo.Create(ctx, models.User{ID: id, Email: "a@example.com"}))

	user, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	user.Phone = "+380"
	require.NoError(t, repo.Update(ctx, user))

	got, _ := repo.GetByID(ctx, id)
	assert.Equal(t, "+380", got.Phone)

	assert.ErrorIs(t, repo.Update(ctx, models.User{ID: 99}), ErrUserNotFound)
	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), ErrUserNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Email = "changed"
	again, _ := repo.GetByID(ctx, 1)
	assert.Equal(t, "admin@mikola.com", again.Email)
}

func TestBookingRepositoryCancelKeepsRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()

	for _, userID := range []int{1, 2, 1} {
		require.NoError(t, repo.Create(ctx, models.Booking{
			ID: repo.NextID(), TourID: 5, UserID: userID, Status: models.BookingStatusConfirmed,
		}))
	}

	require.NoError(t, repo.Cancel(ctx, 2))
	assert.ErrorIs(t, repo.Cancel(ctx, 9), ErrBookingNotFound)
	assert.Equal(t, 3, repo.Count())

	mine, _ := repo.ListByUser(ctx, 1)
	assert.Len(t, mine, 2)

	confirmed, _ := repo.ListConfirmedByTour(ctx, 5)
	assert.Len(t, confirmed, 2)

	byTour, err := repo.ListByTour(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, byTour, 3, "cancelled bookings stay listed under their tour")
	other, err := repo.ListByTour(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, other)

	cancelled, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
}

func TestFeedbackRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFeedbackRepository()

	seed := []models.Feedback{
		{Status: models.FeedbackStatusNew, Priority: models.FeedbackPriorityUrgent, Category: "booking"},
		{Status: models.FeedbackStatusClosed, Priority: models.FeedbackPriorityUrgent, Category: "general"},
		{Status: models.FeedbackStatusInProgress, Priority: models.FeedbackPriorityLow, Category: "general"},
	}
	for _, fb := range seed {
		fb.ID = repo.NextID()
		require.NoError(t, repo.Create(ctx, fb))
	}

	assert.Equal(t, 1, repo.CountNew(ctx))
	assert.Equal(t, 1, repo.CountUrgentOpen(ctx))

	general, _ := repo.ListByCategory(ctx, "general")
	assert.Len(t, general, 2)

	fresh, err := repo.ListByStatus(ctx, models.FeedbackStatusNew)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, 1, fresh[0].ID)

	urgent, err := repo.ListByPriority(ctx, models.FeedbackPriorityUrgent)
	require.NoError(t, err)
	assert.Len(t, urgent, 2)
	low, err := repo.ListByPriority(ctx, models.FeedbackPriorityLow)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, models.FeedbackStatusInProgress, low[0].Status)

	at := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Respond(ctx, 2, "sorted", 1, at))
	answered, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackStatusResolved, answered.Status)
	assert.Equal(t, "sorted", answered.AdminResponse)
	assert.Equal(t, 1, answered.AdminID)
	require.NotNil(t, answered.RespondedAt)
	assert.True(t, answered.RespondedAt.Equal(at))

	stats := repo.Stats(ctx)
	assert.Equal(t, models.FeedbackStats{Total: 3, New: 1, InProgress: 1, Resolved: 1, Urgent: 2}, stats)

	assert.ErrorIs(t, repo.ChangeStatus(ctx, 42, models.FeedbackStatusClosed), ErrFeedbackNotFound)
	require.NoError(t, repo.Delete(ctx, 3))
	assert.Equal(t, 2, repo.Count())
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(func() time.Time { return now })

	require.NoError(t, store.Save(ctx, models.Session{ID: "s1", UserID: 4, ExpiresAt: now.Add(time.Hour)}))
	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.UserID)

	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, store.Save(ctx, models.Session{ID: "s2", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Delete(ctx, "s2"))
	_, err = store.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, store.Ping(ctx))
}

func TestMemorySessionStoreSweepsOnSave(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.UTC)
	store := NewMemorySessionStore(func() time.Time { return now })

	for i := 0; i < 1000; i++ {
		require.NoError(t, store.Save(ctx, models.Session{
			ID:        fmt.Sprintf("abandoned-%d", i),
			ExpiresAt: now.Add(time.Hour),
		}))
	}
	require.NoError(t, store.Save(ctx, models.Session{ID: "long-lived", ExpiresAt: now.Add(72 * time.Hour)}))
	assert.Equal(t, 1001, store.Len())

	now = now.Add(48 * time.Hour)
	require.NoError(t, store.Save(ctx, models.Session{ID: "latest", ExpiresAt: now.Add(time.Hour)}))
	assert.Equal(t, 2, store.Len())

	_, err := store.Get(ctx, "long-lived")
	assert.NoError(t, err)
}
