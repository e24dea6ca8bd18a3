package models

import "time"

type FeedbackStatus string

const (
	FeedbackStatusNew        FeedbackStatus = "new"
	FeedbackStatusInProgress FeedbackStatus = "in_progress"
	FeedbackStatusResolved   FeedbackStatus = "resolved"
	FeedbackStatusClosed     FeedbackStatus = "closed"
)

var FeedbackStatuses = []FeedbackStatus{
	FeedbackStatusNew,
	FeedbackStatusInProgress,
	FeedbackStatusResolved,
	FeedbackStatusClosed,
}

func (s FeedbackStatus) Valid() bool {
	for _, known := range FeedbackStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type FeedbackPriority string

const (
	FeedbackPriorityLow    FeedbackPriority = "low"
	FeedbackPriorityNormal FeedbackPriority = "normal"
	FeedbackPriorityHigh   FeedbackPriority = "high"
	FeedbackPriorityUrgent FeedbackPriority = "urgent"
)

var FeedbackPriorities = []FeedbackPriority{
	FeedbackPriorityLow,
	FeedbackPriorityNormal,
	FeedbackPriorityHigh,
	FeedbackPriorityUrgent,
}

func (p FeedbackPriority) Valid() bool {
	for _, known := range FeedbackPriorities {
		if p == known {
			return true
		}
	}
	return false
}

// Rank orders priorities from most to least pressing.
func (p FeedbackPriority) Rank() int {
	switch p {
	case FeedbackPriorityUrgent:
		return 0
	case FeedbackPriorityHigh:
		return 1
	case FeedbackPriorityNormal:
		return 2
	default:
		return 3
	}
}

const DefaultFeedbackCategory = "general"

var FeedbackCategories = []string{"general", "booking", "technical", "complaint", "suggestion"}

type Feedback struct {
	ID            int              `json:"id"`
	UserID        int              `json:"user_id"`
	Subject       string           `json:"subject"`
	Message       string           `json:"message"`
	CreatedAt     time.Time        `json:"created_at"`
	Status        FeedbackStatus   `json:"status"`
	Priority      FeedbackPriority `json:"priority"`
	Category      string           `json:"category"`
	AdminResponse string           `json:"admin_response,omitempty"`
	AdminID       int              `json:"admin_id,omitempty"`
	RespondedAt   *time.Time       `json:"responded_at,omitempty"`
}

type FeedbackStats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
	Urgent     int `json:"urgent"`
}
