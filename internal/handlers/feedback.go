package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbook/internal/models"
	"tourbook/internal/service"
)

type feedbackForm struct {
	Subject  string `form:"subject"`
	Message  string `form:"message"`
	Category string `form:"category"`
	Priority string `form:"priority"`
}

func (h HandlerSet) FeedbackForm(c *gin.Context) {
	render(c, http.StatusOK, "feedback_form", gin.H{
		"categories": models.FeedbackCategories,
		"priorities": models.FeedbackPriorities,
	})
}

func (h HandlerSet) SubmitFeedback(c *gin.Context) {
	var form feedbackForm
	_ = c.ShouldBind(&form)

	_, err := h.feedback.Submit(c.Request.Context(), currentUserID(c), service.FeedbackInput{
		Subject:  form.Subject,
		Message:  form.Message,
		Category: form.Category,
		Priority: form.Priority,
	})
	if err != nil {
		if service.KindOf(err) == "" {
			h.log.Error().Err(err).Msg("submit feedback")
		}
		flashRedirect(c, models.FlashError, feedbackMessage(err), "/feedback")
		return
	}

	flashRedirect(c, models.FlashSuccess, "Thank you! Your message has been sent.", "/my-feedback")
}

func (h HandlerSet) MyFeedback(c *gin.Context) {
	items, err := h.feedback.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.log.Error().Err(err).Msg("list feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feedback"})
		return
	}
	render(c, http.StatusOK, "my_feedback", gin.H{"feedback": items})
}

func feedbackMessage(err error) string {
	switch service.KindOf(err) {
	case service.KindSubjectMissing:
		return "Please enter a subject."
	case service.KindSubjectTooLong:
		return "Subject must be at most 200 characters."
	case service.KindMessageMissing:
		return "Please enter a message."
	case service.KindMessageTooLong:
		return "Message must be at most 2000 characters."
	default:
		return "Your message could not be sent."
	}
}
