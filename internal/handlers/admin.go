package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tourbook/internal/catalog"
	"tourbook/internal/models"
	"tourbook/internal/service"
)

var errBadNumber = errors.New("bad number")

func (h HandlerSet) AdminDashboard(c *gin.Context) {
	render(c, http.StatusOK, "admin_dashboard", gin.H{
		"tours":  h.admin.Tours(),
		"counts": h.admin.Dashboard(c.Request.Context()),
	})
}

func (h HandlerSet) AdminAddTourForm(c *gin.Context) {
	render(c, http.StatusOK, "admin_add_tour", gin.H{})
}

func (h HandlerSet) AdminAddTour(c *gin.Context) {
	defaults := catalog.TourInput{
		Title:        "New Tour",
		Type:         "city",
		DurationDays: 1,
	}
	input, err := tourFormInput(c, defaults)
	if err != nil {
		flashRedirect(c, models.FlashError, "Price and duration must be numbers.", "/admin/add")
		return
	}

	tour, err := h.admin.AddTour(input)
	if err != nil {
		flashRedirect(c, models.FlashError, tourInputMessage(err), "/admin/add")
		return
	}
	flashRedirect(c, models.FlashSuccess, "Tour \""+tour.Title+"\" added.", "/admin/")
}

func (h HandlerSet) AdminTours(c *gin.Context) {
	render(c, http.StatusOK, "admin_tours", gin.H{"tours": h.admin.Tours()})
}

func (h HandlerSet) AdminEditTourForm(c *gin.Context) {
	tour, ok := h.adminTour(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "admin_edit_tour", gin.H{"tour": tour})
}

// AdminEditTour keeps the current value of every field the form leaves out.
func (h HandlerSet) AdminEditTour(c *gin.Context) {
	tour, ok := h.adminTour(c)
	if !ok {
		return
	}
	editPath := "/admin/tours/" + strconv.Itoa(tour.ID) + "/edit"

	input, err := tourFormInput(c, catalog.TourInput{
		Title:        tour.Title,
		Description:  tour.Description,
		Price:        tour.Price,
		City:         tour.City,
		Country:      tour.Country,
		Type:         tour.Type,
		DurationDays: tour.DurationDays,
		PhotoURL:     tour.PhotoURL,
	})
	if err != nil {
		flashRedirect(c, models.FlashError, "Price and duration must be numbers.", editPath)
		return
	}

	if _, err := h.admin.UpdateTour(tour.ID, input); err != nil {
		if errors.Is(err, catalog.ErrTourNotFound) {
			flashRedirect(c, models.FlashError, "Tour not found.", "/admin/tours")
			return
		}
		flashRedirect(c, models.FlashError, tourInputMessage(err), editPath)
		return
	}
	flashRedirect(c, models.FlashSuccess, "Tour updated.", "/admin/tours")
}

func (h HandlerSet) AdminBookings(c *gin.Context) {
	details, err := h.admin.Bookings(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}

	type row struct {
		Booking bookingView  `json:"booking"`
		Tour    *models.Tour `json:"tour"`
		User    *models.User `json:"user"`
	}
	rows := make([]row, 0, len(details))
	for _, d := range details {
		rows = append(rows, row{Booking: newBookingView(d.Booking), Tour: d.Tour, User: d.User})
	}
	render(c, http.StatusOK, "admin_bookings", gin.H{"bookings": rows})
}

func (h HandlerSet) AdminUsers(c *gin.Context) {
	users, err := h.admin.Users(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	render(c, http.StatusOK, "admin_users", gin.H{"users": users})
}

func (h HandlerSet) AdminFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	items, err := h.feedback.ListForAdmin(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feedback"})
		return
	}
	render(c, http.StatusOK, "admin_feedback", gin.H{
		"feedback": items,
		"stats":    h.feedback.Stats(ctx),
	})
}

func (h HandlerSet) AdminFeedbackView(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
		return
	}
	item, err := h.feedback.Get(c.Request.Context(), id)
	if err != nil {
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
		return
	}
	var author *models.User
	if user, err := h.auth.GetUser(c.Request.Context(), item.UserID); err == nil {
		author = &user
	}

	render(c, http.StatusOK, "admin_feedback_view", gin.H{
		"feedback":   item,
		"author":     author,
		"statuses":   models.FeedbackStatuses,
		"priorities": models.FeedbackPriorities,
	})
}

func (h HandlerSet) AdminRespond(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
		return
	}
	back := feedbackPath(id)

	_, err := h.feedback.Respond(c.Request.Context(), id, currentUserID(c), c.PostForm("response"))
	switch {
	case err == nil:
		flashRedirect(c, models.FlashSuccess, "Response saved.", back)
	case errors.Is(err, service.ErrEmptyResponse):
		flashRedirect(c, models.FlashError, "Response cannot be empty.", back)
	case errors.Is(err, service.ErrResponseTooLong):
		flashRedirect(c, models.FlashError, "Response must be at most 2000 characters.", back)
	case errors.Is(err, service.ErrFeedbackNotFound):
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
	default:
		h.log.Error().Err(err).Int("feedback_id", id).Msg("respond to feedback")
		flashRedirect(c, models.FlashError, "Response could not be saved.", back)
	}
}

func (h HandlerSet) AdminChangeStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
		return
	}
	back := feedbackPath(id)

	err := h.feedback.ChangeStatus(c.Request.Context(), id, c.PostForm("status"))
	switch {
	case err == nil:
		flashRedirect(c, models.FlashSuccess, "Status updated.", back)
	case errors.Is(err, service.ErrInvalidStatus):
		flashRedirect(c, models.FlashError, "Unknown status.", back)
	case errors.Is(err, service.ErrFeedbackNotFound):
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
	default:
		h.log.Error().Err(err).Int("feedback_id", id).Msg("change feedback status")
		flashRedirect(c, models.FlashError, "Status could not be updated.", back)
	}
}

func (h HandlerSet) AdminChangePriority(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
		return
	}
	back := feedbackPath(id)

	err := h.feedback.ChangePriority(c.Request.Context(), id, c.PostForm("priority"))
	switch {
	case err == nil:
		flashRedirect(c, models.FlashSuccess, "Priority updated.", back)
	case errors.Is(err, service.ErrInvalidPriority):
		flashRedirect(c, models.FlashError, "Unknown priority.", back)
	case errors.Is(err, service.ErrFeedbackNotFound):
		flashRedirect(c, models.FlashError, "Message not found.", "/admin/feedback")
	default:
		h.log.Error().Err(err).Int("feedback_id", id).Msg("change feedback priority")
		flashRedirect(c, models.FlashError, "Priority could not be updated.", back)
	}
}

func (h HandlerSet) adminTour(c *gin.Context) (models.Tour, bool) {
	id, ok := pathID(c)
	if !ok {
		flashRedirect(c, models.FlashError, "Tour not found.", "/admin/tours")
		return models.Tour{}, false
	}
	tour, err := h.catalog.GetByID(id)
	if err != nil {
		flashRedirect(c, models.FlashError, "Tour not found.", "/admin/tours")
		return models.Tour{}, false
	}
	return tour, true
}

func feedbackPath(id int) string {
	return "/admin/feedback/" + strconv.Itoa(id)
}

// tourFormInput overlays the posted fields on base. Fields that are absent
// or blank keep the base value.
func tourFormInput(c *gin.Context, base catalog.TourInput) (catalog.TourInput, error) {
	in := base
	if v, ok := formValue(c, "title"); ok {
		in.Title = v
	}
	if v, ok := formValue(c, "description"); ok {
		in.Description = v
	}
	if v, ok := formValue(c, "city"); ok {
		in.City = v
	}
	if v, ok := formValue(c, "country"); ok {
		in.Country = v
	}
	if v, ok := formValue(c, "type"); ok {
		in.Type = v
	}
	if v, ok := formValue(c, "photo_url"); ok {
		in.PhotoURL = v
	}
	if v, ok := formValue(c, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return base, errBadNumber
		}
		in.Price = price
	}
	if v, ok := formValue(c, "duration_days"); ok {
		days, err := strconv.Atoi(v)
		if err != nil {
			return base, errBadNumber
		}
		in.DurationDays = days
	}
	return in, nil
}

func formValue(c *gin.Context, key string) (string, bool) {
	v, ok := c.GetPostForm(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func tourInputMessage(err error) string {
	var ierr *catalog.InputError
	if errors.As(err, &ierr) {
		return "Invalid value for " + strings.ToLower(ierr.Field) + "."
	}
	return "Tour could not be saved."
}
