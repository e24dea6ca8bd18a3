package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"
)

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Admin    string `form:"admin"`
}

type registerForm struct {
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Phone           string `form:"phone"`
}

func (h HandlerSet) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login", gin.H{"admin": c.Query("admin") == "1"})
}

func (h HandlerSet) Login(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)
	adminMode := form.Admin == "1"

	user, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error().Err(err).Msg("login failed")
		}
		back := "/login"
		if adminMode {
			back = "/login?admin=1"
		}
		flashRedirect(c, models.FlashError, "Invalid email or password.", back)
		return
	}

	h.signIn(c, user)
	middleware.CurrentSession(c).AddFlash(models.FlashSuccess, "You are now signed in.")

	if adminMode && user.IsAdmin() {
		redirect(c, "/admin/")
		return
	}
	redirect(c, "/")
}

func (h HandlerSet) RegisterForm(c *gin.Context) {
	session := middleware.CurrentSession(c)
	render(c, http.StatusOK, "register", gin.H{
		"pending_booking": session != nil && session.BookingIntent != nil,
	})
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var form registerForm
	_ = c.ShouldBind(&form)

	user, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Phone:           form.Phone,
	})
	if err != nil {
		flashRedirect(c, models.FlashError, registrationMessage(err), "/register")
		return
	}

	session := middleware.CurrentSession(c)
	intent := session.BookingIntent
	if intent == nil {
		flashRedirect(c, models.FlashSuccess, "Registration complete. You can sign in now.", "/login")
		return
	}
	session.BookingIntent = nil

	booking, err := h.bookings.Book(c.Request.Context(), user.ID, *intent)
	if service.KindOf(err) != "" {
		flashRedirect(c, models.FlashError, bookingMessage(err), "/")
		return
	}

	h.signIn(c, user)

	switch {
	case err == nil:
		flashRedirect(c, models.FlashSuccess, "Registration and booking completed.", bookingPath(booking.ID))
	case errors.Is(err, service.ErrTourNotFound):
		flashRedirect(c, models.FlashWarning, "Registration complete, but the tour you picked is no longer available.", "/")
	default:
		h.log.Error().Err(err).Int("user_id", user.ID).Msg("deferred booking failed")
		flashRedirect(c, models.FlashError, "Registration complete, but the booking could not be created.", "/")
	}
}

func (h HandlerSet) Logout(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil {
		session.Clear()
		session.Language = middleware.DefaultLanguage
		if err := middleware.RotateSession(c); err != nil {
			h.log.Error().Err(err).Msg("rotate session")
		}
	}
	flashRedirect(c, models.FlashInfo, "You have signed out.", "/")
}

// signIn stores the account in the session under a fresh session id.
func (h HandlerSet) signIn(c *gin.Context, user models.User) {
	if err := middleware.RotateSession(c); err != nil {
		h.log.Error().Err(err).Int("user_id", user.ID).Msg("rotate session")
	}
	middleware.CurrentSession(c).SignIn(user)
}

func registrationMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, service.ErrPasswordTooShort):
		return "Password must be at least 6 characters long."
	case errors.Is(err, service.ErrEmailTaken):
		return "A user with this email already exists."
	case errors.Is(err, service.ErrInvalidEmail):
		return "Please enter a valid email address."
	default:
		return "Registration failed. Please try again."
	}
}
