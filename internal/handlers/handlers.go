package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tourbook/internal/catalog"
	"tourbook/internal/config"
	"tourbook/internal/middleware"
	"tourbook/internal/repository"
	"tourbook/internal/service"
	"tourbook/internal/weather"
)

type WeatherSource interface {
	Current(ctx context.Context, city, country string) weather.Report
}

type Dependencies struct {
	Config   *config.AppConfig
	Log      zerolog.Logger
	Catalog  *catalog.Catalog
	Weather  WeatherSource
	Auth     *service.AuthService
	Bookings *service.BookingService
	Feedback *service.FeedbackService
	Admin    *service.AdminService
	Sessions repository.SessionStore
	Clock    service.Clock
}

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	catalog  *catalog.Catalog
	weather  WeatherSource
	auth     *service.AuthService
	bookings *service.BookingService
	feedback *service.FeedbackService
	admin    *service.AdminService
	sessions repository.SessionStore
	clock    service.Clock
}

func NewHandlerSet(deps Dependencies) HandlerSet {
	return HandlerSet{
		log:      deps.Log,
		cfg:      deps.Config,
		catalog:  deps.Catalog,
		weather:  deps.Weather,
		auth:     deps.Auth,
		bookings: deps.Bookings,
		feedback: deps.Feedback,
		admin:    deps.Admin,
		sessions: deps.Sessions,
		clock:    deps.Clock,
	}
}

// RegisterHealth mounts the routes that must not touch sessions.
func (h HandlerSet) RegisterHealth(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/", h.Home)
	router.GET("/search", h.Search)
	router.GET("/tour/:id", h.TourDetail)
	router.POST("/book/:id", h.BookTour)
	router.GET("/set_language/:lang", h.SetLanguage)

	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterForm)
	router.POST("/register", h.RegisterUser)
	router.GET("/logout", h.Logout)

	member := router.Group("/")
	member.Use(middleware.RequireLogin())
	{
		member.GET("/my-bookings", h.MyBookings)
		member.GET("/booking/:id", h.BookingDetail)
		member.POST("/booking/:id/cancel", h.CancelBooking)

		member.GET("/feedback", h.FeedbackForm)
		member.POST("/feedback", h.SubmitFeedback)
		member.GET("/my-feedback", h.MyFeedback)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/", h.AdminDashboard)
		admin.GET("/add", h.AdminAddTourForm)
		admin.POST("/add", h.AdminAddTour)
		admin.GET("/tours", h.AdminTours)
		admin.GET("/tours/:id/edit", h.AdminEditTourForm)
		admin.POST("/tours/:id/edit", h.AdminEditTour)
		admin.GET("/bookings", h.AdminBookings)
		admin.GET("/users", h.AdminUsers)

		admin.GET("/feedback", h.AdminFeedback)
		admin.GET("/feedback/:id", h.AdminFeedbackView)
		admin.POST("/feedback/:id/respond", h.AdminRespond)
		admin.POST("/feedback/:id/status", h.AdminChangeStatus)
		admin.POST("/feedback/:id/priority", h.AdminChangePriority)
	}
}
