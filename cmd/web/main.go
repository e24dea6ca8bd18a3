package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"tourbook/internal/cache"
	"tourbook/internal/catalog"
	"tourbook/internal/config"
	"tourbook/internal/handlers"
	"tourbook/internal/jobs"
	"tourbook/internal/log"
	"tourbook/internal/middleware"
	"tourbook/internal/repository"
	"tourbook/internal/security"
	"tourbook/internal/server"
	"tourbook/internal/service"
	"tourbook/internal/ticketing"
	"tourbook/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, cfg.LogLevel)

	ctx := context.Background()
	clock := service.SystemClock(cfg.Location())
	hasher := security.NewPasswordHasher(security.DefaultArgon2Params)

	admin, err := service.NewAdminAccount(hasher, cfg.Admin.Email, cfg.Admin.Password, clock)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed admin account")
	}
	users := repository.NewUserRepository(admin)
	bookings := repository.NewBookingRepository()
	feedback := repository.NewFeedbackRepository()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}
	var sessionStore repository.SessionStore
	if redisClient != nil {
		sessionStore = repository.NewRedisSessionStore(redisClient)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	} else {
		sessionStore = repository.NewMemorySessionStore(clock.Now)
	}

	events := ticketing.NewClient(cfg.Events, logger)
	tours := catalog.New(events, catalog.Options{
		LeadDays: cfg.Events.LeadDays,
		Now:      clock.Now,
	}, logger)
	loaded := tours.Refresh(ctx, cfg.Events.DefaultCity, "")
	logger.Info().Int("event_tours", loaded).Msg("catalog loaded")

	auth := service.NewAuthService(users, hasher, clock, logger)
	bookingService := service.NewBookingService(tours, bookings, clock, logger)
	feedbackService := service.NewFeedbackService(feedback, clock, logger)
	adminService := service.NewAdminService(tours, bookings, users, feedback, logger)

	handlerSet := handlers.NewHandlerSet(handlers.Dependencies{
		Config:   cfg,
		Log:      logger,
		Catalog:  tours,
		Weather:  weather.NewClient(cfg.Weather, logger),
		Auth:     auth,
		Bookings: bookingService,
		Feedback: feedbackService,
		Admin:    adminService,
		Sessions: sessionStore,
		Clock:    clock,
	})
	sessions := middleware.NewSessionManager(sessionStore, cfg.Session, clock.Now)
	httpServer := server.NewHTTPServer(cfg, logger, sessions, handlerSet)

	scheduler := jobs.NewScheduler(tours, cfg.Events.RefreshCron, cfg.Events.DefaultCity, "", logger)
	if err := scheduler.Start(); err != nil {
		logger.Error().Err(err).Msg("scheduler start failed")
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, scheduler, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, scheduler *jobs.Scheduler, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	scheduler.Stop(5 * time.Second)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error().Err(err).Msg("redis close error")
		}
	}

	logger.Info().Msg("server exited cleanly")
}
