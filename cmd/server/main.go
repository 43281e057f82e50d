package main // Entry point package

import (
	"context"
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/rs/zerolog/log"   // structured logging

	"github.com/helenus/hotel-api/internal/config"     // environment configuration
	"github.com/helenus/hotel-api/internal/database"   // MySQL connection pool
	"github.com/helenus/hotel-api/internal/handler"    // HTTP handlers
	"github.com/helenus/hotel-api/internal/logger"     // zerolog setup
	"github.com/helenus/hotel-api/internal/mail"       // SMTP mailer
	"github.com/helenus/hotel-api/internal/middleware" // cache and rate limiting
	"github.com/helenus/hotel-api/internal/queue"      // booking event consumer
	"github.com/helenus/hotel-api/internal/repository" // data access layer
	"github.com/helenus/hotel-api/internal/router"     // route registration
	"github.com/helenus/hotel-api/internal/service"    // orchestration layer
	"github.com/helenus/hotel-api/internal/storage"    // S3 object store
	"github.com/helenus/hotel-api/internal/utils"      // password hashing
)

func main() {
	_ = godotenv.Load() // .env is optional outside local development

	cfg := config.Load()
	logger.Init(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	store, err := storage.NewS3Store(context.Background(),
		cfg.AWSRegion, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSBucket,
		time.Duration(cfg.PresignTTLMin)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("object store init failed")
	}

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.StaffEmail)

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewVerificationTokenRepo(db)
	refresh := repository.NewRefreshTokenRepo(db)
	rooms := repository.NewRoomRepo(db)
	reviews := repository.NewReviewRepo(db)
	bookings := repository.NewBookingRepo(db)
	gallery := repository.NewGalleryRepo(db)

	// Services.
	accounts := service.NewAccountService(users, tokens, mailer, cfg.BcryptCost)
	catalog := service.NewCatalogService(rooms, store)
	reviewSvc := service.NewReviewService(rooms, reviews, users)
	bookingSvc := service.NewBookingService(users, rooms, bookings, mailer)
	gallerySvc := service.NewGalleryService(gallery, store)

	// Seed the administrator account so the admin surface is reachable on a
	// fresh database.
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("admin password hash failed")
	}
	if err := users.EnsureAdmin(seedCtx, cfg.AdminEmail, hash); err != nil {
		log.Error().Err(err).Msg("admin seed failed")
	}
	cancel()

	// Booking audit trail consumer.  Runs for the lifetime of the process
	// and reconnects on broker failures.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Error().Err(err).Msg("booking consumer stopped")
		}
	}()

	// Redis-backed middleware.  Both degrade to pass-through when Redis is
	// unreachable or disabled.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterUser(e, router.UserDeps{
		Auth:      handler.NewAuthHandler(cfg, accounts, refresh, mailer),
		Rooms:     handler.NewRoomHandler(catalog),
		Reviews:   handler.NewReviewHandler(reviewSvc),
		Bookings:  handler.NewBookingHandler(bookingSvc),
		Gallery:   handler.NewGalleryHandler(gallerySvc),
		JWTSecret: cfg.JWTSecret,
		Cache:     cacheMW,
		RateLimit: rateMW,
	})
	router.RegisterAdmin(e, router.AdminDeps{
		Rooms:     handler.NewAdminRoomHandler(catalog),
		Gallery:   handler.NewAdminGalleryHandler(gallerySvc),
		Reviews:   handler.NewReviewHandler(reviewSvc),
		JWTSecret: cfg.JWTSecret,
	})

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
