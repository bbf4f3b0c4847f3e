package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ticketverse/booking/internal/config"
	"github.com/ticketverse/booking/internal/database"
	"github.com/ticketverse/booking/internal/handler"
	"github.com/ticketverse/booking/internal/mailer"
	"github.com/ticketverse/booking/internal/middleware"
	"github.com/ticketverse/booking/internal/queue"
	"github.com/ticketverse/booking/internal/repository"
	"github.com/ticketverse/booking/internal/router"
	"github.com/ticketverse/booking/internal/session"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	movies := repository.NewMovieRepo(db)
	theaters := repository.NewTheaterRepo(db)
	showtimes := repository.NewShowTimeRepo(db)
	seats := repository.NewSeatRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	bookings := repository.NewBookingRepo(db)

	// An empty store is unusable; refuse to start if seeding fails.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repository.NewSeeder(db, movies, theaters, showtimes, seats).Seed(ctx); err != nil {
		cancel()
		log.Fatalf("seed store: %v", err)
	}
	cancel()

	sessions := session.NewManager()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	authH := handler.NewAuthHandler(cfg, users, tokens, sessions)
	browseH := handler.NewBrowseHandler(movies, theaters, showtimes, seats)
	bookingH := handler.NewBookingHandler(sessions, users, theaters, movies, showtimes, seats, bookings)

	router.RegisterRoutes(e, db)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBrowse(e, browseH, config.LoadCacheConfig(), rdb)
	router.RegisterBooking(e, bookingH, cfg.JWTSecret)

	// Consume confirmation events in the background; the loop reconnects
	// on broker failures and never stops the server.
	m := mailer.NewFromEnv(cfg.MailLatency)
	go func() {
		if err := queue.StartBookingConsumer(m); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
