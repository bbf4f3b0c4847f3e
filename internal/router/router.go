// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ticketverse/booking/internal/config"
	"github.com/ticketverse/booking/internal/handler"
	"github.com/ticketverse/booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check used by monitoring.
func RegisterRoutes(e *echo.Echo, db *sql.DB) {
	e.GET("/healthz", handler.Health(db))
}

// RegisterAuth registers the auth endpoints.  Register, login and refresh
// live under /v1/auth and need no token; /v1/me and /v1/auth/logout
// require a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout, middleware.JWTAuth(jwtSecret))

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterBrowse registers the public catalog endpoints.  The Redis
// response cache applies here when configured; the catalog never changes
// after seeding and the seat map tolerates a few seconds of staleness.
func RegisterBrowse(e *echo.Echo, b *handler.BrowseHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	g.Use(middleware.NewRedisCache(cacheCfg, rdb))
	g.GET("/cities", b.Cities)
	g.GET("/movies", b.ListMovies)
	g.GET("/theaters", b.ListTheaters)
	g.GET("/showtimes", b.ListShowTimes)
	g.GET("/seats", b.ListSeats)
}

// RegisterBooking registers the funnel and checkout endpoints.  All of
// them require a valid access token; the funnel state is per user.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.PUT("/booking/city", h.SelectCity)
	g.PUT("/booking/theater", h.SelectTheater)
	g.PUT("/booking/movie", h.SelectMovie)
	g.PUT("/booking/showtime", h.SelectShowTime)
	g.POST("/booking/seats/toggle", h.ToggleSeat)
	g.GET("/booking", h.Get)
	g.DELETE("/booking", h.Reset)
	g.POST("/booking/checkout", h.Checkout)
	g.GET("/bookings", h.History)
	g.GET("/bookings/:reference", h.GetBooking)
}
