package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ticketverse/booking/internal/repository"
)

// BrowseHandler serves the read-only catalog: cities, movies, theaters,
// showtimes and the seat map.  All endpoints are public and cacheable.
type BrowseHandler struct {
	Movies    *repository.MovieRepo
	Theaters  *repository.TheaterRepo
	ShowTimes *repository.ShowTimeRepo
	Seats     *repository.SeatRepo
}

func NewBrowseHandler(m *repository.MovieRepo, t *repository.TheaterRepo, st *repository.ShowTimeRepo, s *repository.SeatRepo) *BrowseHandler {
	return &BrowseHandler{Movies: m, Theaters: t, ShowTimes: st, Seats: s}
}

// Cities lists the supported cities.
func (h *BrowseHandler) Cities(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	cities, err := h.Theaters.ListCities(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"cities": cities})
}

// ListMovies returns the full movie catalog.
func (h *BrowseHandler) ListMovies(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// ListTheaters returns the theaters of one city.  The city query parameter
// is required; an unknown city yields an empty list.
func (h *BrowseHandler) ListTheaters(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city query param required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	theaters, err := h.Theaters.ListByCity(ctx, city)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"theaters": theaters})
}

// ListShowTimes returns every showtime slot.  Slots are shared across
// theaters and movies, so no filter applies.
func (h *BrowseHandler) ListShowTimes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	showtimes, err := h.ShowTimes.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"showtimes": showtimes})
}

// ListSeats returns the seat map with current availability, ordered by
// row then seat number so the client can render the grid directly.
func (h *BrowseHandler) ListSeats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	seats, err := h.Seats.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": seats})
}
