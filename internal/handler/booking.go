package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ticketverse/booking/internal/model"
	"github.com/ticketverse/booking/internal/queue"
	"github.com/ticketverse/booking/internal/repository"
	queue_publisher "github.com/ticketverse/booking/internal/service"
	"github.com/ticketverse/booking/internal/session"
	"github.com/ticketverse/booking/internal/utils"
)

// BookingHandler drives the booking funnel: tier selection, seat
// toggling and checkout.  All routes are protected; the funnel state is
// held per user by the session manager, while seat availability and
// confirmed bookings live in the store.
type BookingHandler struct {
	Sessions  *session.Manager
	Users     *repository.UserRepo
	Theaters  *repository.TheaterRepo
	Movies    *repository.MovieRepo
	ShowTimes *repository.ShowTimeRepo
	Seats     *repository.SeatRepo
	Bookings  *repository.BookingRepo
}

func NewBookingHandler(s *session.Manager, u *repository.UserRepo, t *repository.TheaterRepo, m *repository.MovieRepo, st *repository.ShowTimeRepo, seats *repository.SeatRepo, b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Sessions: s, Users: u, Theaters: t, Movies: m, ShowTimes: st, Seats: seats, Bookings: b}
}

// ----- DTOs -----

type selectCityReq struct {
	City string `json:"city"`
}
type selectTheaterReq struct {
	TheaterID string `json:"theater_id"`
}
type selectMovieReq struct {
	MovieID string `json:"movie_id"`
}
type selectShowTimeReq struct {
	ShowTimeID string `json:"showtime_id"`
}
type toggleSeatReq struct {
	SeatID string `json:"seat_id"`
}

func (h *BookingHandler) state(c echo.Context) (*session.State, string) {
	uid, _ := c.Get("user_id").(string)
	return h.Sessions.Get(uid), uid
}

// SelectCity sets the funnel's first tier.  Everything downstream is
// cleared even when the same city is chosen again.
func (h *BookingHandler) SelectCity(c echo.Context) error {
	var req selectCityReq
	if err := c.Bind(&req); err != nil || req.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	theaters, err := h.Theaters.ListByCity(ctx, req.City)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(theaters) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown city"})
	}

	st, _ := h.state(c)
	st.SetCity(req.City)
	return c.JSON(http.StatusOK, st.Snapshot())
}

// SelectTheater sets the theater tier.  The theater must exist and belong
// to the previously selected city.
func (h *BookingHandler) SelectTheater(c echo.Context) error {
	var req selectTheaterReq
	if err := c.Bind(&req); err != nil || req.TheaterID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theater_id required"})
	}

	st, _ := h.state(c)
	snap := st.Snapshot()
	if snap.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select a city first"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	theater, err := h.Theaters.GetByID(ctx, req.TheaterID)
	if err != nil {
		if errors.Is(err, repository.ErrTheaterNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if theater.City != snap.City {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "theater is not in the selected city"})
	}

	st.SetTheater(theater)
	return c.JSON(http.StatusOK, st.Snapshot())
}

// SelectMovie sets the movie tier.
func (h *BookingHandler) SelectMovie(c echo.Context) error {
	var req selectMovieReq
	if err := c.Bind(&req); err != nil || req.MovieID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id required"})
	}

	st, _ := h.state(c)
	if st.Snapshot().Theater == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select a theater first"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movie, err := h.Movies.GetByID(ctx, req.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	st.SetMovie(movie)
	return c.JSON(http.StatusOK, st.Snapshot())
}

// SelectShowTime sets the showtime tier and clears any seats picked for a
// previous slot.
func (h *BookingHandler) SelectShowTime(c echo.Context) error {
	var req selectShowTimeReq
	if err := c.Bind(&req); err != nil || req.ShowTimeID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime_id required"})
	}

	st, _ := h.state(c)
	if st.Snapshot().Movie == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select a movie first"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	showtime, err := h.ShowTimes.GetByID(ctx, req.ShowTimeID)
	if err != nil {
		if errors.Is(err, repository.ErrShowTimeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	st.SetShowTime(showtime)
	return c.JSON(http.StatusOK, st.Snapshot())
}

// ToggleSeat flips a seat in and out of the selection.  Booked seats
// cannot be selected; removing an already selected one always works.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	var req toggleSeatReq
	if err := c.Bind(&req); err != nil || req.SeatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id required"})
	}

	st, _ := h.state(c)
	snap := st.Snapshot()
	if snap.ShowTime == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "select a showtime first"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	seat, err := h.Seats.GetByID(ctx, req.SeatID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if seat.Status == model.SeatBooked {
		alreadySelected := false
		for _, sel := range snap.Seats {
			if sel.ID == seat.ID {
				alreadySelected = true
				break
			}
		}
		// Allow deselecting a seat that got booked from under the user.
		if !alreadySelected {
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already booked"})
		}
	}

	st.ToggleSeat(*seat)
	return c.JSON(http.StatusOK, st.Snapshot())
}

// Get returns the current funnel state with the running total.
func (h *BookingHandler) Get(c echo.Context) error {
	st, _ := h.state(c)
	return c.JSON(http.StatusOK, st.Snapshot())
}

// Reset abandons the booking in progress.  Nothing in the store changes.
func (h *BookingHandler) Reset(c echo.Context) error {
	st, _ := h.state(c)
	st.Reset()
	return c.NoContent(http.StatusNoContent)
}

// Checkout validates the funnel, books the selected seats and persists
// the booking in one transaction.  When any selected seat was booked by
// someone else in the meantime, the whole attempt fails with 409 and the
// response lists the lost seats; the funnel keeps its state so the user
// can adjust.  On success the funnel resets and a confirmation event is
// published.
func (h *BookingHandler) Checkout(c echo.Context) error {
	st, uid := h.state(c)

	order, err := st.CheckoutOrder()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "selection incomplete"})
	}

	seatIDs := make([]string, len(order.Seats))
	for i, s := range order.Seats {
		seatIDs[i] = s.ID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	// Seat booking and booking record commit together; the repo mutex
	// serializes concurrent checkouts in-process.
	h.Seats.Lock()
	defer h.Seats.Unlock()

	tx, err := h.Seats.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	available, err := h.Seats.FilterAvailableTx(ctx, tx, seatIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(available) != len(seatIDs) {
		availSet := make(map[string]struct{}, len(available))
		for _, id := range available {
			availSet[id] = struct{}{}
		}
		lost := make([]string, 0, len(seatIDs)-len(available))
		for _, id := range seatIDs {
			if _, ok := availSet[id]; !ok {
				lost = append(lost, id)
			}
		}
		return c.JSON(http.StatusConflict, echo.Map{
			"error":       "seats no longer available",
			"unavailable": lost,
		})
	}

	if err := h.Seats.BulkUpdateStatusTx(ctx, tx, seatIDs, model.SeatBooked); err != nil {
		if errors.Is(err, repository.ErrSeatConflict) || errors.Is(err, repository.ErrSeatNotFound) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "seats no longer available"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "book seats failed"})
	}

	reference, err := utils.NewBookingReference()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue reference failed"})
	}
	booking := &model.Booking{
		Reference:  reference,
		UserID:     uid,
		MovieID:    order.Movie.ID,
		TheaterID:  order.Theater.ID,
		ShowTimeID: order.ShowTime.ID,
		SeatIDs:    seatIDs,
		TotalCents: order.TotalCents,
	}
	if err := h.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save booking failed"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	st.Reset()
	h.publishConfirmed(uid, order, booking)

	return c.JSON(http.StatusCreated, booking)
}

// publishConfirmed fires the booking.confirmed event in the background.
// The booking is already committed; a publish failure only costs the
// email and the broker log line.
func (h *BookingHandler) publishConfirmed(uid string, order session.Snapshot, booking *model.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	u, err := h.Users.GetByID(ctx, uid)
	cancel()
	if err != nil {
		log.Printf("booking: load user for event failed: %v", err)
		u = model.User{ID: uid}
	}

	ev := queue.BookingConfirmedEvent{
		Reference:   booking.Reference,
		UserID:      uid,
		UserName:    u.Name,
		UserEmail:   u.Email,
		City:        order.City,
		TheaterID:   order.Theater.ID,
		TheaterName: order.Theater.Name,
		MovieID:     order.Movie.ID,
		MovieTitle:  order.Movie.Title,
		ShowTimeID:  order.ShowTime.ID,
		ShowDate:    order.ShowTime.Date,
		ShowTime:    order.ShowTime.Time,
		SeatIDs:     booking.SeatIDs,
		TotalCents:  booking.TotalCents,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingConfirmed(ctx, ev)
	}()
}

// History lists the authenticated user's confirmed bookings, newest
// first.
func (h *BookingHandler) History(c echo.Context) error {
	_, uid := h.state(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}

// GetBooking returns one booking by reference.  References are scoped to
// their owner; another user's reference reads as not found.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	_, uid := h.state(c)
	reference := c.Param("reference")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByReference(ctx, reference, uid)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, b)
}
