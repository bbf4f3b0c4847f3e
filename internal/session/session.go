// Package session holds the in-progress booking selection for each user.
// The funnel accumulates choices step by step (city, theater, movie,
// showtime, seats); choosing again upstream invalidates everything
// downstream so a stale combination can never survive a change of mind.
// State lives in memory for the lifetime of the process and is owned by
// the Manager, which the application injects into the handlers — there
// are no package-level globals.
package session

import (
	"errors"
	"sync"

	"github.com/ticketverse/booking/internal/model"
)

// ErrIncompleteSelection is returned by Checkout preparation when the
// funnel is missing a city, theater, movie, showtime or any seats.  It is
// caught before any store call.
var ErrIncompleteSelection = errors.New("incomplete booking selection")

// State is one user's booking-in-progress.  All methods are safe for
// concurrent use; rapid double-clicks from the same client arrive as
// concurrent requests.
type State struct {
	mu sync.Mutex

	city     string
	theater  *model.Theater
	movie    *model.Movie
	showTime *model.ShowTime
	seats    []model.Seat
}

// Snapshot is a copy of the funnel state handed out to callers.  The
// total is seat count × showtime price, in cents, and recomputes to zero
// whenever the seat set or showtime is cleared.
type Snapshot struct {
	City       string          `json:"city,omitempty"`
	Theater    *model.Theater  `json:"theater,omitempty"`
	Movie      *model.Movie    `json:"movie,omitempty"`
	ShowTime   *model.ShowTime `json:"showtime,omitempty"`
	Seats      []model.Seat    `json:"seats"`
	TotalCents int64           `json:"total_cents"`
}

// SetCity records the city and clears theater, movie, showtime and seats.
func (s *State) SetCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.city = city
	s.theater = nil
	s.movie = nil
	s.showTime = nil
	s.seats = nil
}

// SetTheater records the theater and clears movie, showtime and seats.
// The city is kept.
func (s *State) SetTheater(t *model.Theater) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theater = t
	s.movie = nil
	s.showTime = nil
	s.seats = nil
}

// SetMovie records the movie and clears showtime and seats.
func (s *State) SetMovie(m *model.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movie = m
	s.showTime = nil
	s.seats = nil
}

// SetShowTime records the showtime and clears previously selected seats.
func (s *State) SetShowTime(st *model.ShowTime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showTime = st
	s.seats = nil
}

// ToggleSeat flips membership of the given seat in the selection and
// reports whether the seat is selected afterwards.  Toggling does not
// change the funnel tier.
func (s *State) ToggleSeat(seat model.Seat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sel := range s.seats {
		if sel.ID == seat.ID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return false
		}
	}
	seat.Status = model.SeatSelected
	s.seats = append(s.seats, seat)
	return true
}

// Reset returns the state to Empty unconditionally.  Used both after a
// successful checkout and on explicit abandonment.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.city = ""
	s.theater = nil
	s.movie = nil
	s.showTime = nil
	s.seats = nil
}

// Snapshot returns a copy of the current selection.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		City:     s.city,
		Theater:  s.theater,
		Movie:    s.movie,
		ShowTime: s.showTime,
		Seats:    append([]model.Seat(nil), s.seats...),
	}
	if snap.Seats == nil {
		snap.Seats = []model.Seat{}
	}
	if s.showTime != nil {
		snap.TotalCents = int64(len(s.seats)) * s.showTime.PriceCents
	}
	return snap
}

// CheckoutOrder validates completeness and returns the selection to be
// persisted.  It does not mutate the state: the caller resets the funnel
// only after the seat-status transaction commits.
func (s *State) CheckoutOrder() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.city == "" || s.theater == nil || s.movie == nil || s.showTime == nil || len(s.seats) == 0 {
		return Snapshot{}, ErrIncompleteSelection
	}
	return s.snapshotLocked(), nil
}

// Manager hands out per-user funnel states.  States are created lazily on
// first use and dropped on Remove (logout) or kept until process exit,
// matching the tab-lifetime scope of the original session.
type Manager struct {
	mu     sync.Mutex
	states map[string]*State
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{states: make(map[string]*State)}
}

// Get returns the state for userID, creating it if needed.
func (m *Manager) Get(userID string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.states[userID]
	if !ok {
		st = &State{}
		m.states[userID] = st
	}
	return st
}

// Remove discards the state for userID.
func (m *Manager) Remove(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
}
