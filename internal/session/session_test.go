package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/model"
)

var (
	testTheater  = &model.Theater{ID: "ny-theater1", Name: "AMC Empire 25", City: "New York"}
	testMovie    = &model.Movie{ID: "movie1", Title: "Avengers: Endgame"}
	testShowTime = &model.ShowTime{ID: "st3", Date: "2024-01-15", Time: "7:00 PM", PriceCents: 1250}
)

func seat(id string) model.Seat {
	return model.Seat{ID: id, Status: model.SeatAvailable}
}

func fullFunnel() *State {
	st := &State{}
	st.SetCity("New York")
	st.SetTheater(testTheater)
	st.SetMovie(testMovie)
	st.SetShowTime(testShowTime)
	return st
}

func TestRunningTotal(t *testing.T) {
	st := fullFunnel()
	st.ToggleSeat(seat("A1"))
	st.ToggleSeat(seat("A2"))
	st.ToggleSeat(seat("A3"))

	snap := st.Snapshot()
	require.Len(t, snap.Seats, 3)
	// 3 seats at $12.50 each is exactly $37.50.
	assert.Equal(t, int64(3750), snap.TotalCents)

	st.ToggleSeat(seat("A2"))
	snap = st.Snapshot()
	require.Len(t, snap.Seats, 2)
	assert.Equal(t, int64(2500), snap.TotalCents)
}

func TestToggleReportsMembership(t *testing.T) {
	st := fullFunnel()
	assert.True(t, st.ToggleSeat(seat("B5")))
	assert.False(t, st.ToggleSeat(seat("B5")))
	assert.Empty(t, st.Snapshot().Seats)
}

func TestDownstreamInvalidation(t *testing.T) {
	t.Run("city clears everything below", func(t *testing.T) {
		st := fullFunnel()
		st.ToggleSeat(seat("A1"))

		st.SetCity("Chicago")
		snap := st.Snapshot()
		assert.Equal(t, "Chicago", snap.City)
		assert.Nil(t, snap.Theater)
		assert.Nil(t, snap.Movie)
		assert.Nil(t, snap.ShowTime)
		assert.Empty(t, snap.Seats)
		assert.Zero(t, snap.TotalCents)
	})

	t.Run("reselecting the same city still clears", func(t *testing.T) {
		st := fullFunnel()
		st.ToggleSeat(seat("A1"))

		st.SetCity("New York")
		snap := st.Snapshot()
		assert.Nil(t, snap.Theater)
		assert.Empty(t, snap.Seats)
	})

	t.Run("theater keeps city", func(t *testing.T) {
		st := fullFunnel()
		st.ToggleSeat(seat("A1"))

		st.SetTheater(&model.Theater{ID: "ny-theater2", City: "New York"})
		snap := st.Snapshot()
		assert.Equal(t, "New York", snap.City)
		assert.NotNil(t, snap.Theater)
		assert.Nil(t, snap.Movie)
		assert.Nil(t, snap.ShowTime)
		assert.Empty(t, snap.Seats)
	})

	t.Run("showtime clears only seats", func(t *testing.T) {
		st := fullFunnel()
		st.ToggleSeat(seat("A1"))

		st.SetShowTime(&model.ShowTime{ID: "st4", PriceCents: 1400})
		snap := st.Snapshot()
		assert.Equal(t, testMovie, snap.Movie)
		assert.Empty(t, snap.Seats)
		assert.Zero(t, snap.TotalCents)
	})
}

func TestCheckoutOrder(t *testing.T) {
	st := &State{}
	_, err := st.CheckoutOrder()
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	st = fullFunnel()
	_, err = st.CheckoutOrder()
	assert.ErrorIs(t, err, ErrIncompleteSelection, "no seats selected")

	st.ToggleSeat(seat("C7"))
	order, err := st.CheckoutOrder()
	require.NoError(t, err)
	assert.Equal(t, int64(1250), order.TotalCents)

	// CheckoutOrder does not consume the selection.
	assert.Len(t, st.Snapshot().Seats, 1)
}

func TestReset(t *testing.T) {
	st := fullFunnel()
	st.ToggleSeat(seat("A1"))
	st.Reset()

	snap := st.Snapshot()
	assert.Empty(t, snap.City)
	assert.Nil(t, snap.Theater)
	assert.Empty(t, snap.Seats)
	assert.Zero(t, snap.TotalCents)
}

func TestManagerIsolatesUsers(t *testing.T) {
	m := NewManager()
	a := m.Get("user-a")
	b := m.Get("user-b")
	require.NotSame(t, a, b)

	a.SetCity("Houston")
	assert.Empty(t, b.Snapshot().City)
	assert.Same(t, a, m.Get("user-a"))

	m.Remove("user-a")
	assert.Empty(t, m.Get("user-a").Snapshot().City)
}
