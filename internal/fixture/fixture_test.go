package fixture

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/model"
)

func TestGenerateSeats(t *testing.T) {
	seats := GenerateSeats()
	require.Len(t, seats, 96)

	seen := make(map[string]bool, len(seats))
	for _, s := range seats {
		assert.False(t, seen[s.ID], "duplicate seat id %s", s.ID)
		seen[s.ID] = true

		assert.Equal(t, fmt.Sprintf("%s%d", s.RowLabel, s.SeatNumber), s.ID)
		assert.GreaterOrEqual(t, s.SeatNumber, 1)
		assert.LessOrEqual(t, s.SeatNumber, 12)
		assert.Contains(t, []model.SeatStatus{model.SeatAvailable, model.SeatBooked}, s.Status,
			"generated seats are never in the selected state")
	}

	// Corner seats of the grid.
	assert.True(t, seen["A1"])
	assert.True(t, seen["H12"])
}

func TestTheatersCoverAllCities(t *testing.T) {
	require.NotEmpty(t, Cities)
	for _, city := range Cities {
		assert.NotEmpty(t, Theaters[city], "city %s has no theaters", city)
		for _, th := range Theaters[city] {
			assert.Equal(t, city, th.City)
		}
	}
	assert.Len(t, AllTheaters(), 12)
}

func TestShowTimePricesAreCents(t *testing.T) {
	require.Len(t, ShowTimes, 8)
	for _, st := range ShowTimes {
		assert.Greater(t, st.PriceCents, int64(0))
	}
}
