package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	db := newTestDB(t)
	movies := NewMovieRepo(db)
	theaters := NewTheaterRepo(db)
	showtimes := NewShowTimeRepo(db)
	seats := NewSeatRepo(db)

	seeder := NewSeeder(db, movies, theaters, showtimes, seats)
	require.NoError(t, seeder.Seed(context.Background()))

	ctx := context.Background()

	all, err := movies.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	cities, err := theaters.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, 5)

	slots, err := showtimes.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, slots, 8)

	grid, err := seats.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, grid, 96)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	movies := NewMovieRepo(db)
	seeder := NewSeeder(db, movies, NewTheaterRepo(db), NewShowTimeRepo(db), NewSeatRepo(db))

	require.NoError(t, seeder.Seed(context.Background()))
	require.NoError(t, seeder.Seed(context.Background()))

	count, err := movies.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestTheaterCityFilter(t *testing.T) {
	db := newTestDB(t)
	theaters := NewTheaterRepo(db)
	seeder := NewSeeder(db, NewMovieRepo(db), theaters, NewShowTimeRepo(db), NewSeatRepo(db))
	require.NoError(t, seeder.Seed(context.Background()))

	ny, err := theaters.ListByCity(context.Background(), "New York")
	require.NoError(t, err)
	require.NotEmpty(t, ny)
	for _, th := range ny {
		assert.Equal(t, "New York", th.City)
	}

	nowhere, err := theaters.ListByCity(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, nowhere)
}
