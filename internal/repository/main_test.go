package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/database"
	"github.com/ticketverse/booking/internal/model"
)

// newTestDB opens a fresh store in a temp directory with the schema
// applied.  A file-backed store matches production behavior (WAL,
// immediate transactions); :memory: does not survive pooled connections.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// insertSeats writes the given seats in one transaction.
func insertSeats(t *testing.T, db *sql.DB, seats []model.Seat) {
	t.Helper()
	repo := NewSeatRepo(db)
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateBulk(context.Background(), tx, seats))
	require.NoError(t, tx.Commit())
}

// insertCatalog writes a minimal movie/theater/showtime set so bookings
// can reference them (the store enforces foreign keys).
func insertCatalog(t *testing.T, db *sql.DB) {
	t.Helper()
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, NewMovieRepo(db).CreateBulk(context.Background(), tx, []model.Movie{
		{ID: "movie1", Title: "Avengers: Endgame", PosterURL: "p1", Duration: "3h 1m", Genre: "Action", Rating: "PG-13", Language: "English"},
		{ID: "movie2", Title: "Inception", PosterURL: "p2", Duration: "2h 28m", Genre: "Sci-Fi", Rating: "PG-13", Language: "English"},
	}))
	require.NoError(t, NewTheaterRepo(db).CreateBulk(context.Background(), tx, []model.Theater{
		{ID: "ny-theater1", Name: "AMC Empire 25", City: "New York", Address: "234 W 42nd St"},
		{ID: "la-theater1", Name: "TCL Chinese Theatre", City: "Los Angeles", Address: "6925 Hollywood Blvd"},
	}))
	require.NoError(t, NewShowTimeRepo(db).CreateBulk(context.Background(), tx, []model.ShowTime{
		{ID: "st1", Date: "2024-01-15", Time: "10:00 AM", PriceCents: 1050},
		{ID: "st3", Date: "2024-01-15", Time: "7:00 PM", PriceCents: 1250},
	}))
	require.NoError(t, tx.Commit())
}

func availableSeats(ids ...string) []model.Seat {
	seats := make([]model.Seat, len(ids))
	for i, id := range ids {
		seats[i] = model.Seat{ID: id, RowLabel: id[:1], SeatNumber: i + 1, Status: model.SeatAvailable}
	}
	return seats
}
