package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/model"
	"github.com/ticketverse/booking/internal/utils"
)

func TestCreateAndListBookings(t *testing.T) {
	db := newTestDB(t)
	insertCatalog(t, db)
	insertSeats(t, db, availableSeats("A1", "A2"))
	bookings := NewBookingRepo(db)
	users := NewUserRepo(db)

	uid, err := users.Create(context.Background(), "Ada", "ada@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)

	ref, err := utils.NewBookingReference()
	require.NoError(t, err)
	b := &model.Booking{
		Reference:  ref,
		UserID:     uid,
		MovieID:    "movie1",
		TheaterID:  "ny-theater1",
		ShowTimeID: "st3",
		SeatIDs:    []string{"A1", "A2"},
		TotalCents: 2500,
	}

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, bookings.CreateTx(context.Background(), tx, b))
	require.NoError(t, tx.Commit())
	assert.False(t, b.CreatedAt.IsZero(), "CreateTx fills the confirmation timestamp")

	list, err := bookings.ListByUser(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.Reference, list[0].Reference)
	assert.Equal(t, []string{"A1", "A2"}, list[0].SeatIDs)
	assert.Equal(t, int64(2500), list[0].TotalCents)

	// Another user sees nothing.
	other, err := users.Create(context.Background(), "Bob", "bob@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)
	empty, err := bookings.ListByUser(context.Background(), other)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetByReferenceScopedToUser(t *testing.T) {
	db := newTestDB(t)
	insertCatalog(t, db)
	insertSeats(t, db, availableSeats("B1"))
	bookings := NewBookingRepo(db)
	users := NewUserRepo(db)

	uid, err := users.Create(context.Background(), "Ada", "ada@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)

	ref, err := utils.NewBookingReference()
	require.NoError(t, err)
	b := &model.Booking{
		Reference:  ref,
		UserID:     uid,
		MovieID:    "movie2",
		TheaterID:  "la-theater1",
		ShowTimeID: "st1",
		SeatIDs:    []string{"B1"},
		TotalCents: 1050,
	}
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, bookings.CreateTx(context.Background(), tx, b))
	require.NoError(t, tx.Commit())

	got, err := bookings.GetByReference(context.Background(), b.Reference, uid)
	require.NoError(t, err)
	assert.Equal(t, b.Reference, got.Reference)

	_, err = bookings.GetByReference(context.Background(), b.Reference, "user-someoneelse")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingReferenceFormat(t *testing.T) {
	ref, err := utils.NewBookingReference()
	require.NoError(t, err)
	assert.Regexp(t, `^BK-[0-9A-Z]+-[0-9A-Z]{6}$`, ref)

	other, err := utils.NewBookingReference()
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
}
