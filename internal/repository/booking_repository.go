package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ticketverse/booking/internal/model"
)

// ErrBookingNotFound is returned when a booking lookup yields no rows.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo provides CRUD operations for confirmed bookings and their
// seats.  A booking groups the seats of one checkout under a generated
// reference; the seats live in the booking_seats join table.  Writes
// happen only inside the checkout transaction, alongside the seat-status
// update, so a booking row never exists without its seats being booked.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateTx inserts a booking and its seat rows within the scope of an
// existing transaction.  The caller must commit or roll back.  The
// booking's CreatedAt is populated from the inserted row.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings (reference, user_id, movie_id, theater_id, showtime_id, total_cents)
	           VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, b.Reference, b.UserID, b.MovieID, b.TheaterID, b.ShowTimeID, b.TotalCents); err != nil {
		return err
	}
	if len(b.SeatIDs) > 0 {
		query := `INSERT INTO booking_seats (booking_ref, seat_id) VALUES `
		args := make([]interface{}, 0, len(b.SeatIDs)*2)
		for i, sid := range b.SeatIDs {
			if i > 0 {
				query += ","
			}
			query += "(?, ?)"
			args = append(args, b.Reference, sid)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	// Query back the timestamp to return a fully populated record.
	const sel = `SELECT created_at FROM bookings WHERE reference = ?`
	return tx.QueryRowContext(ctx, sel, b.Reference).Scan(&b.CreatedAt)
}

// ListByUser returns all bookings for the given user, newest first, each
// with its seat ids attached.  When no bookings exist, an empty slice is
// returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	const q = `SELECT reference, user_id, movie_id, theater_id, showtime_id, total_cents, created_at
	           FROM bookings
	           WHERE user_id = ?
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	index := make(map[string]int)
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.Reference, &b.UserID, &b.MovieID, &b.TheaterID, &b.ShowTimeID, &b.TotalCents, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.SeatIDs = []string{}
		index[b.Reference] = len(bookings)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return bookings, nil
	}
	// Populate seats for all bookings in a single query.
	refs := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		refs = append(refs, b.Reference)
	}
	seatQuery := `SELECT bs.booking_ref, bs.seat_id
	              FROM booking_seats bs
	              JOIN seats se ON se.id = bs.seat_id
	              WHERE bs.booking_ref IN (` + placeholders(len(refs)) + `)
	              ORDER BY bs.booking_ref, se.row_label, se.seat_number`
	srows, err := r.db.QueryContext(ctx, seatQuery, refs...)
	if err != nil {
		return nil, err
	}
	defer srows.Close()
	for srows.Next() {
		var ref, sid string
		if err := srows.Scan(&ref, &sid); err != nil {
			return nil, err
		}
		idx, ok := index[ref]
		if !ok {
			continue
		}
		bookings[idx].SeatIDs = append(bookings[idx].SeatIDs, sid)
	}
	if err := srows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetByReference returns a single booking for the given user.  When no
// booking with the reference exists for the user, ErrBookingNotFound is
// returned.
func (r *BookingRepo) GetByReference(ctx context.Context, reference, userID string) (*model.Booking, error) {
	const q = `SELECT reference, user_id, movie_id, theater_id, showtime_id, total_cents, created_at
	           FROM bookings
	           WHERE reference = ? AND user_id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, reference, userID).
		Scan(&b.Reference, &b.UserID, &b.MovieID, &b.TheaterID, &b.ShowTimeID, &b.TotalCents, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	b.SeatIDs = []string{}
	const seatQ = `SELECT bs.seat_id
	               FROM booking_seats bs
	               JOIN seats se ON se.id = bs.seat_id
	               WHERE bs.booking_ref = ?
	               ORDER BY se.row_label, se.seat_number`
	rows, err := r.db.QueryContext(ctx, seatQ, b.Reference)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sid string
		if err := rows.Scan(&sid); err != nil {
			return nil, err
		}
		b.SeatIDs = append(b.SeatIDs, sid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}
