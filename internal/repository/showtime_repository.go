package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ticketverse/booking/internal/model"
)

// ErrShowTimeNotFound is returned when a showtime lookup yields no rows.
var ErrShowTimeNotFound = errors.New("showtime not found")

// ShowTimeRepo provides read access to screening slots.
type ShowTimeRepo struct {
	db *sql.DB
}

// NewShowTimeRepo constructs a ShowTimeRepo with the given DB handle.
func NewShowTimeRepo(db *sql.DB) *ShowTimeRepo {
	return &ShowTimeRepo{db: db}
}

// ListAll returns every showtime.  Callers apply any further filtering;
// showtimes are not tied to a movie or theater in this domain.
func (r *ShowTimeRepo) ListAll(ctx context.Context) ([]model.ShowTime, error) {
	const q = `SELECT id, show_date, show_time, price_cents FROM showtimes ORDER BY show_date, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.ShowTime, 0)
	for rows.Next() {
		var st model.ShowTime
		if err := rows.Scan(&st.ID, &st.Date, &st.Time, &st.PriceCents); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single showtime.  The funnel uses it to price the
// selected seats.
func (r *ShowTimeRepo) GetByID(ctx context.Context, id string) (*model.ShowTime, error) {
	const q = `SELECT id, show_date, show_time, price_cents FROM showtimes WHERE id = ?`
	var st model.ShowTime
	err := r.db.QueryRowContext(ctx, q, id).Scan(&st.ID, &st.Date, &st.Time, &st.PriceCents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowTimeNotFound
		}
		return nil, err
	}
	return &st, nil
}

// CreateBulk inserts multiple showtimes in a single statement.  Used by
// the seeder only.
func (r *ShowTimeRepo) CreateBulk(ctx context.Context, tx *sql.Tx, showTimes []model.ShowTime) error {
	if len(showTimes) == 0 {
		return nil
	}
	query := `INSERT INTO showtimes (id, show_date, show_time, price_cents) VALUES `
	args := make([]interface{}, 0, len(showTimes)*4)
	for i, st := range showTimes {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, st.ID, st.Date, st.Time, st.PriceCents)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
