package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ticketverse/booking/internal/model"
)

// ErrTheaterNotFound is returned when a theater lookup yields no rows.
var ErrTheaterNotFound = errors.New("theater not found")

// TheaterRepo provides read access to theaters.  Theaters belong to
// exactly one city; the by-city lookup is the only filtered query the
// funnel needs.
type TheaterRepo struct {
	db *sql.DB
}

// NewTheaterRepo constructs a TheaterRepo with the given DB handle.
func NewTheaterRepo(db *sql.DB) *TheaterRepo {
	return &TheaterRepo{db: db}
}

// ListByCity returns all theaters in the given city via the city index.
// An unknown city yields an empty slice, not an error.
func (r *TheaterRepo) ListByCity(ctx context.Context, city string) ([]model.Theater, error) {
	const q = `SELECT id, name, city, address FROM theaters WHERE city = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Theater, 0)
	for rows.Next() {
		var t model.Theater
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.Address); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListCities returns the distinct cities that have at least one theater,
// in seeding order (rowid).  The funnel's first tier is driven by this.
func (r *TheaterRepo) ListCities(ctx context.Context) ([]string, error) {
	const q = `SELECT city FROM theaters GROUP BY city ORDER BY MIN(rowid)`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cities, nil
}

// GetByID retrieves a single theater.
func (r *TheaterRepo) GetByID(ctx context.Context, id string) (*model.Theater, error) {
	const q = `SELECT id, name, city, address FROM theaters WHERE id = ?`
	var t model.Theater
	err := r.db.QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.City, &t.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTheaterNotFound
		}
		return nil, err
	}
	return &t, nil
}

// CreateBulk inserts multiple theaters in a single statement.  Used by the
// seeder only.
func (r *TheaterRepo) CreateBulk(ctx context.Context, tx *sql.Tx, theaters []model.Theater) error {
	if len(theaters) == 0 {
		return nil
	}
	query := `INSERT INTO theaters (id, name, city, address) VALUES `
	args := make([]interface{}, 0, len(theaters)*4)
	for i, t := range theaters {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, t.ID, t.Name, t.City, t.Address)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
