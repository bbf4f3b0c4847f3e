package repository // repository contains data access logic separated from HTTP handlers

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/ticketverse/booking/internal/model"
)

// ErrMovieNotFound is returned when a movie lookup yields no rows.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo provides read access to the movie catalog.  Movies are
// written only by the seeder, so there are no update or delete methods.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// ListAll returns the full movie catalog.  Row order carries no meaning.
func (r *MovieRepo) ListAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, title, poster_url, duration, genre, rating, language FROM movies`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Movie, 0)
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.PosterURL, &m.Duration, &m.Genre, &m.Rating, &m.Language); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a single movie.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `SELECT id, title, poster_url, duration, genre, rating, language FROM movies WHERE id = ?`
	var m model.Movie
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Title, &m.PosterURL, &m.Duration, &m.Genre, &m.Rating, &m.Language)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// CreateBulk inserts multiple movies in a single statement.  Used by the
// seeder only.
func (r *MovieRepo) CreateBulk(ctx context.Context, tx *sql.Tx, movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	query := `INSERT INTO movies (id, title, poster_url, duration, genre, rating, language) VALUES `
	args := make([]interface{}, 0, len(movies)*7)
	for i, m := range movies {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?)"
		args = append(args, m.ID, m.Title, m.PosterURL, m.Duration, m.Genre, m.Rating, m.Language)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// Count returns the number of movie rows.  The seeder uses it to decide
// whether the store has been populated before.
func (r *MovieRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n)
	return n, err
}
