package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version.  There is no migration
// path; an unknown version is treated as a foreign database file.
const schemaVersion = 1

// ddl creates the five catalog collections plus bookings and refresh tokens.
// IDs are application-assigned strings ("movie1", "ny-theater1", "A1").
// Secondary indexes mirror the query patterns: theaters by city, seats by
// status, users by email.
const ddl = `
CREATE TABLE IF NOT EXISTS movies (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    poster_url   TEXT NOT NULL,
    duration     TEXT NOT NULL,
    genre        TEXT NOT NULL,
    rating       TEXT NOT NULL,
    language     TEXT NOT NULL DEFAULT 'English'
);

CREATE TABLE IF NOT EXISTS theaters (
    id       TEXT PRIMARY KEY,
    name     TEXT NOT NULL,
    city     TEXT NOT NULL,
    address  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_theaters_city ON theaters (city);

CREATE TABLE IF NOT EXISTS showtimes (
    id          TEXT PRIMARY KEY,
    show_date   TEXT NOT NULL,
    show_time   TEXT NOT NULL,
    price_cents INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS seats (
    id          TEXT PRIMARY KEY,
    row_label   TEXT NOT NULL,
    seat_number INTEGER NOT NULL,
    status      TEXT NOT NULL DEFAULT 'available',
    updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (row_label, seat_number)
);
CREATE INDEX IF NOT EXISTS idx_seats_status ON seats (status);

CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bookings (
    reference    TEXT PRIMARY KEY,
    user_id      TEXT NOT NULL REFERENCES users (id),
    movie_id     TEXT NOT NULL REFERENCES movies (id),
    theater_id   TEXT NOT NULL REFERENCES theaters (id),
    showtime_id  TEXT NOT NULL REFERENCES showtimes (id),
    total_cents  INTEGER NOT NULL,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id);

CREATE TABLE IF NOT EXISTS booking_seats (
    booking_ref TEXT NOT NULL REFERENCES bookings (reference) ON DELETE CASCADE,
    seat_id     TEXT NOT NULL REFERENCES seats (id),
    PRIMARY KEY (booking_ref, seat_id)
);

CREATE TABLE IF NOT EXISTS refresh_tokens (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    TEXT NOT NULL REFERENCES users (id),
    token_hash TEXT NOT NULL UNIQUE,
    expires_at TIMESTAMP NOT NULL,
    revoked_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// applySchema creates the tables on a fresh database and stamps the schema
// version.  A database stamped with a different version is rejected rather
// than migrated.
func applySchema(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	switch version {
	case 0:
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
		return err
	case schemaVersion:
		return nil
	default:
		return fmt.Errorf("unsupported schema version %d (want %d)", version, schemaVersion)
	}
}
