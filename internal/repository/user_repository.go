package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ticketverse/booking/internal/model"
	"github.com/ticketverse/booking/internal/utils"
)

// UserRepo persists user records. Users are created at registration and
// never mutated; login is a read plus a bcrypt compare in the handler.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its generated ID. Registration is
// check-then-insert; the UNIQUE index on email backstops the race between
// the check and the insert. A duplicate email yields ErrEmailExists and
// no second row.
func (r *UserRepo) Create(ctx context.Context, name, email, password string, cost int) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing int
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email=?", email).Scan(&existing); err != nil {
		return "", err
	}
	if existing > 0 {
		return "", ErrEmailExists
	}

	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return "", err
	}
	id, err := utils.NewID("user")
	if err != nil {
		return "", err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, password_hash) VALUES (?,?,?,?)",
		id, name, email, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return "", ErrEmailExists
		}
		return "", err
	}
	return id, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
