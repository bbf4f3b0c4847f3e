package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/utils"
)

// Low cost keeps bcrypt fast in tests.
const testBcryptCost = 4

func TestCreateUserAndLogin(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)

	uid, err := users.Create(context.Background(), "Ada", "Ada@Example.com ", "secret123", testBcryptCost)
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	// Email is normalized on write, so lookup uses the lower-cased form.
	u, err := users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, uid, u.ID)
	assert.Equal(t, "Ada", u.Name)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "secret123"))
	assert.False(t, utils.VerifyPassword(u.PasswordHash, "wrong"))
}

func TestDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)

	_, err := users.Create(context.Background(), "Ada", "ada@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)

	_, err = users.Create(context.Background(), "Other Ada", "ADA@example.com", "different", testBcryptCost)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetByEmailUnknown(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)

	_, err := users.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
