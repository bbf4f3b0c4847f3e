package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketverse/booking/internal/utils"
)

func TestRefreshTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	tokens := NewTokenRepo(db)

	uid, err := users.Create(context.Background(), "Ada", "ada@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)

	ref, err := utils.NewRefreshToken(7)
	require.NoError(t, err)
	hash := utils.HashRefreshRaw(ref.Raw)
	require.NoError(t, tokens.StoreRefresh(context.Background(), uid, hash, ref.Exp))

	got, err := tokens.ValidateRefresh(context.Background(), hash)
	require.NoError(t, err)
	assert.Equal(t, uid, got)

	require.NoError(t, tokens.RevokeByHash(context.Background(), hash))
	_, err = tokens.ValidateRefresh(context.Background(), hash)
	assert.Error(t, err, "revoked token no longer validates")
}

func TestValidateRefreshExpired(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	tokens := NewTokenRepo(db)

	uid, err := users.Create(context.Background(), "Ada", "ada@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)

	hash := utils.HashRefreshRaw("expired-token")
	require.NoError(t, tokens.StoreRefresh(context.Background(), uid, hash, time.Now().Add(-time.Hour)))

	_, err = tokens.ValidateRefresh(context.Background(), hash)
	assert.Error(t, err)
}

func TestRevokeAllForUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	tokens := NewTokenRepo(db)

	uid, err := users.Create(context.Background(), "Ada", "ada@example.com", "secret123", testBcryptCost)
	require.NoError(t, err)

	h1 := utils.HashRefreshRaw("tok-one")
	h2 := utils.HashRefreshRaw("tok-two")
	exp := time.Now().Add(24 * time.Hour)
	require.NoError(t, tokens.StoreRefresh(context.Background(), uid, h1, exp))
	require.NoError(t, tokens.StoreRefresh(context.Background(), uid, h2, exp))

	require.NoError(t, tokens.RevokeAllForUser(context.Background(), uid))

	_, err = tokens.ValidateRefresh(context.Background(), h1)
	assert.Error(t, err)
	_, err = tokens.ValidateRefresh(context.Background(), h2)
	assert.Error(t, err)
}
