package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordClampsCost(t *testing.T) {
	hash, err := HashPassword("tickets4me", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, bcrypt.DefaultCost, cost)

	require.True(t, VerifyPassword(hash, "tickets4me"))
	require.False(t, VerifyPassword(hash, "tickets4you"))
}
