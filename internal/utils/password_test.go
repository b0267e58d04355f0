package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.NoError(t, ComparePassword(hash, "password123"))
	assert.ErrorIs(t, ComparePassword(hash, "password124"), ErrPasswordMismatch)
}

func TestHashPassword_IsSalted(t *testing.T) {
	first, err := HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
