package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "pw", hash)
	assert.True(t, CheckPasswordHash("pw", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
