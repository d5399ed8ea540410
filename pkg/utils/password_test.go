package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("testpass")
	require.NoError(t, err)
	require.NotEqual(t, "testpass", hash)

	require.True(t, CheckPasswordHash("testpass", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("testpass")
	require.NoError(t, err)

	second, err := HashPassword("testpass")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
