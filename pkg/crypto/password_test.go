package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPassword("s3cret-pass", hash))
	require.False(t, CheckPassword("wrong", hash))
	require.False(t, CheckPassword("s3cret-pass", "not-a-hash"))
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(16)
	require.NoError(t, err)
	require.Len(t, a, 32, "hex doubles the byte length")

	b, err := GenerateRandomToken(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := GenerateSessionID()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
