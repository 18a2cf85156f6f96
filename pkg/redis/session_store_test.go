package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return mr
}

func TestNewSessionStore_KeyValidation(t *testing.T) {
	_, err := NewSessionStore("not-hex")
	require.Error(t, err)

	_, err = NewSessionStore("abcd")
	require.Error(t, err, "short key rejected")

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	data := &SessionData{UserID: uuid.New(), AccessToken: "access", RefreshToken: "refresh"}
	require.NoError(t, store.CreateSession(ctx, "sess-1", data, time.Hour))

	// The stored value is an encrypted JWE, never the plaintext tokens.
	raw, err := mr.Get("session:sess-1")
	require.NoError(t, err)
	require.NotContains(t, raw, "access")
	require.Equal(t, 5, len(strings.Split(raw, ".")), "compact JWE serialization")

	got, err := store.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, data.UserID, got.UserID)
	require.Equal(t, "access", got.AccessToken)
	require.Equal(t, "refresh", got.RefreshToken)
}

func TestSessionStore_WrongKeyCannotDecrypt(t *testing.T) {
	setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.CreateSession(ctx, "sess-2", &SessionData{UserID: uuid.New()}, time.Hour))

	otherKey := strings.Repeat("ff", 32)
	other, err := NewSessionStore(otherKey)
	require.NoError(t, err)

	_, err = other.GetSession(ctx, "sess-2")
	require.Error(t, err)
}

func TestSessionStore_DeleteAndExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.CreateSession(ctx, "sess-3", &SessionData{UserID: uuid.New()}, time.Minute))

	require.NoError(t, store.DeleteSession(ctx, "sess-3"))
	_, err = store.GetSession(ctx, "sess-3")
	require.Error(t, err)

	require.NoError(t, store.CreateSession(ctx, "sess-4", &SessionData{UserID: uuid.New()}, time.Minute))
	mr.FastForward(2 * time.Minute)
	_, err = store.GetSession(ctx, "sess-4")
	require.Error(t, err, "session gone after TTL")
}
