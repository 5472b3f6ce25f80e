package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, ttl time.Duration) Session {
	t.Helper()

	id, err := GenerateID()
	require.NoError(t, err)

	now := time.Now()
	return Session{
		SessionID: id,
		UserID:    "user-1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := newSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.UserID, got.UserID)

	require.NoError(t, store.Delete(ctx, s.SessionID))

	// destroyed session must never validate again
	got, err = store.Get(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// delete is idempotent
	assert.NoError(t, store.Delete(ctx, s.SessionID))
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStoreRejectsInvalidSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	assert.Error(t, store.Create(ctx, Session{UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}))
	assert.Error(t, store.Create(ctx, Session{SessionID: "sid", ExpiresAt: time.Now().Add(time.Hour)}))

	expired := newSession(t, -time.Minute)
	assert.Error(t, store.Create(ctx, expired), "expires_at must be in the future")
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := newSession(t, 10*time.Millisecond)
	require.NoError(t, store.Create(ctx, s))

	time.Sleep(20 * time.Millisecond)

	got, err := store.Get(ctx, s.SessionID)
	require.NoError(t, err)
	assert.Nil(t, got, "expired session must not validate")
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	got, err := NewMemoryStore().Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}
