//go:build integration
// +build integration

package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"lifedash/internal/core/domain"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("skipping redis tests: %v", err)
	}
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})
	return client
}

func TestSessionStore_RoundTrip(t *testing.T) {
	store := NewSessionStore(newTestClient(t))
	ctx := context.Background()

	session := domain.Session{
		Token:     "tok-1",
		UserID:    5,
		Email:     "rina@example.com",
		CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, session, time.Minute))

	got, err := store.Get(ctx, "tok-1")
	require.NoError(t, err)
	require.Equal(t, session.UserID, got.UserID)
	require.True(t, session.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, store.Delete(ctx, "tok-1"))
	_, err = store.Get(ctx, "tok-1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Expires(t *testing.T) {
	client := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Session{Token: "tok-2", UserID: 1}, time.Minute))

	ttl, err := client.TTL(ctx, "session:tok-2").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Minute)
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	limiter := NewRateLimiter(newTestClient(t), 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "login:rina@example.com")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "login:rina@example.com")
	require.NoError(t, err)
	require.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "login:other@example.com")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestRunLock_SingleOwnerPerKey(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first := NewRunLock(client, "worker-a")
	second := NewRunLock(client, "worker-b")

	ok, err := first.Acquire(ctx, "reminders:202603100900", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = second.Acquire(ctx, "reminders:202603100900", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = second.Acquire(ctx, "reminders:202603100901", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	owner, err := client.Get(ctx, "lock:reminders:202603100900").Result()
	require.NoError(t, err)
	require.Equal(t, "worker-a", owner)
}

func TestRunLock_ReleaseOnlyByOwner(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first := NewRunLock(client, "worker-a")
	second := NewRunLock(client, "worker-b")

	ok, err := first.Acquire(ctx, "reminder:7:202603101000", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, second.Release(ctx, "reminder:7:202603101000"))
	ok, err = second.Acquire(ctx, "reminder:7:202603101000", time.Hour)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, first.Release(ctx, "reminder:7:202603101000"))
	ok, err = second.Acquire(ctx, "reminder:7:202603101000", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
}
