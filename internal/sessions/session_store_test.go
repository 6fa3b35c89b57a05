package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(ttl time.Duration, now *time.Time) *memorySessionStore {
	store := NewMemorySessionStore(ttl).(*memorySessionStore)
	store.now = func() time.Time { return *now }
	return store
}

func TestMemorySessionStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	store := newTestStore(time.Hour, &now)
	ctx := context.Background()

	created, err := store.Create(ctx, "alice@example.com", "token-1")
	require.NoError(t, err)
	assert.Len(t, created.ID, 26)
	assert.Equal(t, "alice@example.com", created.Username)
	assert.Equal(t, "token-1", created.AccessToken)
	assert.True(t, created.Authenticated)
	assert.Equal(t, now.Add(time.Hour), created.ExpiresAt)
	assert.True(t, created.IsAuthenticated(now))

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestMemorySessionStore_Create_RequiresIdentity(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := newTestStore(time.Hour, &now)

	_, err := store.Create(context.Background(), "", "token")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = store.Create(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestMemorySessionStore_Get_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	store := newTestStore(30*time.Minute, &now)
	ctx := context.Background()

	created, err := store.Create(ctx, "alice", "token")
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, store.sessions, "expired session should be evicted")
}

func TestMemorySessionStore_Create_SweepsAbandonedSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	store := newTestStore(time.Minute, &now)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_, err := store.Create(ctx, "alice", "token")
		require.NoError(t, err)
	}
	require.Len(t, store.sessions, 1000)

	now = now.Add(time.Minute)
	live, err := store.Create(ctx, "bob", "token")
	require.NoError(t, err)

	require.Len(t, store.sessions, 1)
	assert.Contains(t, store.sessions, live.ID)
}

func TestMemorySessionStore_Get_UnknownOrMalformedID(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := newTestStore(time.Hour, &now)

	_, err := store.Get(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := newTestStore(time.Hour, &now)
	ctx := context.Background()

	created, err := store.Create(ctx, "alice", "token")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(ctx, created.ID), ErrSessionNotFound)
}

func TestMemorySessionStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := newTestStore(time.Hour, &now)
	ctx := context.Background()

	created, err := store.Create(ctx, "alice", "token")
	require.NoError(t, err)
	created.AccessToken = "tampered"

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "token", got.AccessToken)
}

func TestMemorySessionStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := store.Create(ctx, "user", "token")
			if !assert.NoError(t, err) {
				return
			}
			_, err = store.Get(ctx, s.ID)
			assert.NoError(t, err)
			assert.NoError(t, store.Delete(ctx, s.ID))
		}()
	}
	wg.Wait()
}

func TestSession_IsAuthenticated(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	valid := Session{Username: "alice", AccessToken: "t", Authenticated: true, ExpiresAt: now.Add(time.Minute)}

	tests := []struct {
		name     string
		session  *Session
		expected bool
	}{
		{name: "valid", session: &valid, expected: true},
		{name: "nil", session: nil, expected: false},
		{name: "flag not set", session: func() *Session { s := valid; s.Authenticated = false; return &s }(), expected: false},
		{name: "no username", session: func() *Session { s := valid; s.Username = ""; return &s }(), expected: false},
		{name: "no token", session: func() *Session { s := valid; s.AccessToken = ""; return &s }(), expected: false},
		{name: "expired", session: func() *Session { s := valid; s.ExpiresAt = now; return &s }(), expected: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.session.IsAuthenticated(now))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := &Session{ID: "id", Username: "alice"}
	got, ok := FromContext(WithSession(context.Background(), s))
	require.True(t, ok)
	assert.Same(t, s, got)
}
