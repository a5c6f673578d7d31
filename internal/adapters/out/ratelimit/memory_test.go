package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allow(t *testing.T, s *MemoryStore, id string) bool {
	t.Helper()
	ok, err := s.Allow(id)
	require.NoError(t, err)
	return ok
}

func TestMemoryStore_Allow_WithinBurst(t *testing.T) {
	store := NewMemoryStore(10, 10, time.Minute)

	for i := 0; i < 10; i++ {
		assert.True(t, allow(t, store, "u1"), "request %d should be allowed", i+1)
	}
}

func TestMemoryStore_Allow_ExceedsLimit(t *testing.T) {
	store := NewMemoryStore(1, 1, time.Minute)

	assert.True(t, allow(t, store, "u1"))
	assert.False(t, allow(t, store, "u1"))
}

func TestMemoryStore_Allow_Replenishes(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(1, 1, time.Hour)
	store.now = func() time.Time { return now }

	assert.True(t, allow(t, store, "u1"))
	assert.False(t, allow(t, store, "u1"))

	now = now.Add(time.Second)
	assert.True(t, allow(t, store, "u1"))
}

func TestMemoryStore_Allow_IndependentIdentifiers(t *testing.T) {
	store := NewMemoryStore(1, 1, time.Minute)

	assert.True(t, allow(t, store, "u1"))
	assert.False(t, allow(t, store, "u1"))
	assert.True(t, allow(t, store, "u2"))
}

func TestMemoryStore_SweepsIdleIdentifiers(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(1, 1, time.Minute)
	store.now = func() time.Time { return now }

	allow(t, store, "u1")
	allow(t, store, "u2")
	assert.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	allow(t, store, "u3")
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(1000, 1000, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Allow("shared")
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, store.Len())
}
