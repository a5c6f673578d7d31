// Package storetest holds the behavior every BindingStore and TokenStore
// implementation must satisfy.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
)

// Store is what the suites exercise.
type Store interface {
	out.BindingStore
	out.TokenStore
}

// Factory returns a fresh, empty store.
type Factory func(t *testing.T) Store

// RunBindingStoreTests runs the binding store contract against newStore.
func RunBindingStoreTests(t *testing.T, newStore Factory) {
	t.Run("InsertAndFind", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, domain.RecordPending, rec.State)
		assert.Empty(t, rec.RuntimeID)
		assert.False(t, rec.CreatedAt.IsZero())

		found, err := s.FindActive(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, rec.ID, found.ID)

		none, err := s.FindActive(ctx, "u2")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("InsertConflictsOnLiveOwner", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)

		_, err = s.InsertPending(ctx, "u1", "box2", "alpine")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("InsertRejectsLiveName", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)

		_, err = s.InsertPending(ctx, "u2", "box1", "alpine")
		assert.ErrorIs(t, err, domain.ErrNameInUse)
	})

	t.Run("MarkActive", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)

		active, err := s.MarkActive(ctx, rec.ID, "r1")
		require.NoError(t, err)
		assert.Equal(t, domain.RecordActive, active.State)
		assert.Equal(t, "r1", active.RuntimeID)
		assert.True(t, active.CreatedAt.Equal(rec.CreatedAt))

		found, err := s.FindActive(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "r1", found.RuntimeID)
	})

	t.Run("MarkActiveMissingRecord", func(t *testing.T) {
		s := newStore(t)
		_, err := s.MarkActive(context.Background(), "does-not-exist", "r1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("MarkActiveAfterRollback", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)
		require.NoError(t, s.RemovePending(ctx, rec.ID))

		_, err = s.MarkActive(ctx, rec.ID, "r1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("MarkDestroyedIsIdempotentAndReleasesSlot", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)
		_, err = s.MarkActive(ctx, rec.ID, "r1")
		require.NoError(t, err)

		require.NoError(t, s.MarkDestroyed(ctx, rec.ID))
		require.NoError(t, s.MarkDestroyed(ctx, rec.ID))

		found, err := s.FindActive(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, found)

		again, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)
		assert.NotEqual(t, rec.ID, again.ID)
	})

	t.Run("MarkDestroyedUnknown", func(t *testing.T) {
		s := newStore(t)
		err := s.MarkDestroyed(context.Background(), "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("RemovePendingOnlyTouchesPending", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)
		_, err = s.MarkActive(ctx, rec.ID, "r1")
		require.NoError(t, err)

		require.NoError(t, s.RemovePending(ctx, rec.ID))
		require.NoError(t, s.RemovePending(ctx, "does-not-exist"))

		found, err := s.FindActive(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, domain.RecordActive, found.State)
	})

	t.Run("RollbackLeavesNoRecord", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
		require.NoError(t, err)
		require.NoError(t, s.RemovePending(ctx, rec.ID))

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("ListAllSortedIncludesDestroyed", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var ids []string
		for i := 0; i < 3; i++ {
			rec, err := s.InsertPending(ctx, domain.OwnerID(fmt.Sprintf("u%d", i)), fmt.Sprintf("box%d", i), "alpine")
			require.NoError(t, err)
			ids = append(ids, rec.ID)
			time.Sleep(2 * time.Millisecond)
		}
		require.NoError(t, s.MarkDestroyed(ctx, ids[1]))

		all, err := s.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, rec := range all {
			assert.Equal(t, ids[i], rec.ID)
		}
		assert.Equal(t, domain.RecordDestroyed, all[1].State)
		assert.False(t, all[1].DestroyedAt.IsZero())

		again, err := s.ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, all, again)
	})

	t.Run("ConcurrentInsertSameOwner", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		const attempts = 16
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := s.InsertPending(ctx, "u1", fmt.Sprintf("box%d", i), "alpine")
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, domain.ErrConflict):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, attempts-1, conflicts)
	})
}

// RunTokenStoreTests runs the terminal token contract against newStore.
func RunTokenStoreTests(t *testing.T, newStore Factory) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ConsumeOnce", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveTerminalToken(ctx, domain.TerminalToken{
			RuntimeID: "r1", Owner: "u1", Token: "tok", ExpiresAt: now.Add(time.Hour),
		}))

		tok, err := s.ConsumeTerminalToken(ctx, "r1", "tok", now)
		require.NoError(t, err)
		assert.Equal(t, domain.OwnerID("u1"), tok.Owner)

		_, err = s.ConsumeTerminalToken(ctx, "r1", "tok", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("RejectsMismatchAndExpired", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveTerminalToken(ctx, domain.TerminalToken{
			RuntimeID: "r1", Owner: "u1", Token: "tok", ExpiresAt: now.Add(time.Minute),
		}))

		_, err := s.ConsumeTerminalToken(ctx, "r1", "other", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.ConsumeTerminalToken(ctx, "r2", "tok", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.ConsumeTerminalToken(ctx, "r1", "tok", now.Add(time.Minute))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("NewerTokenReplacesOlder", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveTerminalToken(ctx, domain.TerminalToken{RuntimeID: "r1", Owner: "u1", Token: "old", ExpiresAt: now.Add(time.Hour)}))
		require.NoError(t, s.SaveTerminalToken(ctx, domain.TerminalToken{RuntimeID: "r1", Owner: "u1", Token: "new", ExpiresAt: now.Add(time.Hour)}))

		_, err := s.ConsumeTerminalToken(ctx, "r1", "old", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = s.ConsumeTerminalToken(ctx, "r1", "new", now)
		assert.NoError(t, err)
	})

	t.Run("PurgeExpired", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.SaveTerminalToken(ctx, domain.TerminalToken{RuntimeID: "r1", Token: "a", ExpiresAt: now.Add(-time.Second)}))
		require.NoError(t, s.SaveTerminalToken(ctx, domain.TerminalToken{RuntimeID: "r2", Token: "b", ExpiresAt: now.Add(time.Hour)}))

		purged, err := s.PurgeExpiredTokens(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, purged)

		_, err = s.ConsumeTerminalToken(ctx, "r2", "b", now)
		assert.NoError(t, err)
	})
}
