package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/boxkeep/internal/adapters/out/storetest"
	"github.com/bnema/boxkeep/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "state", "boxkeep.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_BindingContract(t *testing.T) {
	storetest.RunBindingStoreTests(t, func(t *testing.T) storetest.Store {
		return openTestStore(t)
	})
}

func TestStore_TokenContract(t *testing.T) {
	storetest.RunTokenStoreTests(t, func(t *testing.T) storetest.Store {
		return openTestStore(t)
	})
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "boxkeep.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	rec, err := s.InsertPending(ctx, "u1", "box1", "alpine")
	require.NoError(t, err)
	_, err = s.MarkActive(ctx, rec.ID, "r1")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	found, err := s.FindActive(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, rec.ID, found.ID)
	assert.Equal(t, "r1", found.RuntimeID)
	assert.Equal(t, domain.RecordActive, found.State)
}

func TestStore_UniqueIndexBackstop(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.InsertPending(ctx, "u1", "box1", "alpine")
	require.NoError(t, err)

	// Bypass the transactional checks to hit the partial indexes directly.
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO containers (id, owner_id, name, image, state, created_at, updated_at)
		 VALUES ('x', 'u1', 'other', 'alpine', 'pending', '', '')`)
	assert.ErrorIs(t, classifyInsert("u1", "other", err), domain.ErrConflict)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO containers (id, owner_id, name, image, state, created_at, updated_at)
		 VALUES ('y', 'u2', 'box1', 'alpine', 'pending', '', '')`)
	assert.ErrorIs(t, classifyInsert("u2", "box1", err), domain.ErrNameInUse)
}

// openShared opens two stores on one file, the way the CLI and the server
// share the database.
func openShared(t *testing.T) (*Store, *Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxkeep.db")
	a, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	b, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return a, b
}

func TestStore_SharedFile_DistinctOwnersProceed(t *testing.T) {
	ctx := context.Background()
	a, b := openShared(t)
	stores := []*Store{a, b}

	const writers = 20
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			owner := domain.OwnerID(fmt.Sprintf("u%d", i))
			_, errs[i] = stores[i%2].InsertPending(ctx, owner, fmt.Sprintf("box%d", i), "alpine")
		}()
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "writer %d", i)
	}
	all, err := a.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, writers)
}

func TestStore_SharedFile_SameOwnerConflicts(t *testing.T) {
	ctx := context.Background()
	a, b := openShared(t)
	stores := []*Store{a, b}

	const writers = 20
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = stores[i%2].InsertPending(ctx, "u1", fmt.Sprintf("box%d", i), "alpine")
		}()
	}
	wg.Wait()

	kinds := map[domain.ErrorKind]int{}
	for _, err := range errs {
		kinds[domain.KindOf(err)]++
	}
	assert.Equal(t, map[domain.ErrorKind]int{"": 1, domain.KindConflict: writers - 1}, kinds)
}

func TestStore_SharedFile_TokenConsumedOnce(t *testing.T) {
	ctx := context.Background()
	a, b := openShared(t)
	stores := []*Store{a, b}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, a.SaveTerminalToken(ctx, domain.TerminalToken{
		RuntimeID: "r1", Owner: "u1", Token: "secret", ExpiresAt: now.Add(time.Hour),
	}))

	const readers = 10
	errs := make([]error, readers)
	var wg sync.WaitGroup
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = stores[i%2].ConsumeTerminalToken(ctx, "r1", "secret", now)
		}()
	}
	wg.Wait()

	kinds := map[domain.ErrorKind]int{}
	for _, err := range errs {
		kinds[domain.KindOf(err)]++
	}
	assert.Equal(t, map[domain.ErrorKind]int{"": 1, domain.KindNotFound: readers - 1}, kinds)
}
