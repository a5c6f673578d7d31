package binding

import (
	"context"
	"sync"

	"github.com/bnema/boxkeep/internal/domain"
)

// ownerLocks hands out one mutex per owner. Entries are refcounted and
// dropped once nobody holds or waits on them.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[domain.OwnerID]*ownerLock
}

type ownerLock struct {
	sem  chan struct{}
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[domain.OwnerID]*ownerLock)}
}

// lock blocks until owner's lock is held or ctx is done. The returned
// function releases it and must be called exactly once.
func (l *ownerLocks) lock(ctx context.Context, owner domain.OwnerID) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[owner]
	if !ok {
		entry = &ownerLock{sem: make(chan struct{}, 1)}
		l.locks[owner] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(owner, entry)
		return nil, ctx.Err()
	}

	return func() {
		<-entry.sem
		l.release(owner, entry)
	}, nil
}

func (l *ownerLocks) release(owner domain.OwnerID, entry *ownerLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, owner)
	}
}

func (l *ownerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
