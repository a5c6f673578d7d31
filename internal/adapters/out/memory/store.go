// Package memory implements the binding and token stores in process memory.
// It backs tests and the "memory" storage driver.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
)

var (
	_ out.BindingStore = (*Store)(nil)
	_ out.TokenStore   = (*Store)(nil)
)

// Store is a thread-safe, in-memory store.
type Store struct {
	mu      sync.Mutex
	records map[string]*domain.ContainerRecord
	order   []string
	tokens  map[string]domain.TerminalToken
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*domain.ContainerRecord),
		tokens:  make(map[string]domain.TerminalToken),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// FindActive returns the owner's live record, or nil.
func (s *Store) FindActive(_ context.Context, owner domain.OwnerID) (*domain.ContainerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.liveByOwner(owner); rec != nil {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

// InsertPending checks both uniqueness rules and inserts under one lock.
func (s *Store) InsertPending(_ context.Context, owner domain.OwnerID, name, image string) (*domain.ContainerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.liveByOwner(owner); existing != nil {
		return nil, domain.NewError(domain.KindConflict, "owner "+owner.String()+" already has container "+existing.Name, nil)
	}
	for _, id := range s.order {
		rec := s.records[id]
		if rec.State.Live() && rec.Name == name {
			return nil, domain.NewError(domain.KindNameInUse, "container name "+name+" is already in use", nil)
		}
	}

	now := s.now()
	rec := &domain.ContainerRecord{
		ID:        uuid.New().String(),
		Owner:     owner,
		Name:      name,
		Image:     image,
		State:     domain.RecordPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)

	cp := *rec
	return &cp, nil
}

// MarkActive moves a pending record to active.
func (s *Store) MarkActive(_ context.Context, recordID, runtimeID string) (*domain.ContainerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordID]
	if !ok || rec.State != domain.RecordPending {
		return nil, domain.NewError(domain.KindNotFound, "pending record "+recordID+" not found", nil)
	}
	rec.RuntimeID = runtimeID
	rec.State = domain.RecordActive
	rec.UpdatedAt = s.now()

	cp := *rec
	return &cp, nil
}

// MarkDestroyed moves a record to destroyed; repeated calls are no-ops.
func (s *Store) MarkDestroyed(_ context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordID]
	if !ok {
		return domain.NewError(domain.KindNotFound, "record "+recordID+" not found", nil)
	}
	if rec.State == domain.RecordDestroyed {
		return nil
	}
	now := s.now()
	rec.State = domain.RecordDestroyed
	rec.UpdatedAt = now
	rec.DestroyedAt = now
	return nil
}

// RemovePending deletes a pending record.
func (s *Store) RemovePending(_ context.Context, recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordID]
	if !ok || rec.State != domain.RecordPending {
		return nil
	}
	delete(s.records, recordID)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == recordID })
	return nil
}

// ListAll returns a snapshot sorted by creation time.
func (s *Store) ListAll(_ context.Context) ([]domain.ContainerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.ContainerRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.records[id])
	}
	slices.SortStableFunc(result, func(a, b domain.ContainerRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// SaveTerminalToken stores token, replacing any token for the same container.
func (s *Store) SaveTerminalToken(_ context.Context, token domain.TerminalToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token.RuntimeID] = token
	return nil
}

// ConsumeTerminalToken validates and deletes a token.
func (s *Store) ConsumeTerminalToken(_ context.Context, runtimeID, token string, now time.Time) (*domain.TerminalToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tokens[runtimeID]
	if !ok || stored.Token != token || stored.Expired(now) {
		return nil, domain.NewError(domain.KindNotFound, "invalid or expired token", nil)
	}
	delete(s.tokens, runtimeID)
	return &stored, nil
}

// PurgeExpiredTokens deletes expired tokens.
func (s *Store) PurgeExpiredTokens(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, tok := range s.tokens {
		if tok.Expired(now) {
			delete(s.tokens, id)
			purged++
		}
	}
	return purged, nil
}

func (s *Store) liveByOwner(owner domain.OwnerID) *domain.ContainerRecord {
	for _, id := range s.order {
		if rec := s.records[id]; rec.Owner == owner && rec.State.Live() {
			return rec
		}
	}
	return nil
}
