// Package ratelimit provides the per-actor request limiter for the API.
package ratelimit

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Ensure MemoryStore plugs into echo's rate limiter middleware.
var _ middleware.RateLimiterStore = (*MemoryStore)(nil)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per identifier. Buckets idle for
// longer than expiresIn are dropped on the next sweep.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*entry
	rps       float64
	burst     int
	expiresIn time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryStore creates a store allowing rps requests per second per
// identifier with the given burst.
func NewMemoryStore(rps float64, burst int, expiresIn time.Duration) *MemoryStore {
	if burst <= 0 {
		burst = 1
	}
	if expiresIn <= 0 {
		expiresIn = 3 * time.Minute
	}
	return &MemoryStore{
		entries:   make(map[string]*entry),
		rps:       rps,
		burst:     burst,
		expiresIn: expiresIn,
		now:       time.Now,
	}
}

// Allow reports whether a request from identifier may proceed.
func (s *MemoryStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.expiresIn {
		s.sweep(now)
	}

	e, ok := s.entries[identifier]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.entries[identifier] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1), nil
}

// Len returns the number of tracked identifiers.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.entries {
		if now.Sub(e.lastSeen) > s.expiresIn {
			delete(s.entries, id)
		}
	}
	s.lastSweep = now
}
