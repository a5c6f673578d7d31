// Package policy implements the authorization guard for privileged commands.
package policy

import (
	"strings"

	"github.com/bnema/boxkeep/internal/domain"
)

// Guard is an immutable allowlist. It fails closed: an empty allowlist
// denies everyone and the empty identity is never authorized.
type Guard struct {
	allowed map[domain.OwnerID]struct{}
}

// NewGuard builds a guard from raw identifiers. Entries are trimmed and
// blanks dropped.
func NewGuard(allowlist []string) *Guard {
	allowed := make(map[domain.OwnerID]struct{}, len(allowlist))
	for _, raw := range allowlist {
		id := domain.NormalizeOwner(raw)
		if id == "" {
			continue
		}
		allowed[id] = struct{}{}
	}
	return &Guard{allowed: allowed}
}

// ParseAllowlist splits a comma separated list such as AUTHORIZED_USERS.
func ParseAllowlist(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// IsAuthorized reports whether actor is on the allowlist.
func (g *Guard) IsAuthorized(actor domain.OwnerID) bool {
	if g == nil || actor == "" {
		return false
	}
	_, ok := g.allowed[actor]
	return ok
}

// Size returns the number of allowlisted identities.
func (g *Guard) Size() int {
	if g == nil {
		return 0
	}
	return len(g.allowed)
}
