package domain

import "time"

// TerminalToken grants one web terminal session to a container.
type TerminalToken struct {
	RuntimeID string
	Owner     OwnerID
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the token is no longer usable at now.
func (t TerminalToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TerminalLink is what the front-end hands to the user.
type TerminalLink struct {
	URL           string
	ContainerName string
	ExpiresAt     time.Time
}

// TerminalSession is a running web terminal bound to one container.
type TerminalSession struct {
	RuntimeID string
	Port      int
	StartedAt time.Time
}
