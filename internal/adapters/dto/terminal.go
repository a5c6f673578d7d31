package dto

import "time"

// TerminalLinkResponse is returned by POST /api/terminal.
type TerminalLinkResponse struct {
	URL           string    `json:"url"`
	ContainerName string    `json:"container_name"`
	ExpiresAt     time.Time `json:"expires_at"`
}
