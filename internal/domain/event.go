package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventContainerCreated   EventType = "container.created"
	EventContainerDestroyed EventType = "container.destroyed"
	EventContainerDrift     EventType = "container.drift"
	EventPartialFailure     EventType = "container.partial_failure"
	EventTerminalIssued     EventType = "terminal.issued"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Owner     OwnerID
	RuntimeID string
	Data      any
}

// ContainerEventPayload contains data for container lifecycle events.
type ContainerEventPayload struct {
	Actor     OwnerID
	Owner     OwnerID
	RecordID  string
	RuntimeID string
	Name      string
	Image     string
	Reason    string
}
