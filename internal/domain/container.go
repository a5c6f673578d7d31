// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import (
	"strings"
	"time"
)

// OwnerID identifies the external actor a container is bound to.
// It is an opaque token (a chat snowflake) and is never parsed.
type OwnerID string

// String returns the raw identifier.
func (o OwnerID) String() string {
	return string(o)
}

// NormalizeOwner trims surrounding whitespace from a raw identifier.
func NormalizeOwner(raw string) OwnerID {
	return OwnerID(strings.TrimSpace(raw))
}

// RecordState is the lifecycle state of a container record.
type RecordState string

const (
	RecordPending   RecordState = "pending"
	RecordActive    RecordState = "active"
	RecordDestroyed RecordState = "destroyed"
)

// Live reports whether the state occupies the owner's slot.
func (s RecordState) Live() bool {
	return s == RecordPending || s == RecordActive
}

// ContainerRecord binds one owner to one managed container.
type ContainerRecord struct {
	ID          string
	Owner       OwnerID
	Name        string
	RuntimeID   string
	Image       string
	State       RecordState
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DestroyedAt time.Time
}

// ShortRuntimeID returns the first 12 characters of the runtime ID, the way
// Docker prints container IDs.
func (r ContainerRecord) ShortRuntimeID() string {
	if len(r.RuntimeID) > 12 {
		return r.RuntimeID[:12]
	}
	return r.RuntimeID
}

// ContainerSpec describes the container the runtime must create for a record.
type ContainerSpec struct {
	Name   string
	Image  string
	Cmd    []string
	Labels map[string]string
}

// Labels applied to every managed container so operators can find orphans.
const (
	LabelManaged = "boxkeep.managed"
	LabelOwner   = "boxkeep.owner"
	LabelRecord  = "boxkeep.record"
)

// LiveState is the runtime's view of a container.
type LiveState struct {
	RuntimeID string
	Name      string
	Image     string
	Status    ContainerStatus
	Running   bool
	StartedAt time.Time
}

// ContainerStatus represents the current state of a container.
type ContainerStatus string

const (
	ContainerStatusRunning    ContainerStatus = "running"
	ContainerStatusCreated    ContainerStatus = "created"
	ContainerStatusExited     ContainerStatus = "exited"
	ContainerStatusPaused     ContainerStatus = "paused"
	ContainerStatusRestarting ContainerStatus = "restarting"
	ContainerStatusDead       ContainerStatus = "dead"
	ContainerStatusMissing    ContainerStatus = "not found"
	ContainerStatusUnknown    ContainerStatus = "unknown"
)

// ContainerView is a record annotated with a best-effort live probe.
type ContainerView struct {
	Record ContainerRecord
	// Live is nil when the record was not probed or the container is gone.
	Live *LiveState
	// ProbeError holds the probe failure for this record only.
	ProbeError string
	// Drifted is set when the read found the container missing and
	// transitioned the record to destroyed.
	Drifted bool
}

// Status returns the display status of the view.
func (v ContainerView) Status() ContainerStatus {
	switch {
	case v.Drifted:
		return ContainerStatusMissing
	case v.Live != nil:
		return v.Live.Status
	default:
		return ContainerStatusUnknown
	}
}

// ListOptions controls which records List returns.
type ListOptions struct {
	IncludeDestroyed bool
}
