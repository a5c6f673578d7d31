// Package dto provides shared data transfer objects for API responses and
// CLI output.
package dto

import (
	"time"

	"github.com/bnema/boxkeep/internal/domain"
)

// CreateContainerRequest is the body of POST /api/containers.
type CreateContainerRequest struct {
	Owner string `json:"owner"`
	Image string `json:"image"`
	Name  string `json:"name"`
}

// Container represents a container record.
type Container struct {
	ID          string     `json:"id" yaml:"id"`
	Owner       string     `json:"owner" yaml:"owner"`
	Name        string     `json:"name" yaml:"name"`
	RuntimeID   string     `json:"runtime_id,omitempty" yaml:"runtime_id,omitempty"`
	Image       string     `json:"image" yaml:"image"`
	State       string     `json:"state" yaml:"state"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
	DestroyedAt *time.Time `json:"destroyed_at,omitempty" yaml:"destroyed_at,omitempty"`
}

// LiveState is the runtime's view of a container.
type LiveState struct {
	Status    string     `json:"status" yaml:"status"`
	Running   bool       `json:"running" yaml:"running"`
	StartedAt *time.Time `json:"started_at,omitempty" yaml:"started_at,omitempty"`
}

// ContainerView is a record annotated with its live state.
type ContainerView struct {
	Container  Container  `json:"container" yaml:"container"`
	Status     string     `json:"status" yaml:"status"`
	Live       *LiveState `json:"live,omitempty" yaml:"live,omitempty"`
	ProbeError string     `json:"probe_error,omitempty" yaml:"probe_error,omitempty"`
	Drifted    bool       `json:"drifted,omitempty" yaml:"drifted,omitempty"`
}

// ContainersResponse is returned by the list endpoint.
type ContainersResponse struct {
	Containers []ContainerView `json:"containers" yaml:"containers"`
}

// FromRecord converts a domain record.
func FromRecord(rec domain.ContainerRecord) Container {
	c := Container{
		ID:        rec.ID,
		Owner:     rec.Owner.String(),
		Name:      rec.Name,
		RuntimeID: rec.RuntimeID,
		Image:     rec.Image,
		State:     string(rec.State),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if !rec.DestroyedAt.IsZero() {
		t := rec.DestroyedAt
		c.DestroyedAt = &t
	}
	return c
}

// FromView converts a domain view.
func FromView(v domain.ContainerView) ContainerView {
	out := ContainerView{
		Container:  FromRecord(v.Record),
		Status:     string(v.Status()),
		ProbeError: v.ProbeError,
		Drifted:    v.Drifted,
	}
	if v.Live != nil {
		live := &LiveState{Status: string(v.Live.Status), Running: v.Live.Running}
		if !v.Live.StartedAt.IsZero() {
			t := v.Live.StartedAt
			live.StartedAt = &t
		}
		out.Live = live
	}
	return out
}

// FromViews converts a slice of domain views.
func FromViews(views []domain.ContainerView) ContainersResponse {
	resp := ContainersResponse{Containers: make([]ContainerView, 0, len(views))}
	for _, v := range views {
		resp.Containers = append(resp.Containers, FromView(v))
	}
	return resp
}
