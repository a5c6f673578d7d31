// Package docker implements the container runtime adapter using Docker API.
package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ out.ContainerRuntime = (*Runtime)(nil)

// Seconds Docker waits after SIGTERM before killing the container.
const stopTimeoutSeconds = 10

// Runtime implements the ContainerRuntime interface using Docker API.
type Runtime struct {
	client *client.Client
}

// NewRuntime creates a Docker runtime. An empty host uses DOCKER_HOST and
// the other standard environment variables.
func NewRuntime(host string) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if host != "" {
		opts = append(opts, client.WithHost(host))
	}
	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	return &Runtime{client: cli}, nil
}

// NewRuntimeWithClient creates a runtime around an existing client.
func NewRuntimeWithClient(cli *client.Client) *Runtime {
	return &Runtime{client: cli}
}

// Close releases the underlying client.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// CreateContainer pulls the image, creates the container and starts it.
// A container that fails to start is removed again.
func (r *Runtime) CreateContainer(ctx context.Context, spec domain.ContainerSpec) (string, error) {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "adapter",
		logging.FieldAdapter, "docker",
		logging.FieldAction, "CreateContainer",
		"container_name", spec.Name,
		"image", spec.Image,
	)
	log := logging.FromCtx(ctx)

	if err := r.ensureImage(ctx, spec.Image); err != nil {
		return "", err
	}

	config := &container.Config{
		Image:     spec.Image,
		Cmd:       spec.Cmd,
		Labels:    spec.Labels,
		Tty:       true,
		OpenStdin: true,
	}
	hostConfig := &container.HostConfig{
		RestartPolicy: container.RestartPolicy{Name: container.RestartPolicyUnlessStopped},
	}

	resp, err := r.client.ContainerCreate(ctx, config, hostConfig, nil, nil, spec.Name)
	if err != nil {
		if cerrdefs.IsConflict(err) {
			return "", fmt.Errorf("container name %s is taken in the runtime: %w", spec.Name, err)
		}
		return "", fmt.Errorf("failed to create container: %w", err)
	}
	for _, warning := range resp.Warnings {
		log.Warn("docker warning", "warning", warning)
	}

	if err := r.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		// The caller's context may be done; cleanup uses its own budget.
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if rmErr := r.client.ContainerRemove(cleanupCtx, resp.ID, container.RemoveOptions{Force: true}); rmErr != nil {
			log.Error("failed to remove container that did not start", logging.FieldEntityID, resp.ID, "error", rmErr)
		}
		return "", fmt.Errorf("failed to start container: %w", err)
	}

	log.Info("container started", logging.FieldEntityID, resp.ID)
	return resp.ID, nil
}

// ensureImage pulls ref. A failed pull is tolerated when the image is
// already present locally.
func (r *Runtime) ensureImage(ctx context.Context, ref string) error {
	log := logging.FromCtx(ctx)

	pullErr := r.pullImage(ctx, ref)
	if pullErr == nil {
		return nil
	}
	if ctx.Err() != nil {
		return pullErr
	}

	if _, err := r.client.ImageInspect(ctx, ref); err == nil {
		log.Warn("pull failed, using local image", "error", pullErr)
		return nil
	} else if cerrdefs.IsNotFound(err) {
		return fmt.Errorf("%w: %s: %v", domain.ErrImageNotFound, ref, pullErr)
	}
	return pullErr
}

func (r *Runtime) pullImage(ctx context.Context, ref string) error {
	log := logging.FromCtx(ctx)
	log.Info("pulling image")

	reader, err := r.client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image: %w", err)
	}
	defer reader.Close()

	// Errors raised mid-pull only appear in the progress stream.
	if err := jsonmessage.DisplayJSONMessagesStream(reader, io.Discard, 0, false, nil); err != nil {
		return fmt.Errorf("failed to pull image: %w", err)
	}

	log.Debug("image pulled")
	return nil
}

// RemoveContainer stops the container if it is running and removes it.
func (r *Runtime) RemoveContainer(ctx context.Context, runtimeID string) error {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "adapter",
		logging.FieldAdapter, "docker",
		logging.FieldAction, "RemoveContainer",
		logging.FieldEntityID, runtimeID,
	)
	log := logging.FromCtx(ctx)

	info, err := r.client.ContainerInspect(ctx, runtimeID)
	if err != nil {
		return mapNotFound(err, "failed to inspect container")
	}

	if info.State != nil && info.State.Running {
		timeout := stopTimeoutSeconds
		if err := r.client.ContainerStop(ctx, runtimeID, container.StopOptions{Timeout: &timeout}); err != nil {
			if !cerrdefs.IsNotFound(err) {
				// Force removal below still kills the container.
				log.Warn("failed to stop container", "error", err)
			}
		}
	}

	if err := r.client.ContainerRemove(ctx, runtimeID, container.RemoveOptions{Force: true}); err != nil {
		return mapNotFound(err, "failed to remove container")
	}

	log.Info("container removed")
	return nil
}

// InspectContainer returns the live state of a container.
func (r *Runtime) InspectContainer(ctx context.Context, runtimeID string) (*domain.LiveState, error) {
	info, err := r.client.ContainerInspect(ctx, runtimeID)
	if err != nil {
		return nil, mapNotFound(err, "failed to inspect container")
	}

	state := &domain.LiveState{
		RuntimeID: info.ID,
		Name:      strings.TrimPrefix(info.Name, "/"),
		Status:    domain.ContainerStatusUnknown,
	}
	if info.Config != nil {
		state.Image = info.Config.Image
	}
	if info.State != nil {
		state.Status = toStatus(string(info.State.Status))
		state.Running = info.State.Running
		if started, err := time.Parse(time.RFC3339Nano, info.State.StartedAt); err == nil && started.Year() > 1 {
			state.StartedAt = started
		}
	}
	return state, nil
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	if _, err := r.client.Ping(ctx); err != nil {
		return fmt.Errorf("docker ping failed: %w", err)
	}
	return nil
}

// Version returns Docker version.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	version, err := r.client.ServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get docker version: %w", err)
	}
	return version.Version, nil
}

func mapNotFound(err error, msg string) error {
	if cerrdefs.IsNotFound(err) {
		return fmt.Errorf("%s: %w", msg, errors.Join(domain.ErrContainerNotFound, err))
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func toStatus(s string) domain.ContainerStatus {
	switch s {
	case "running":
		return domain.ContainerStatusRunning
	case "created":
		return domain.ContainerStatusCreated
	case "exited":
		return domain.ContainerStatusExited
	case "paused":
		return domain.ContainerStatusPaused
	case "restarting":
		return domain.ContainerStatusRestarting
	case "dead":
		return domain.ContainerStatusDead
	default:
		return domain.ContainerStatusUnknown
	}
}
