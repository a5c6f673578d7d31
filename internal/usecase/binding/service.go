// Package binding implements the reconciling container controller: it binds
// each owner to at most one container and keeps the binding store and the
// container runtime in agreement.
package binding

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/boxkeep/internal/boundaries/in"
	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ in.BindingService = (*Service)(nil)

// Docker's container name rule.
var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]+$`)

// Budget for compensating store writes once the caller's context is done.
const compensationTimeout = 10 * time.Second

// Config holds the controller settings.
type Config struct {
	DefaultImage     string
	Command          []string
	RuntimeTimeout   time.Duration
	ProbeTimeout     time.Duration
	ProbeConcurrency int
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		DefaultImage:     "ubuntu:24.04",
		Command:          []string{"tail", "-f", "/dev/null"},
		RuntimeTimeout:   2 * time.Minute,
		ProbeTimeout:     10 * time.Second,
		ProbeConcurrency: 8,
	}
}

// Service implements the BindingService interface.
type Service struct {
	guard   in.PolicyGuard
	store   out.BindingStore
	runtime out.ContainerRuntime
	events  out.EventPublisher
	config  Config
	locks   *ownerLocks
}

// NewService creates a new binding service. events may be nil.
func NewService(guard in.PolicyGuard, store out.BindingStore, runtime out.ContainerRuntime, events out.EventPublisher, config Config) *Service {
	defaults := DefaultConfig()
	if config.DefaultImage == "" {
		config.DefaultImage = defaults.DefaultImage
	}
	if len(config.Command) == 0 {
		config.Command = defaults.Command
	}
	if config.RuntimeTimeout <= 0 {
		config.RuntimeTimeout = defaults.RuntimeTimeout
	}
	if config.ProbeTimeout <= 0 {
		config.ProbeTimeout = defaults.ProbeTimeout
	}
	if config.ProbeConcurrency <= 0 {
		config.ProbeConcurrency = defaults.ProbeConcurrency
	}

	return &Service{
		guard:   guard,
		store:   store,
		runtime: runtime,
		events:  events,
		config:  config,
		locks:   newOwnerLocks(),
	}
}

// Create provisions a container for owner. The pending record reserves the
// owner's slot before the runtime is touched and is rolled back if the
// runtime fails.
func (s *Service) Create(ctx context.Context, actor, owner domain.OwnerID, image, name string) (*domain.ContainerRecord, error) {
	if owner == "" {
		owner = actor
	}
	if image == "" {
		image = s.config.DefaultImage
	}

	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "Create",
		logging.FieldActor, actor,
		logging.FieldOwner, owner,
	)
	log := logging.FromCtx(ctx)

	if !s.guard.IsAuthorized(actor) {
		log.Warn("unauthorized create")
		return nil, domain.NewError(domain.KindUnauthorized, "actor "+actor.String()+" is not authorized", nil)
	}
	if owner == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "owner is required", nil)
	}
	if !validName.MatchString(name) {
		return nil, domain.NewError(domain.KindInvalidArgument, fmt.Sprintf("invalid container name %q", name), nil)
	}

	unlock, err := s.lockOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := s.store.InsertPending(ctx, owner, name, image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			return nil, domain.NewError(domain.KindAlreadyOwnsContainer, "owner "+owner.String()+" already has a container", err)
		case errors.Is(err, domain.ErrNameInUse):
			return nil, err
		default:
			return nil, storeFailure("failed to reserve container slot", err)
		}
	}
	log = log.With(logging.FieldEntityID, rec.ID, "container_name", name, "image", image)

	spec := domain.ContainerSpec{
		Name:  name,
		Image: image,
		Cmd:   s.config.Command,
		Labels: map[string]string{
			domain.LabelManaged: "true",
			domain.LabelOwner:   owner.String(),
			domain.LabelRecord:  rec.ID,
		},
	}

	runtimeCtx, cancel := context.WithTimeout(ctx, s.config.RuntimeTimeout)
	runtimeID, err := s.runtime.CreateContainer(runtimeCtx, spec)
	timedOut := runtimeCtx.Err() != nil
	cancel()

	if err != nil || timedOut {
		return nil, s.rollback(ctx, actor, rec, runtimeID, err, timedOut)
	}

	active, err := s.store.MarkActive(ctx, rec.ID, runtimeID)
	if err != nil {
		log.Error("container running but not recorded", "runtime_id", runtimeID, "error", err)
		pf := &domain.PartialFailureError{
			Owner:     owner,
			RecordID:  rec.ID,
			RuntimeID: runtimeID,
			Reason:    "container started but could not be recorded",
			Err:       err,
		}
		s.publishPartialFailure(ctx, actor, rec, pf)
		return nil, pf
	}

	log.Info("container created", "runtime_id", runtimeID)
	s.publish(ctx, domain.EventContainerCreated, domain.ContainerEventPayload{
		Actor:     actor,
		Owner:     owner,
		RecordID:  active.ID,
		RuntimeID: runtimeID,
		Name:      active.Name,
		Image:     active.Image,
	})
	return active, nil
}

// rollback removes the pending record after a failed or timed-out runtime
// create. A timeout leaves the runtime state unknown, so it is reported as a
// partial failure even when the rollback succeeds.
func (s *Service) rollback(ctx context.Context, actor domain.OwnerID, rec *domain.ContainerRecord, runtimeID string, cause error, timedOut bool) error {
	log := logging.FromCtx(ctx)

	if cause == nil {
		cause = context.DeadlineExceeded
	}

	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if rbErr := s.store.RemovePending(rbCtx, rec.ID); rbErr != nil {
		log.Error("rollback of pending record failed", "error", rbErr, "cause", cause)
		pf := &domain.PartialFailureError{
			Owner:     rec.Owner,
			RecordID:  rec.ID,
			RuntimeID: runtimeID,
			Reason:    "runtime create failed and the pending record could not be rolled back",
			Err:       errors.Join(cause, rbErr),
		}
		s.publishPartialFailure(ctx, actor, rec, pf)
		return pf
	}

	if timedOut {
		log.Error("runtime create did not finish in time, container state unknown", "timeout", s.config.RuntimeTimeout)
		pf := &domain.PartialFailureError{
			Owner:     rec.Owner,
			RecordID:  rec.ID,
			RuntimeID: runtimeID,
			Reason:    "runtime create timed out; a container labelled " + domain.LabelRecord + "=" + rec.ID + " may exist",
			Err:       cause,
		}
		s.publishPartialFailure(ctx, actor, rec, pf)
		return pf
	}

	log.Warn("runtime create failed, pending record rolled back", "error", cause)
	return domain.NewError(domain.KindRuntime, "failed to create container", cause)
}

// Destroy removes target's container and releases the slot. A container
// already gone from the runtime counts as removed.
func (s *Service) Destroy(ctx context.Context, actor, target domain.OwnerID) (*domain.ContainerRecord, error) {
	if target == "" {
		target = actor
	}

	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "Destroy",
		logging.FieldActor, actor,
		logging.FieldOwner, target,
	)
	log := logging.FromCtx(ctx)

	if !s.guard.IsAuthorized(actor) {
		log.Warn("unauthorized destroy")
		return nil, domain.NewError(domain.KindUnauthorized, "actor "+actor.String()+" is not authorized", nil)
	}

	unlock, err := s.lockOwner(ctx, target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := s.store.FindActive(ctx, target)
	if err != nil {
		return nil, storeFailure("failed to look up container", err)
	}
	if rec == nil {
		return nil, noContainer(target)
	}

	if rec.RuntimeID != "" {
		runtimeCtx, cancel := context.WithTimeout(ctx, s.config.RuntimeTimeout)
		err := s.runtime.RemoveContainer(runtimeCtx, rec.RuntimeID)
		cancel()

		switch {
		case err == nil:
		case errors.Is(err, domain.ErrContainerNotFound):
			log.Info("container already gone from runtime", "runtime_id", rec.RuntimeID)
		default:
			log.Error("failed to remove container", "runtime_id", rec.RuntimeID, "error", err)
			return nil, domain.NewError(domain.KindRuntime, "failed to remove container", err)
		}
	}

	if err := s.store.MarkDestroyed(ctx, rec.ID); err != nil {
		return nil, storeFailure("container removed but record not updated", err)
	}

	destroyedAt := time.Now().UTC()
	rec.State = domain.RecordDestroyed
	rec.UpdatedAt = destroyedAt
	rec.DestroyedAt = destroyedAt

	log.Info("container destroyed", "runtime_id", rec.RuntimeID)
	s.publish(ctx, domain.EventContainerDestroyed, domain.ContainerEventPayload{
		Actor:     actor,
		Owner:     target,
		RecordID:  rec.ID,
		RuntimeID: rec.RuntimeID,
		Name:      rec.Name,
		Image:     rec.Image,
	})
	return rec, nil
}

// Status returns target's record with its live state. A record whose
// container vanished is moved to destroyed and reported as NoContainer.
func (s *Service) Status(ctx context.Context, target domain.OwnerID) (*domain.ContainerView, error) {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "Status",
		logging.FieldOwner, target,
	)

	unlock, err := s.lockOwner(ctx, target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := s.store.FindActive(ctx, target)
	if err != nil {
		return nil, storeFailure("failed to look up container", err)
	}
	if rec == nil {
		return nil, noContainer(target)
	}

	view := domain.ContainerView{Record: *rec}
	if rec.RuntimeID == "" {
		return &view, nil
	}

	live, err := s.probe(ctx, rec.RuntimeID)
	switch {
	case err == nil:
		view.Live = live
	case errors.Is(err, domain.ErrContainerNotFound):
		if err := s.markDrifted(ctx, rec); err != nil {
			return nil, err
		}
		return nil, noContainer(target)
	default:
		view.ProbeError = err.Error()
	}
	return &view, nil
}

// List returns records annotated with live state. Probe failures stay on
// the affected view; only a store failure fails the call.
func (s *Service) List(ctx context.Context, opts domain.ListOptions) ([]domain.ContainerView, error) {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "List",
	)
	log := logging.FromCtx(ctx)

	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, storeFailure("failed to list containers", err)
	}

	views := make([]domain.ContainerView, 0, len(records))
	for _, rec := range records {
		if rec.State == domain.RecordDestroyed && !opts.IncludeDestroyed {
			continue
		}
		views = append(views, domain.ContainerView{Record: rec})
	}

	var g errgroup.Group
	g.SetLimit(s.config.ProbeConcurrency)
	for i := range views {
		rec := views[i].Record
		if rec.State != domain.RecordActive || rec.RuntimeID == "" {
			continue
		}
		g.Go(func() error {
			s.probeView(ctx, &views[i])
			return nil
		})
	}
	_ = g.Wait()

	log.Debug("listed containers", "count", len(views))
	return views, nil
}

// probeView fills a single list entry. Each goroutine owns its entry.
func (s *Service) probeView(ctx context.Context, view *domain.ContainerView) {
	live, err := s.probe(ctx, view.Record.RuntimeID)
	switch {
	case err == nil:
		view.Live = live
	case errors.Is(err, domain.ErrContainerNotFound):
		rec, rerr := s.reconcileMissing(ctx, view.Record)
		if rerr != nil {
			view.ProbeError = rerr.Error()
			return
		}
		if rec != nil {
			view.Record = *rec
			view.Drifted = true
		}
	default:
		view.ProbeError = err.Error()
	}
}

// reconcileMissing marks a record destroyed under its owner's lock, unless
// a concurrent operation already changed it. It returns the updated record
// or nil when there was nothing to do.
func (s *Service) reconcileMissing(ctx context.Context, rec domain.ContainerRecord) (*domain.ContainerRecord, error) {
	unlock, err := s.lockOwner(ctx, rec.Owner)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := s.store.FindActive(ctx, rec.Owner)
	if err != nil {
		return nil, storeFailure("failed to look up container", err)
	}
	if current == nil || current.ID != rec.ID || current.RuntimeID != rec.RuntimeID {
		return nil, nil
	}

	if err := s.markDrifted(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// markDrifted records that the runtime lost the container. The caller holds
// the owner's lock.
func (s *Service) markDrifted(ctx context.Context, rec *domain.ContainerRecord) error {
	log := logging.FromCtx(ctx)

	if err := s.store.MarkDestroyed(ctx, rec.ID); err != nil {
		return storeFailure("failed to reconcile missing container", err)
	}

	now := time.Now().UTC()
	rec.State = domain.RecordDestroyed
	rec.UpdatedAt = now
	rec.DestroyedAt = now

	log.Warn("container missing from runtime, record marked destroyed", logging.FieldEntityID, rec.ID, "runtime_id", rec.RuntimeID)
	s.publish(ctx, domain.EventContainerDrift, domain.ContainerEventPayload{
		Owner:     rec.Owner,
		RecordID:  rec.ID,
		RuntimeID: rec.RuntimeID,
		Name:      rec.Name,
		Image:     rec.Image,
		Reason:    "container missing from runtime",
	})
	return nil
}

func (s *Service) probe(ctx context.Context, runtimeID string) (*domain.LiveState, error) {
	probeCtx, cancel := context.WithTimeout(ctx, s.config.ProbeTimeout)
	defer cancel()
	return s.runtime.InspectContainer(probeCtx, runtimeID)
}

func (s *Service) lockOwner(ctx context.Context, owner domain.OwnerID) (func(), error) {
	unlock, err := s.locks.lock(ctx, owner)
	if err != nil {
		return nil, domain.NewError(domain.KindRuntime, "gave up waiting for another operation on "+owner.String(), err)
	}
	return unlock, nil
}

func (s *Service) publish(ctx context.Context, eventType domain.EventType, payload domain.ContainerEventPayload) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventType, payload); err != nil {
		logging.FromCtx(ctx).Warn("failed to publish event", logging.FieldEvent, eventType, "error", err)
	}
}

func (s *Service) publishPartialFailure(ctx context.Context, actor domain.OwnerID, rec *domain.ContainerRecord, pf *domain.PartialFailureError) {
	s.publish(ctx, domain.EventPartialFailure, domain.ContainerEventPayload{
		Actor:     actor,
		Owner:     rec.Owner,
		RecordID:  rec.ID,
		RuntimeID: pf.RuntimeID,
		Name:      rec.Name,
		Image:     rec.Image,
		Reason:    pf.Error(),
	})
}

func noContainer(owner domain.OwnerID) error {
	return domain.NewError(domain.KindNoContainer, "owner "+owner.String()+" has no container", nil)
}

// storeFailure keeps classified store errors and tags the rest as StoreError.
func storeFailure(msg string, err error) error {
	if domain.KindOf(err) != domain.KindInternal {
		return err
	}
	return domain.NewError(domain.KindStore, msg, err)
}
