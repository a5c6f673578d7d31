// Package terminal issues one-time web terminal links and runs the terminal
// sessions they open.
package terminal

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/boxkeep/internal/boundaries/in"
	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ in.TerminalService = (*Service)(nil)

const tokenBytes = 16

// Config holds terminal settings.
type Config struct {
	PublicURL      string
	TokenTTL       time.Duration
	SessionTimeout time.Duration
}

// Service implements the TerminalService interface.
type Service struct {
	guard    in.PolicyGuard
	bindings out.BindingStore
	tokens   out.TokenStore
	runtime  out.ContainerRuntime
	events   out.EventPublisher
	sessions *sessions
	config   Config
	now      func() time.Time
}

// NewService creates a terminal service. events may be nil.
func NewService(guard in.PolicyGuard, bindings out.BindingStore, tokens out.TokenStore, runtime out.ContainerRuntime, launcher out.SessionLauncher, events out.EventPublisher, config Config) *Service {
	if config.TokenTTL <= 0 {
		config.TokenTTL = time.Hour
	}
	if config.SessionTimeout <= 0 {
		config.SessionTimeout = time.Hour
	}
	now := func() time.Time { return time.Now().UTC() }
	return &Service{
		guard:    guard,
		bindings: bindings,
		tokens:   tokens,
		runtime:  runtime,
		events:   events,
		sessions: newSessions(launcher, config.SessionTimeout, now),
		config:   config,
		now:      now,
	}
}

// IssueLink creates a one-time link to the actor's own running container.
func (s *Service) IssueLink(ctx context.Context, actor domain.OwnerID) (*domain.TerminalLink, error) {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "IssueLink",
		logging.FieldActor, actor,
	)
	log := logging.FromCtx(ctx)

	if !s.guard.IsAuthorized(actor) {
		return nil, domain.NewError(domain.KindUnauthorized, "actor "+actor.String()+" is not authorized", nil)
	}

	rec, err := s.bindings.FindActive(ctx, actor)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.State != domain.RecordActive || rec.RuntimeID == "" {
		return nil, domain.NewError(domain.KindNoContainer, "owner "+actor.String()+" has no running container", nil)
	}

	secret, err := newToken()
	if err != nil {
		return nil, domain.NewError(domain.KindInternal, "failed to generate token", err)
	}

	token := domain.TerminalToken{
		RuntimeID: rec.RuntimeID,
		Owner:     actor,
		Token:     secret,
		ExpiresAt: s.now().Add(s.config.TokenTTL),
	}
	if err := s.tokens.SaveTerminalToken(ctx, token); err != nil {
		return nil, err
	}

	log.Info("terminal link issued", "runtime_id", rec.ShortRuntimeID(), "expires_at", token.ExpiresAt)
	if s.events != nil {
		if err := s.events.Publish(domain.EventTerminalIssued, domain.ContainerEventPayload{
			Actor:     actor,
			Owner:     actor,
			RecordID:  rec.ID,
			RuntimeID: rec.RuntimeID,
			Name:      rec.Name,
		}); err != nil {
			log.Warn("failed to publish event", "error", err)
		}
	}

	return &domain.TerminalLink{
		URL:           s.linkFor(rec.RuntimeID, secret),
		ContainerName: rec.Name,
		ExpiresAt:     token.ExpiresAt,
	}, nil
}

// OpenSession redeems token and returns a running terminal session for the
// container, reusing a live one when possible.
func (s *Service) OpenSession(ctx context.Context, runtimeID, token string) (*domain.TerminalSession, error) {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "OpenSession",
		"runtime_id", runtimeID,
	)
	log := logging.FromCtx(ctx)

	if token == "" {
		return nil, domain.NewError(domain.KindInvalidArgument, "token query parameter is required", nil)
	}

	if _, err := s.tokens.ConsumeTerminalToken(ctx, runtimeID, token, s.now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.KindUnauthorized, "invalid or expired token", nil)
		}
		return nil, err
	}

	if _, err := s.runtime.InspectContainer(ctx, runtimeID); err != nil {
		if errors.Is(err, domain.ErrContainerNotFound) {
			return nil, domain.NewError(domain.KindNotFound, "container not found", err)
		}
		return nil, domain.NewError(domain.KindRuntime, "failed to inspect container", err)
	}

	session, err := s.sessions.getOrLaunch(ctx, runtimeID)
	if err != nil {
		log.Error("failed to start terminal session", "error", err)
		return nil, domain.NewError(domain.KindInternal, "failed to start terminal session", err)
	}
	return &session, nil
}

// PurgeExpired drops expired tokens.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	return s.tokens.PurgeExpiredTokens(ctx, s.now())
}

// RunJanitor purges expired tokens every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	log := logging.FromCtx(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeExpired(ctx)
			if err != nil {
				log.Warn("failed to purge terminal tokens", "error", err)
			} else if n > 0 {
				log.Debug("purged terminal tokens", "count", n)
			}
		}
	}
}

// Close stops every running session.
func (s *Service) Close() {
	s.sessions.stopAll()
}

func (s *Service) linkFor(runtimeID, token string) string {
	base := strings.TrimRight(s.config.PublicURL, "/")
	return fmt.Sprintf("%s/terminal/%s?token=%s", base, url.PathEscape(runtimeID), url.QueryEscape(token))
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
