package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

// sessions tracks at most one terminal process per container.
type sessions struct {
	mu       sync.Mutex
	running  map[string]out.TerminalProcess
	launcher out.SessionLauncher
	timeout  time.Duration
	now      func() time.Time
}

func newSessions(launcher out.SessionLauncher, timeout time.Duration, now func() time.Time) *sessions {
	return &sessions{
		running:  make(map[string]out.TerminalProcess),
		launcher: launcher,
		timeout:  timeout,
		now:      now,
	}
}

func (s *sessions) getOrLaunch(ctx context.Context, runtimeID string) (domain.TerminalSession, error) {
	log := logging.FromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if proc, ok := s.running[runtimeID]; ok {
		if s.usable(proc) {
			return proc.Session(), nil
		}
		if err := proc.Stop(); err != nil {
			log.Debug("failed to stop stale terminal session", "error", err)
		}
		delete(s.running, runtimeID)
	}

	proc, err := s.launcher.Launch(ctx, runtimeID)
	if err != nil {
		return domain.TerminalSession{}, err
	}
	s.running[runtimeID] = proc
	go s.reap(runtimeID, proc)

	log.Info("terminal session started", "port", proc.Session().Port)
	return proc.Session(), nil
}

func (s *sessions) usable(proc out.TerminalProcess) bool {
	select {
	case <-proc.Done():
		return false
	default:
	}
	return s.now().Sub(proc.Session().StartedAt) < s.timeout
}

// reap forgets proc once it exits, unless it was already replaced.
func (s *sessions) reap(runtimeID string, proc out.TerminalProcess) {
	<-proc.Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[runtimeID] == proc {
		delete(s.running, runtimeID)
	}
}

func (s *sessions) stop(runtimeID string) bool {
	s.mu.Lock()
	proc, ok := s.running[runtimeID]
	delete(s.running, runtimeID)
	s.mu.Unlock()

	if ok {
		_ = proc.Stop()
	}
	return ok
}

func (s *sessions) stopAll() {
	s.mu.Lock()
	procs := s.running
	s.running = make(map[string]out.TerminalProcess)
	s.mu.Unlock()

	for _, proc := range procs {
		_ = proc.Stop()
	}
}

func (s *sessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}
