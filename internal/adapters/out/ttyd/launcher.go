// Package ttyd launches ttyd web terminals attached to containers through
// docker exec.
package ttyd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ out.SessionLauncher = (*Launcher)(nil)

// Config holds launcher settings.
type Config struct {
	// Path to the ttyd binary.
	Path string
	// Shell started inside the container.
	Shell string
	// Docker CLI used for exec.
	DockerPath   string
	ReadyTimeout time.Duration
}

// Launcher starts one ttyd process per session.
type Launcher struct {
	config Config
}

// NewLauncher creates a launcher, filling in defaults.
func NewLauncher(config Config) *Launcher {
	if config.Path == "" {
		config.Path = "ttyd"
	}
	if config.Shell == "" {
		config.Shell = "/bin/bash"
	}
	if config.DockerPath == "" {
		config.DockerPath = "docker"
	}
	if config.ReadyTimeout <= 0 {
		config.ReadyTimeout = 5 * time.Second
	}
	return &Launcher{config: config}
}

// Launch starts ttyd on a free local port and waits until it accepts
// connections. ttyd runs with --once, so it exits when the client leaves.
func (l *Launcher) Launch(ctx context.Context, runtimeID string) (out.TerminalProcess, error) {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "adapter",
		logging.FieldAdapter, "ttyd",
		logging.FieldAction, "Launch",
		"runtime_id", runtimeID,
	)
	log := logging.FromCtx(ctx)

	port, err := freePort()
	if err != nil {
		return nil, fmt.Errorf("failed to find a free port: %w", err)
	}

	// Not bound to ctx: the session outlives the request that opened it.
	cmd := exec.Command(l.config.Path,
		"--port", strconv.Itoa(port),
		"--once",
		l.config.DockerPath, "exec", "-it", runtimeID, l.config.Shell,
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ttyd: %w", err)
	}

	proc := &process{
		cmd:  cmd,
		done: make(chan struct{}),
		session: domain.TerminalSession{
			RuntimeID: runtimeID,
			Port:      port,
			StartedAt: time.Now().UTC(),
		},
	}
	go proc.wait()

	if err := waitForPort(ctx, port, l.config.ReadyTimeout, proc.done); err != nil {
		_ = proc.Stop()
		return nil, err
	}

	log.Debug("ttyd listening", "port", port, "pid", cmd.Process.Pid)
	return proc, nil
}

type process struct {
	cmd      *exec.Cmd
	done     chan struct{}
	session  domain.TerminalSession
	stopOnce sync.Once
}

func (p *process) Session() domain.TerminalSession { return p.session }

func (p *process) Done() <-chan struct{} { return p.done }

// Stop kills the process. Stopping an exited process is a no-op.
func (p *process) Stop() error {
	var err error
	p.stopOnce.Do(func() {
		if killErr := p.cmd.Process.Kill(); killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
			err = killErr
		}
	})
	return err
}

func (p *process) wait() {
	_ = p.cmd.Wait()
	close(p.done)
}

func freePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// waitForPort polls until port accepts TCP connections, the process exits,
// ctx is done or timeout elapses.
func waitForPort(ctx context.Context, port int, timeout time.Duration, exited <-chan struct{}) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return nil
		}

		select {
		case <-exited:
			return fmt.Errorf("ttyd exited before listening on port %d", port)
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("ttyd did not listen on port %d within %s", port, timeout)
		case <-ticker.C:
		}
	}
}
