package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/boxkeep/internal/adapters/in/http/api"
	"github.com/bnema/boxkeep/internal/adapters/out/ratelimit"
	"github.com/bnema/boxkeep/internal/adapters/out/ttyd"
	"github.com/bnema/boxkeep/internal/logging"
	"github.com/bnema/boxkeep/internal/usecase/terminal"
)

const (
	shutdownTimeout = 30 * time.Second
	janitorInterval = time.Minute
	limiterIdleTTL  = 10 * time.Minute
)

// SetupLogger installs the process logger described by cfg.
func SetupLogger(cfg Config) *log.Logger {
	return logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File: logging.FileOptions{
			Path:       cfg.Log.File.Path,
			MaxSize:    cfg.Log.File.MaxSize,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAge:     cfg.Log.File.MaxAge,
		},
	})
}

// Run starts the HTTP API and terminal gateway and blocks until SIGINT or
// SIGTERM.
func Run(ctx context.Context, cfg Config) error {
	logger := SetupLogger(cfg)
	ctx = logging.WithLogger(ctx, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := createServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("shutdown incomplete", "error", err)
		}
	}()

	if err := svc.runtime.Ping(ctx); err != nil {
		logger.Warn("docker is not reachable, commands will fail until it is", "error", err)
	}

	terminals := terminal.NewService(svc.guard, svc.store, svc.store, svc.runtime,
		ttyd.NewLauncher(ttyd.Config{
			Path:  cfg.Terminal.TTYDPath,
			Shell: cfg.Terminal.Shell,
		}),
		svc.bus,
		terminal.Config{
			PublicURL:      cfg.Terminal.PublicURL,
			TokenTTL:       cfg.Terminal.TokenTTL,
			SessionTimeout: cfg.Terminal.SessionTimeout,
		})
	defer terminals.Close()
	if err := svc.bus.Subscribe(terminal.NewSessionReaper(terminals)); err != nil {
		return err
	}
	go terminals.RunJanitor(ctx, janitorInterval)

	if cfg.FrontendToken == "" {
		logger.Warn("frontend.token is not set, the /api routes reject every request")
	}
	apiConfig := api.Config{Token: cfg.FrontendToken}
	if cfg.API.RateLimit > 0 {
		apiConfig.Limiter = ratelimit.NewMemoryStore(cfg.API.RateLimit, cfg.API.Burst, limiterIdleTTL)
	}
	server := api.NewServer(api.NewHandler(svc.bindings, terminals, svc.health), apiConfig, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("boxkeep listening", "address", cfg.Server.Listen, "storage", cfg.Storage.Driver)
		if err := server.Start(cfg.Server.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
