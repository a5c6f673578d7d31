// Package api implements the HTTP command API used by chat front-ends.
package api

import (
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bnema/boxkeep/internal/adapters/dto"
	"github.com/bnema/boxkeep/internal/boundaries/in"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

// Handler serves the container and terminal endpoints.
type Handler struct {
	bindings in.BindingService
	terminal in.TerminalService
	health   in.HealthService
}

// NewHandler creates a new API handler.
func NewHandler(bindings in.BindingService, terminal in.TerminalService, health in.HealthService) *Handler {
	return &Handler{bindings: bindings, terminal: terminal, health: health}
}

func (h *Handler) handleHealth(c echo.Context) error {
	report := h.health.Check(c.Request().Context())
	status := http.StatusOK
	if report.Status != domain.HealthOK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, dto.FromHealthReport(report))
}

func (h *Handler) handleCreate(c echo.Context) error {
	var req dto.CreateContainerRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewError(domain.KindInvalidArgument, "invalid request body", err)
	}

	rec, err := h.bindings.Create(c.Request().Context(), actorFrom(c),
		domain.NormalizeOwner(req.Owner), req.Image, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.FromRecord(*rec))
}

func (h *Handler) handleDestroy(c echo.Context) error {
	rec, err := h.bindings.Destroy(c.Request().Context(), actorFrom(c), domain.NormalizeOwner(c.Param("owner")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromRecord(*rec))
}

func (h *Handler) handleStatus(c echo.Context) error {
	view, err := h.bindings.Status(c.Request().Context(), domain.NormalizeOwner(c.Param("owner")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromView(*view))
}

func (h *Handler) handleList(c echo.Context) error {
	var opts domain.ListOptions
	if raw := c.QueryParam("all"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.NewError(domain.KindInvalidArgument, "all must be a boolean", err)
		}
		opts.IncludeDestroyed = all
	}

	views, err := h.bindings.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.FromViews(views))
}

func (h *Handler) handleIssueTerminal(c echo.Context) error {
	link, err := h.terminal.IssueLink(c.Request().Context(), actorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.TerminalLinkResponse{
		URL:           link.URL,
		ContainerName: link.ContainerName,
		ExpiresAt:     link.ExpiresAt,
	})
}

// handleOpenTerminal redeems a link and redirects to the terminal process
// listening on the same host.
func (h *Handler) handleOpenTerminal(c echo.Context) error {
	ctx := c.Request().Context()
	runtimeID := c.Param("runtimeID")

	session, err := h.terminal.OpenSession(ctx, runtimeID, c.QueryParam("token"))
	if err != nil {
		return err
	}

	host := c.Request().Host
	if hostname, _, splitErr := net.SplitHostPort(host); splitErr == nil {
		host = hostname
	}
	target := c.Scheme() + "://" + net.JoinHostPort(host, strconv.Itoa(session.Port))

	logging.FromCtx(ctx).Info("redirecting to terminal", "runtime_id", runtimeID, "port", session.Port)
	return c.Redirect(http.StatusFound, target)
}
