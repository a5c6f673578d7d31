package api

import (
	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the API server settings.
type Config struct {
	// Token is the bearer token front-ends present on /api routes.
	Token string
	// Limiter throttles /api requests per actor. Nil disables limiting.
	Limiter middleware.RateLimiterStore
}

// NewServer builds the echo instance with every route registered.
func NewServer(h *Handler, config Config, logger *log.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger)...)
	e.Use(middleware.Recover())

	e.GET("/health", h.handleHealth)
	e.GET("/terminal/:runtimeID", h.handleOpenTerminal)

	apiMiddleware := []echo.MiddlewareFunc{bearerAuth(config.Token), requireActor}
	if config.Limiter != nil {
		apiMiddleware = append(apiMiddleware, rateLimit(config.Limiter))
	}
	api := e.Group("/api", apiMiddleware...)
	api.POST("/containers", h.handleCreate)
	api.GET("/containers", h.handleList)
	api.GET("/containers/:owner", h.handleStatus)
	api.DELETE("/containers/:owner", h.handleDestroy)
	api.POST("/terminal", h.handleIssueTerminal)

	return e
}
