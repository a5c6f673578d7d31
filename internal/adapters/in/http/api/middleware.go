package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

// HeaderActorID carries the chat identity of the user the front-end acts for.
const HeaderActorID = "X-Actor-ID"

const actorKey = "actor"

// requestLogger attaches logger to the request context and writes one access
// line per request.
func requestLogger(logger *log.Logger) []echo.MiddlewareFunc {
	attach := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logging.WithLogger(req.Context(), logger)
			ctx = logging.WithFields(ctx,
				logging.FieldLayer, "adapter",
				logging.FieldAdapter, "http",
				logging.FieldMethod, req.Method,
				logging.FieldPath, c.Path(),
			)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}

	access := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []any{
				logging.FieldLayer, "adapter",
				logging.FieldAdapter, "http",
				logging.FieldMethod, v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.Round(time.Microsecond),
				"remote_ip", v.RemoteIP,
			}
			if actor := c.Request().Header.Get(HeaderActorID); actor != "" {
				keyvals = append(keyvals, logging.FieldActor, actor)
			}
			if v.Error != nil {
				keyvals = append(keyvals, "error", v.Error)
				logger.Warn("request", keyvals...)
				return nil
			}
			logger.Info("request", keyvals...)
			return nil
		},
	})

	return []echo.MiddlewareFunc{attach, access}
}

// bearerAuth accepts requests carrying the configured front-end token.
func bearerAuth(token string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, _ echo.Context) (bool, error) {
			// An unset token locks the API rather than opening it.
			if token == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			logging.FromCtx(c.Request().Context()).Warn("rejected api request", "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing bearer token")
		},
	})
}

// requireActor reads the acting identity from HeaderActorID.
func requireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor := domain.NormalizeOwner(c.Request().Header.Get(HeaderActorID))
		if actor == "" {
			return domain.NewError(domain.KindInvalidArgument, HeaderActorID+" header is required", nil)
		}
		c.Set(actorKey, actor)
		req := c.Request()
		c.SetRequest(req.WithContext(logging.WithFields(req.Context(), logging.FieldActor, actor)))
		return next(c)
	}
}

func actorFrom(c echo.Context) domain.OwnerID {
	actor, _ := c.Get(actorKey).(domain.OwnerID)
	return actor
}

// rateLimit limits each actor independently.
func rateLimit(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return actorFrom(c).String(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			logging.FromCtx(c.Request().Context()).Warn("rate limit exceeded", logging.FieldActor, identifier)
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	})
}
