package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bnema/boxkeep/internal/adapters/dto"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

// statusFor maps a failure kind to its HTTP status.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthorized:
		return http.StatusForbidden
	case domain.KindAlreadyOwnsContainer, domain.KindNameInUse, domain.KindConflict:
		return http.StatusConflict
	case domain.KindNoContainer, domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindRuntime:
		return http.StatusBadGateway
	case domain.KindStore:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorHandler renders domain errors and echo errors as dto.ErrorResponse.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		status int
		body   dto.ErrorResponse
		he     *echo.HTTPError
	)
	kind := domain.KindOf(err)
	switch {
	case kind == domain.KindInternal && errors.As(err, &he):
		status = he.Code
		body.Error = http.StatusText(he.Code)
		if msg, ok := he.Message.(string); ok && msg != "" {
			body.Error = msg
		}
	default:
		status = statusFor(kind)
		body = dto.ErrorResponse{Kind: string(kind), Error: err.Error()}
		if status >= http.StatusInternalServerError {
			logging.FromCtx(c.Request().Context()).Error("request failed", "kind", kind, "error", err)
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, body)
}
