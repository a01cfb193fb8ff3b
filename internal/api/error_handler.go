package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shs/smart-home-system/internal/api/metrics"
	"github.com/shs/smart-home-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps validation failures (domain.DomainError) to 400 with the message
//     naming the violated invariant.
//   - Maps the not-found sentinels to 404. Absence and invalid input are
//     never conflated.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Validation failures are client errors, non-retryable.
	var de domain.DomainError
	if errors.As(err, &de) {
		metrics.ValidationFailuresTotal.WithLabelValues(entityLabel(de)).Inc()
		return http.StatusBadRequest, de.Error()
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrHouseNotFound):
		return http.StatusNotFound, "house not found"
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, "room not found"
	case errors.Is(err, domain.ErrDeviceNotFound):
		return http.StatusNotFound, "device not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func entityLabel(de domain.DomainError) string {
	switch de.(type) {
	case *domain.UserError:
		return "user"
	case *domain.HouseError:
		return "house"
	case *domain.RoomError:
		return "room"
	case *domain.DeviceError:
		return "device"
	}
	return "unknown"
}
