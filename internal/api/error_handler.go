package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/d-compost/donation-api/internal/core/domain"
)

// errorResponse is the canonical envelope for all API failures. Error carries
// the request id on 5xx responses so a client report can be matched to the
// full log record; the underlying cause itself never leaves the process.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success":false,"message":...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, ref := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Message: msg, Error: ref})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, msg, ref string) {
	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors → deterministic HTTP codes. Unknown-user and
	// wrong-password both arrive as ErrInvalidCredentials so the message
	// cannot be used to enumerate accounts.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "All fields are required", ""
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Email/username and password are required", ""
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "Invalid role", ""
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", ""
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Email already in use", ""
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "Username already taken", ""
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts, please try again later", ""
	}

	// Unexpected error: log the real cause with the request id, return a
	// generic message plus the id as a correlation reference.
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", requestID).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", requestID
}
