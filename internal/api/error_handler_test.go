package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/d-compost/donation-api/internal/core/domain"
)

func render(t *testing.T, err error, requestID string) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if requestID != "" {
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)
	}

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, "All fields are required"},
		{domain.ErrMissingCredentials, http.StatusBadRequest, "Email/username and password are required"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrEmailTaken, http.StatusConflict, "Email already in use"},
		{domain.ErrUsernameTaken, http.StatusConflict, "Username already taken"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts, please try again later"},
	}

	for _, tc := range cases {
		code, body := render(t, tc.err, "")
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body["success"] != false {
			t.Fatalf("%v: expected success=false, got %v", tc.err, body["success"])
		}
		if body["message"] != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, body["message"])
		}
		if _, present := body["error"]; present {
			t.Fatalf("%v: domain error should not carry a correlation reference", tc.err)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"), "")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["message"] != "missing authorization header" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

// Unexpected errors must not leak their cause; the response carries a generic
// message plus the request id for log correlation.
func TestErrorHandler_UnexpectedErrorSanitized(t *testing.T) {
	code, body := render(t, errors.New("mongo: socket was unexpectedly closed"), "req-123")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("expected generic message, got %q", body["message"])
	}
	if body["error"] != "req-123" {
		t.Fatalf("expected correlation reference, got %v", body["error"])
	}
	for _, v := range body {
		if s, ok := v.(string); ok && s == "mongo: socket was unexpectedly closed" {
			t.Fatalf("response leaked the underlying cause")
		}
	}
}
