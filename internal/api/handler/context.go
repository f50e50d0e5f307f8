package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the subject id injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user_id
// proves the guard ran and the token carried a subject.
func ctxIdentity(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
