package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/d-compost/donation-api/internal/core/ports"
)

// ProfileHandler serves the authenticated user's own record.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Profile returns the caller's record projected to the public profile fields.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Success: true,
		Message: "User profile retrieved",
		User:    user,
	})
}

// UpdateProfile applies a partial update to the caller's own record. Only
// name, contact, address, and location are writable; other keys in the
// payload are ignored.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields to change"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /update-profile [post]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), userID, ports.UpdateProfileInput{
		Name:     req.Name,
		Contact:  req.Contact,
		Address:  req.Address,
		Location: req.Location,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    user,
	})
}
