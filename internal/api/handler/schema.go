package handler

import "github.com/d-compost/donation-api/internal/core/domain"

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=donor ngo compostAgency"`
}

type loginRequest struct {
	EmailUsername string `json:"emailUsername" validate:"required"`
	Password      string `json:"password"      validate:"required"`
}

// updateProfileRequest binds only the fields a user may change on their own
// record. Any other key in the payload (role, email, username, password) is
// dropped at decode time.
type updateProfileRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1"`
	Contact  *string `json:"contact"`
	Address  *string `json:"address"  validate:"omitempty,min=1"`
	Location *string `json:"location" validate:"omitempty,min=1"`
}

// --- Response envelopes ---

// authResponse is returned by /signup and /create-session.
type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// profileResponse is returned by /profile and /update-profile.
type profileResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
