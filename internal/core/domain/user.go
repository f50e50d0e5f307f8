package domain

import (
	"errors"
	"time"
)

// Role classifies an account on the platform.
type Role string

const (
	RoleDonor         Role = "donor"
	RoleNGO           Role = "ngo"
	RoleCompostAgency Role = "compostAgency"
)

// Valid reports whether r is one of the known platform roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleNGO, RoleCompostAgency:
		return true
	}
	return false
}

var ErrMissingFields = errors.New("missing required fields")
var ErrMissingCredentials = errors.New("missing login credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrUsernameTaken = errors.New("username already taken")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models a platform account: a donor, an NGO, or a compost agency.
// PasswordHash never leaves the process; it is excluded from JSON and only
// the login lookup path reads it back from storage.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Contact      string    `json:"contact,omitempty"`
	Address      string    `json:"address,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`
}
