package ports

import (
	"context"

	"github.com/d-compost/donation-api/internal/core/domain"
)

// SignupInput carries the registration payload into the auth service.
type SignupInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	// Signup registers a new account and returns a signed session token
	// alongside the created user.
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)

	// Login authenticates by email or username plus password and returns a
	// signed session token alongside the user.
	Login(ctx context.Context, emailUsername, password string) (string, *domain.User, error)
}

// LoginLimiter throttles repeated failed login attempts per identifier.
type LoginLimiter interface {
	// TooMany reports whether the identifier has exhausted its attempt budget
	// for the current window.
	TooMany(ctx context.Context, identifier string) (bool, error)

	// RecordFailure counts one failed attempt against the identifier.
	RecordFailure(ctx context.Context, identifier string) error

	// Reset clears the identifier's counter after a successful login.
	Reset(ctx context.Context, identifier string) error
}
