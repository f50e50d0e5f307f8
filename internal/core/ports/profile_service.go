package ports

import (
	"context"

	"github.com/d-compost/donation-api/internal/core/domain"
)

type ProfileService interface {
	// Get returns the caller's own record projected to the public profile
	// fields.
	Get(ctx context.Context, userID string) (*domain.User, error)

	// Update applies a bounded partial update to the caller's own record and
	// returns the result.
	Update(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
}
