package ports

import (
	"context"

	"github.com/d-compost/donation-api/internal/core/domain"
)

// UpdateProfileInput is the closed set of fields a user may change on their
// own record. Nil means "leave unchanged". Identity fields (username, email,
// role) and the password hash are deliberately absent.
type UpdateProfileInput struct {
	Name     *string
	Contact  *string
	Address  *string
	Location *string
}

// IsEmpty reports whether no field was supplied.
func (in UpdateProfileInput) IsEmpty() bool {
	return in.Name == nil && in.Contact == nil && in.Address == nil && in.Location == nil
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// Create inserts a new user and returns the stored record. Duplicate
	// username/email unique-index violations map to domain.ErrUsernameTaken
	// and domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// FindByEmailOrUsername returns the first user whose email equals email
	// or whose username equals username, including the password hash.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error)

	// FindByID returns the user projected to the public profile fields; the
	// password hash is excluded at the query level.
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// UpdateProfile applies a partial update to the user's profile fields and
	// returns the updated record without the password hash.
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
}
