package service

import (
	"context"

	"github.com/d-compost/donation-api/internal/core/domain"
	"github.com/d-compost/donation-api/internal/core/ports"
)

// ProfileService reads and updates the authenticated user's own record.
type ProfileService struct {
	repo ports.UserRepository
}

func NewProfileService(repo ports.UserRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// Update applies the bounded partial update. The input type only carries
// profile fields, so identity fields and the role can never be written
// through this path. An empty payload degenerates to a read.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.IsEmpty() {
		return s.repo.FindByID(ctx, userID)
	}
	return s.repo.UpdateProfile(ctx, userID, input)
}
