package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/d-compost/donation-api/internal/core/domain"
	"github.com/d-compost/donation-api/internal/core/ports"
)

// AuthService implements registration and session creation.
type AuthService struct {
	repo      ports.UserRepository
	limiter   ports.LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, limiter ports.LoginLimiter, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Signup registers a new account. Emails are stored trimmed and lower-cased,
// usernames trimmed as entered. The uniqueness pre-check exists for the
// friendlier conflict message; the unique indexes in storage are the actual
// enforcement point and the repository maps their violations to the same
// errors.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	name := strings.TrimSpace(input.Name)
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || username == "" || email == "" || input.Password == "" || input.Role == "" {
		return "", nil, domain.ErrMissingFields
	}

	role := domain.Role(input.Role)
	if !role.Valid() {
		return "", nil, domain.ErrInvalidRole
	}

	existing, err := s.repo.FindByEmailOrUsername(ctx, email, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if existing != nil {
		// Email takes priority when both fields collide.
		if existing.Email == email {
			return "", nil, domain.ErrEmailTaken
		}
		return "", nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login authenticates by email or username. Unknown identifier and wrong
// password both surface as ErrInvalidCredentials so responses cannot be used
// to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, emailUsername, password string) (string, *domain.User, error) {
	identifier := strings.TrimSpace(emailUsername)
	if identifier == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	if s.limiter != nil {
		// A limiter outage must not lock out logins; fail open.
		if blocked, err := s.limiter.TooMany(ctx, identifier); err == nil && blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmailOrUsername(ctx, strings.ToLower(identifier), identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, identifier)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, identifier)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, identifier)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, identifier string) {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, identifier)
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
