package service

import (
	"context"
	"testing"
	"time"

	"github.com/d-compost/donation-api/internal/core/domain"
	"github.com/d-compost/donation-api/internal/core/ports"
)

func strptr(s string) *string { return &s }

func seedProfileRepo(t *testing.T) (*stubUserRepo, string) {
	t.Helper()
	repo := newStubUserRepo()
	svc := NewAuthService(repo, &stubLimiter{}, "secret", time.Hour)
	_, user, err := svc.Signup(context.Background(), donorSignup())
	if err != nil {
		t.Fatalf("seed signup failed: %v", err)
	}
	return repo, user.ID
}

func TestProfileService_Get_ExcludesHash(t *testing.T) {
	repo, id := seedProfileRepo(t)
	svc := NewProfileService(repo)

	user, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("profile read leaked password hash")
	}
	if user.Username != "alice" || user.Email != "a@x.com" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestProfileService_Get_NotFound(t *testing.T) {
	repo, _ := seedProfileRepo(t)
	svc := NewProfileService(repo)

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_Update_Partial(t *testing.T) {
	repo, id := seedProfileRepo(t)
	svc := NewProfileService(repo)

	user, err := svc.Update(context.Background(), id, ports.UpdateProfileInput{
		Contact:  strptr("5551234567"),
		Location: strptr("Pune"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if user.Contact != "5551234567" || user.Location != "Pune" {
		t.Fatalf("fields not applied: %+v", user)
	}
	if user.Name != "A" {
		t.Fatalf("untouched field changed: %q", user.Name)
	}
	if user.PasswordHash != "" {
		t.Fatalf("update response leaked password hash")
	}
}

func TestProfileService_Update_EmptyIsRead(t *testing.T) {
	repo, id := seedProfileRepo(t)
	svc := NewProfileService(repo)

	user, err := svc.Update(context.Background(), id, ports.UpdateProfileInput{})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestProfileService_Update_Idempotent(t *testing.T) {
	repo, id := seedProfileRepo(t)
	svc := NewProfileService(repo)

	input := ports.UpdateProfileInput{
		Name:    strptr("Alice D"),
		Address: strptr("12 Green Lane"),
	}

	first, err := svc.Update(context.Background(), id, input)
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.Update(context.Background(), id, input)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if first.Name != second.Name || first.Address != second.Address || first.Contact != second.Contact {
		t.Fatalf("repeated update changed state: %+v vs %+v", first, second)
	}
}
