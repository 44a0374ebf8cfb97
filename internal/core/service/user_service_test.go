package service

import (
	"context"
	"testing"

	"github.com/tajer/shop-finance-api/internal/core/domain"
	"github.com/tajer/shop-finance-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, role string) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:     "Omar",
		Email:    "omar@example.com",
		Role:     role,
		IsActive: true,
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserUpdateSelfIgnoresPrivilegedFields(t *testing.T) {
	repo := newStubUserRepo()
	service := NewUserService(repo, discardLogger)
	user := seedUser(t, repo, domain.RoleEmployee)

	name := "Omar K."
	role := domain.RoleOwner
	inactive := false
	updated, err := service.UpdateSelf(context.Background(), user.ID, ports.UserUpdate{
		Name:     &name,
		Role:     &role,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateSelf returned error: %v", err)
	}

	if updated.Name != "Omar K." {
		t.Errorf("expected name updated, got %q", updated.Name)
	}
	if updated.Role != domain.RoleEmployee {
		t.Errorf("expected role unchanged, got %q", updated.Role)
	}
	if !updated.IsActive {
		t.Error("expected active flag unchanged")
	}
}

func TestUserDeactivate(t *testing.T) {
	repo := newStubUserRepo()
	service := NewUserService(repo, discardLogger)
	user := seedUser(t, repo, domain.RoleEmployee)

	if err := service.Deactivate(context.Background(), user.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), user.ID)
	if stored.IsActive {
		t.Error("expected user deactivated")
	}
}

func TestUserUpdateByAdminChangesRole(t *testing.T) {
	repo := newStubUserRepo()
	service := NewUserService(repo, discardLogger)
	user := seedUser(t, repo, domain.RoleEmployee)

	role := domain.RoleManager
	updated, err := service.UpdateByAdmin(context.Background(), user.ID, ports.UserUpdate{Role: &role})
	if err != nil {
		t.Fatalf("UpdateByAdmin returned error: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Errorf("expected role manager, got %q", updated.Role)
	}
	if updated.Name != "Omar" {
		t.Errorf("expected name unchanged, got %q", updated.Name)
	}
}
