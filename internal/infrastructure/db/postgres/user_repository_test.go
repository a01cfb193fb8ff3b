package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/shs/smart-home-system/internal/core/domain"
)

func mustNewUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Alice Smith", username, "+3112345678", email, domain.PrivilegeRegular)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := mustNewUser(t, "alice", "alice@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Username != "alice" || got.Privilege != domain.PrivilegeRegular {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := mustNewUser(t, "alice", "alice@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u.Privilege = domain.PrivilegeAdmin
	u.Email = "admin@example.com"
	if err := repo.Update(ctx, u); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !got.IsAdmin() || got.Email != "admin@example.com" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := mustNewUser(t, "alice", "alice@example.com")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(ctx, u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not-found on double delete, got %v", err)
	}
}
