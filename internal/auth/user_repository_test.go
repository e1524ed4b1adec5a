package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestUserRepository_CreateAndGetByID(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	hash, _ := HashPassword("password123")
	user := &User{
		Username:     "moneypenny",
		PasswordHash: hash,
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.ID == "" {
		t.Fatal("Create() should generate an ID")
	}
	if !strings.HasPrefix(user.ID, "usr-") {
		t.Errorf("ID = %q, want usr- prefix", user.ID)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Username != "moneypenny" {
		t.Errorf("Username = %q, want %q", got.Username, "moneypenny")
	}
	if got.PasswordHash != hash {
		t.Error("PasswordHash should round-trip unchanged")
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps should be populated")
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	hash, _ := HashPassword("password123")
	user := &User{Username: "q", PasswordHash: hash}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByUsername(ctx, "q")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %q, want %q", got.ID, user.ID)
	}

	if _, err := repo.GetByUsername(ctx, "blofeld"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByUsername(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepository(testDB(t))

	_, err := repo.GetByID(context.Background(), "usr-missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	hash, _ := HashPassword("password123")
	if err := repo.Create(ctx, &User{Username: "bond", PasswordHash: hash}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Create(ctx, &User{Username: "bond", PasswordHash: hash})
	if !errors.Is(err, ErrUsernameExists) {
		t.Errorf("Create(duplicate) error = %v, want ErrUsernameExists", err)
	}
}

func TestUserRepository_Count(t *testing.T) {
	repo := NewUserRepository(testDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}

	hash, _ := HashPassword("password123")
	for _, name := range []string{"bond", "moneypenny", "q"} {
		if err := repo.Create(ctx, &User{Username: name, PasswordHash: hash}); err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
	}

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}
