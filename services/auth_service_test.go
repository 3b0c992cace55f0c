package services

import (
	"errors"
	"testing"

	"roomplanner-backend/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	user, err := auth.Register("Ana", "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("default role: want ADMIN, got %s", user.Role)
	}

	token, logged, err := auth.Login("ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("login must return a token")
	}
	if logged.ID != user.ID {
		t.Fatalf("login user: want %d, got %d", user.ID, logged.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := auth.Login("ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := auth.Login("ghost@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, "test-secret")

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := auth.Register("Other", "ANA@example.com", "secret456"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}
