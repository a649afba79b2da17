package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundforge/platform/internal/db/repositories"
)

func TestAccountService_DeactivateReactivateRoundTrip(t *testing.T) {
	db := setupUserTestDB(t)
	user := seedUser(t, db, "orig-password")
	svc := NewAccountService(repositories.NewUserRepositoryGORM(db), []byte("test-secret"), time.Hour)

	token, err := svc.Deactivate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a reactivation token")
	}

	users := repositories.NewUserRepositoryGORM(db)
	if _, err := users.GetActiveByID(context.Background(), user.ID); !errors.Is(err, repositories.ErrUserNotFound) {
		t.Fatalf("deactivated user must not resolve as active, got %v", err)
	}

	restored, err := svc.Reactivate(context.Background(), token)
	if err != nil {
		t.Fatalf("Reactivate failed: %v", err)
	}
	if restored.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, restored.ID)
	}

	if _, err := users.GetActiveByID(context.Background(), user.ID); err != nil {
		t.Errorf("reactivated user must resolve as active, got %v", err)
	}
}

func TestAccountService_ReactivateTokenIsSingleUse(t *testing.T) {
	db := setupUserTestDB(t)
	user := seedUser(t, db, "orig-password")
	svc := NewAccountService(repositories.NewUserRepositoryGORM(db), []byte("test-secret"), time.Hour)

	token, err := svc.Deactivate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	if _, err := svc.Reactivate(context.Background(), token); err != nil {
		t.Fatalf("first Reactivate failed: %v", err)
	}
	if _, err := svc.Reactivate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken on reuse, got %v", err)
	}
}

func TestAccountService_ReactivateGarbageToken(t *testing.T) {
	db := setupUserTestDB(t)
	svc := NewAccountService(repositories.NewUserRepositoryGORM(db), []byte("test-secret"), time.Hour)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := svc.Reactivate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestAccountService_ReactivateExpiredToken(t *testing.T) {
	db := setupUserTestDB(t)
	user := seedUser(t, db, "orig-password")
	svc := NewAccountService(repositories.NewUserRepositoryGORM(db), []byte("test-secret"), -time.Minute)

	token, err := svc.Deactivate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	if _, err := svc.Reactivate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
