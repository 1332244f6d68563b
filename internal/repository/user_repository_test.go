package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	appErrors "ecommerce-backend/pkg/errors"

	"github.com/google/uuid"
)

func TestCreateUserMaterializesDefaults(t *testing.T) {
	store := newStore(t)

	user, err := store.Users().Create(context.Background(), "Ann", "ann@example.com", "hashed")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if user.UserUUID == uuid.Nil {
		t.Fatalf("expected generated user uuid")
	}
	if !user.IsActive || user.IsVerified {
		t.Fatalf("expected active unverified user, got active=%v verified=%v", user.IsActive, user.IsVerified)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
	if user.IsAdmin != nil {
		t.Fatalf("expected is_admin to be null")
	}
}

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	createUser(t, store, "dup@example.com")

	_, err := store.Users().Create(ctx, "Other", "dup@example.com", "hashed")
	if !errors.Is(err, appErrors.ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
	if !appErrors.HasCode(err, appErrors.CodeConflict) {
		t.Fatalf("expected conflict code, got %v", err)
	}
	if !strings.Contains(err.Error(), "dup@example.com") {
		t.Fatalf("expected email in message, got %q", err.Error())
	}

	var n int64
	if err := store.DB.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one user, got %d", n)
	}
}

func TestCreateUserConflictInsideTransactionKeepsOuterWork(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	createUser(t, store, "taken@example.com")

	err := store.WithTx(ctx, func(tx *repository.Store) error {
		if _, err := tx.Users().Create(ctx, "Dup", "taken@example.com", "hashed"); !errors.Is(err, appErrors.ErrUserAlreadyExists) {
			t.Fatalf("expected conflict inside transaction, got %v", err)
		}
		_, err := tx.Users().Create(ctx, "Fresh", "fresh@example.com", "hashed")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	if n := countRows(t, store.DB, &models.User{}); n != 2 {
		t.Fatalf("expected 2 users, got %d", n)
	}
}

func TestGetUserByEmailAndUUID(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	created := createUser(t, store, "find@example.com")

	byEmail, err := store.Users().GetByEmail(ctx, "find@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, byEmail.ID)
	}

	byUUID, err := store.Users().GetByUUID(ctx, created.UserUUID)
	if err != nil {
		t.Fatalf("GetByUUID() error = %v", err)
	}
	if byUUID.Email != "find@example.com" {
		t.Fatalf("unexpected user %+v", byUUID)
	}

	if _, err := store.Users().GetByEmail(ctx, "missing@example.com"); !errors.Is(err, appErrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := store.Users().GetByUUID(ctx, uuid.New()); !errors.Is(err, appErrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := createUser(t, store, "activate@example.com")

	var updates int
	countCallbacks(t, store.DB, "update", &updates)

	first, err := store.Users().Activate(ctx, user.UserUUID)
	if err != nil {
		t.Fatalf("first Activate() error = %v", err)
	}
	if !first.IsVerified {
		t.Fatalf("expected verified after activation")
	}
	if updates != 1 {
		t.Fatalf("expected one update, got %d", updates)
	}

	second, err := store.Users().Activate(ctx, user.UserUUID)
	if err != nil {
		t.Fatalf("second Activate() error = %v", err)
	}
	if !second.IsVerified || second.ID != first.ID {
		t.Fatalf("expected same verified user, got %+v", second)
	}
	if updates != 1 {
		t.Fatalf("expected no additional write, got %d updates", updates)
	}

	stored, err := store.Users().GetByUUID(ctx, user.UserUUID)
	if err != nil {
		t.Fatalf("GetByUUID() error = %v", err)
	}
	if !stored.IsVerified {
		t.Fatalf("expected verified flag persisted")
	}
}

func TestActivateUnknownUUIDIsBadInput(t *testing.T) {
	store := newStore(t)

	_, err := store.Users().Activate(context.Background(), uuid.New())
	if !errors.Is(err, appErrors.ErrActivationInvalid) {
		t.Fatalf("expected ErrActivationInvalid, got %v", err)
	}
	if !appErrors.HasCode(err, appErrors.CodeBadInput) {
		t.Fatalf("expected bad input code, got %v", err)
	}
}

func TestSetActive(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := createUser(t, store, "inactive@example.com")

	if err := store.Users().SetActive(ctx, user.ID, false); err != nil {
		t.Fatalf("SetActive() error = %v", err)
	}
	stored, err := store.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected inactive user")
	}

	if err := store.Users().SetActive(ctx, 9999, true); !errors.Is(err, appErrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
