package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-backend/internal/models"
	appErrors "ecommerce-backend/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts an active, unverified user and returns the row as stored.
// The insert runs in its own transaction (a savepoint when the session is
// already transactional) so a duplicate email leaves nothing behind.
func (r *UserRepository) Create(ctx context.Context, name, email, hashedPassword string) (*models.User, error) {
	user := &models.User{
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.First(user, user.ID).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, appErrors.Conflict(
				fmt.Sprintf("user with email %s probably already exists", email),
				appErrors.ErrUserAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *UserRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*models.User, error) {
	return r.getOne(ctx, "user_uuid = ?", userUUID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where(query, arg).Take(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Activate marks the account verified. Activating a verified account is a
// no-op that returns the stored row.
func (r *UserRepository) Activate(ctx context.Context, userUUID uuid.UUID) (*models.User, error) {
	user, err := r.GetByUUID(ctx, userUUID)
	if errors.Is(err, appErrors.ErrUserNotFound) {
		return nil, appErrors.BadInput(appErrors.ErrActivationInvalid.Error(), appErrors.ErrActivationInvalid)
	}
	if err != nil {
		return nil, err
	}

	if user.IsVerified {
		return user, nil
	}

	if err := r.db.WithContext(ctx).Model(user).Update("verified_at", true).Error; err != nil {
		return nil, fmt.Errorf("failed to activate user: %w", err)
	}
	user.IsVerified = true

	return user, nil
}

// SetActive enables or disables login for a user.
func (r *UserRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}
