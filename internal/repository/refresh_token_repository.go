package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/internal/models"
	appErrors "ecommerce-backend/pkg/errors"

	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create stores a token for userID. The caller guarantees the key is unique
// and unguessable. Expiry is stored in UTC and compared on the database clock.
func (r *RefreshTokenRepository) Create(ctx context.Context, userID uint, refreshKey string, expiresAt time.Time) error {
	token := &models.RefreshToken{
		UserID:     userID,
		RefreshKey: refreshKey,
		ExpiresAt:  expiresAt.UTC(),
	}

	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}

	return nil
}

// GetValidByKey returns the unexpired token for key with its owner loaded
// by the same query. Expired tokens stay stored but are never returned.
func (r *RefreshTokenRepository) GetValidByKey(ctx context.Context, refreshKey string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).
		Joins("User").
		Where("refresh_tokens.refresh_key = ? AND refresh_tokens.expires_at > CURRENT_TIMESTAMP", refreshKey).
		Take(&token).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return &token, nil
}
