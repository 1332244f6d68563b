package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/events"
	"ecommerce-backend/internal/logger"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/validator"
	appErrors "ecommerce-backend/pkg/errors"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ActivationPath = "/api/v1/auth/activate/"

type AuthService struct {
	store    *repository.Store
	notifier Notifier
	config   *config.Config
}

func NewAuthService(store *repository.Store, notifier Notifier, cfg *config.Config) *AuthService {
	return &AuthService{
		store:    store,
		notifier: notifier,
		config:   cfg,
	}
}

// Register creates an unverified account and announces its activation link.
func (s *AuthService) Register(ctx context.Context, request *RegisterRequest) (*UserResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, validationError(err)
	}

	if err := utils.ValidatePassword(request.Password); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeWeakPassword, err.Error(), err)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Users().Create(ctx, request.Name, request.Email, hashedPassword)
	if err != nil {
		return nil, err
	}

	event := events.UserRegistered{
		UserUUID:       user.UserUUID.String(),
		Name:           user.Name,
		Email:          user.Email,
		ActivationLink: s.ActivationLink(user.UserUUID),
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.notifier.UserRegistered(ctx, event); err != nil {
		logger.Warn("Failed to publish registration event",
			zap.String("email", user.Email),
			zap.Error(err),
		)
	}

	logger.Info("User registered", zap.Uint("user_id", user.ID))

	return NewUserResponse(user), nil
}

func (s *AuthService) ActivationLink(userUUID uuid.UUID) string {
	return s.config.Server.PublicURL + ActivationPath + userUUID.String()
}

func (s *AuthService) Activate(ctx context.Context, userUUID uuid.UUID) (*UserResponse, error) {
	user, err := s.store.Users().Activate(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(user), nil
}

// Login checks credentials and issues an access token plus a refresh key.
// Only the hash of the refresh key is stored.
func (s *AuthService) Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, validationError(err)
	}

	user, err := s.store.Users().GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, appErrors.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.HashedPassword, request.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, appErrors.ErrUserInactive
	}
	if !user.IsVerified {
		return nil, appErrors.ErrEmailNotVerified
	}

	response, err := s.accessResponse(user)
	if err != nil {
		return nil, err
	}

	refreshKey, err := utils.NewRefreshKey()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(time.Duration(s.config.JWT.RefreshExpiryHours) * time.Hour)
	if err := s.store.RefreshTokens().Create(ctx, user.ID, utils.HashRefreshKey(refreshKey), expiresAt); err != nil {
		return nil, err
	}
	response.RefreshToken = refreshKey

	return response, nil
}

// Refresh exchanges a live refresh key for a new access token. The stored
// refresh token is left untouched.
func (s *AuthService) Refresh(ctx context.Context, refreshKey string) (*AuthResponse, error) {
	if refreshKey == "" {
		return nil, appErrors.ErrTokenInvalid
	}

	token, err := s.store.RefreshTokens().GetValidByKey(ctx, utils.HashRefreshKey(refreshKey))
	if err != nil {
		return nil, err
	}
	if token.User == nil {
		return nil, appErrors.ErrTokenInvalid
	}
	if !token.User.IsActive {
		return nil, appErrors.ErrUserInactive
	}

	return s.accessResponse(token.User)
}

func (s *AuthService) Profile(ctx context.Context, userUUID uuid.UUID) (*UserResponse, error) {
	user, err := s.store.Users().GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return NewUserResponse(user), nil
}

// SetUserActive enables or disables login for userUUID on behalf of an admin.
// Admins cannot lock themselves out.
func (s *AuthService) SetUserActive(ctx context.Context, actorUUID, userUUID uuid.UUID, request *SetActiveRequest) (*UserResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, validationError(err)
	}
	if actorUUID == userUUID {
		return nil, appErrors.ErrInsufficientPermissions
	}

	user, err := s.store.Users().GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	if err := s.store.Users().SetActive(ctx, user.ID, *request.IsActive); err != nil {
		return nil, err
	}
	user.IsActive = *request.IsActive

	logger.Info("User activity changed",
		zap.Uint("user_id", user.ID),
		zap.Bool("is_active", user.IsActive),
	)

	return NewUserResponse(user), nil
}

func (s *AuthService) accessResponse(user *models.User) (*AuthResponse, error) {
	access, err := utils.GenerateAccessToken(
		user.ID,
		user.UserUUID.String(),
		user.Email,
		user.Role(),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &AuthResponse{
		User:        NewUserResponse(user),
		AccessToken: access.Token,
		ExpiresAt:   access.ExpiresAt.Unix(),
	}, nil
}
