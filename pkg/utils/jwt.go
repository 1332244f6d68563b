package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	appErrors "ecommerce-backend/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

const refreshKeyBytes = 48

type Claims struct {
	UserID   uint   `json:"uid"`
	UserUUID string `json:"uuid"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// GenerateAccessToken signs an HS256 access token for the given user.
func GenerateAccessToken(userID uint, userUUID, email, role, secret string, expiryHours int) (*AccessToken, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(expiryHours) * time.Hour)

	claims := Claims{
		UserID:   userID,
		UserUUID: userUUID,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies signature and expiry. Every failure wraps
// ErrInvalidToken.
func ValidateToken(token, secret string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, appErrors.ErrInvalidToken
	}

	return claims, nil
}

// NewRefreshKey returns an opaque random key handed to the client.
// Only its hash is persisted.
func NewRefreshKey() (string, error) {
	buf := make([]byte, refreshKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func HashRefreshKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
