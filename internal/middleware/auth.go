package middleware

import (
	"net/http"
	"strings"

	"ecommerce-backend/internal/config"
	appErrors "ecommerce-backend/pkg/errors"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	UserIDKey   = "userID"
	UserUUIDKey = "userUUID"
	EmailKey    = "email"
	RoleKey     = "role"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		userUUID, err := uuid.Parse(claims.UserUUID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, appErrors.ErrInvalidToken.Error())
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserUUIDKey, userUUID)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleKey, claims.Role)

		c.Next()
	}
}

// CurrentUser returns the authenticated user's id and uuid.
func CurrentUser(c *gin.Context) (uint, uuid.UUID, bool) {
	id, okID := c.Get(UserIDKey)
	userUUID, okUUID := c.Get(UserUUIDKey)
	if !okID || !okUUID {
		return 0, uuid.Nil, false
	}

	userID, ok := id.(uint)
	if !ok {
		return 0, uuid.Nil, false
	}
	parsed, ok := userUUID.(uuid.UUID)
	if !ok {
		return 0, uuid.Nil, false
	}
	return userID, parsed, true
}
