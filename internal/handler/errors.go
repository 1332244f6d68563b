package handler

import (
	"errors"
	"net/http"

	"ecommerce-backend/internal/logger"
	"ecommerce-backend/internal/middleware"
	appErrors "ecommerce-backend/pkg/errors"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.CodeConflict:
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken),
		errors.Is(err, appErrors.ErrTokenInvalid),
		errors.Is(err, appErrors.ErrUnauthorized):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrUserInactive),
		errors.Is(err, appErrors.ErrEmailNotVerified),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, appErrors.ErrUserNotFound),
		errors.Is(err, appErrors.ErrProductNotFound),
		errors.Is(err, appErrors.ErrOrderNotFound),
		errors.Is(err, appErrors.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrMultipleRows):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrProductRejected),
		errors.Is(err, appErrors.ErrOrderLineRejected):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, rejectionMessage(err))
	default:
		logger.Error("Internal server error",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// rejectionMessage hides driver detail behind the sentinel text.
func rejectionMessage(err error) string {
	if errors.Is(err, appErrors.ErrProductRejected) {
		return appErrors.ErrProductRejected.Error()
	}
	return appErrors.ErrOrderLineRejected.Error()
}

func bindJSON(c *gin.Context, request any) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, _, ok := middleware.CurrentUser(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
	}
	return userID, ok
}
