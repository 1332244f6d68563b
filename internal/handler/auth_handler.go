package handler

import (
	"net/http"
	"strings"

	"ecommerce-backend/internal/metrics"
	"ecommerce-backend/internal/middleware"
	"ecommerce-backend/internal/service"
	appErrors "ecommerce-backend/pkg/errors"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/activate/:uuid", h.Activate)
	}
}

func (h *AuthHandler) RegisterProfileRoutes(router *gin.RouterGroup) {
	router.GET("/me", h.Profile)
}

func (h *AuthHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.PUT("/users/:uuid/active", h.SetActive)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var request service.RegisterRequest
	if !bindJSON(c, &request) {
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)
	request.Name = utils.SanitizeString(request.Name)

	user, err := h.service.Register(c.Request.Context(), &request)
	metrics.AuthEventsTotal.WithLabelValues("register", metrics.Result(err)).Inc()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered, check your email to activate the account", user)
}

func (h *AuthHandler) Activate(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Data for account activation is not correct")
		return
	}

	user, err := h.service.Activate(c.Request.Context(), userUUID)
	metrics.AuthEventsTotal.WithLabelValues("activate", metrics.Result(err)).Inc()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account activated", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var request service.LoginRequest
	if !bindJSON(c, &request) {
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	response, err := h.service.Login(c.Request.Context(), &request)
	metrics.AuthEventsTotal.WithLabelValues("login", metrics.Result(err)).Inc()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}

// Refresh accepts the refresh key in the JSON body or as a bearer token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var request service.RefreshRequest
	_ = c.ShouldBindJSON(&request)

	refreshKey := request.RefreshToken
	if refreshKey == "" {
		refreshKey = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}
	if refreshKey == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token required")
		return
	}

	response, err := h.service.Refresh(c.Request.Context(), refreshKey)
	metrics.AuthEventsTotal.WithLabelValues("refresh", metrics.Result(err)).Inc()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", response)
}

func (h *AuthHandler) Profile(c *gin.Context) {
	_, userUUID, ok := middleware.CurrentUser(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return
	}

	user, err := h.service.Profile(c.Request.Context(), userUUID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}

func (h *AuthHandler) SetActive(c *gin.Context) {
	_, actorUUID, ok := middleware.CurrentUser(c)
	if !ok {
		respondWithError(c, appErrors.ErrUnauthorized)
		return
	}

	userUUID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var request service.SetActiveRequest
	if !bindJSON(c, &request) {
		return
	}

	user, err := h.service.SetUserActive(c.Request.Context(), actorUUID, userUUID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated", user)
}
