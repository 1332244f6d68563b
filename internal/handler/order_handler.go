package handler

import (
	"net/http"

	"ecommerce-backend/internal/metrics"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *service.OrderService
}

func NewOrderHandler(service *service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes expects an authenticated group.
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.Cart)
		cart.POST("/items", h.AddItem)
		cart.POST("/checkout", h.Checkout)
	}
	router.GET("/orders/:id/items", h.OrderItems)
}

func (h *OrderHandler) Cart(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	cart, err := h.service.Cart(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cart retrieved", cart)
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var request service.AddToCartRequest
	if !bindJSON(c, &request) {
		return
	}

	line, err := h.service.AddToCart(c.Request.Context(), userID, &request)
	metrics.CartEventsTotal.WithLabelValues("add", metrics.Result(err)).Inc()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Item added to cart", line)
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	receipt, err := h.service.Checkout(c.Request.Context(), userID)
	metrics.CartEventsTotal.WithLabelValues("checkout", metrics.Result(err)).Inc()
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order placed", receipt)
}

func (h *OrderHandler) OrderItems(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	items, err := h.service.OrderLines(c.Request.Context(), userID, orderID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order items retrieved", items)
}
