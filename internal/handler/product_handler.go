package handler

import (
	"net/http"
	"strconv"

	"ecommerce-backend/internal/service"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service *service.CatalogService
}

func NewProductHandler(service *service.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
	}
}

func (h *ProductHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/products", h.Create)
	router.PUT("/products", h.Import)
}

func (h *ProductHandler) List(c *gin.Context) {
	var request service.ListProductsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := h.service.ListProducts(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Products retrieved", page)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product retrieved", product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	request, ok := bindProduct(c)
	if !ok {
		return
	}

	product, err := h.service.AddProduct(c.Request.Context(), request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Product created", product)
}

func (h *ProductHandler) Import(c *gin.Context) {
	request, ok := bindProduct(c)
	if !ok {
		return
	}

	product, created, err := h.service.ImportProduct(c.Request.Context(), request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if created {
		utils.SuccessResponse(c, http.StatusCreated, "Product created", product)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product already exists", product)
}

func bindProduct(c *gin.Context) (*service.CreateProductRequest, bool) {
	var request service.CreateProductRequest
	if !bindJSON(c, &request) {
		return nil, false
	}

	request.Title = utils.SanitizeString(request.Title)
	request.ImageFile = utils.SanitizeString(request.ImageFile)
	request.Notes = utils.SanitizeText(request.Notes)
	return &request, true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}
