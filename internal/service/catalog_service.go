package service

import (
	"context"
	"errors"
	"time"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/events"
	"ecommerce-backend/internal/logger"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/validator"
	appErrors "ecommerce-backend/pkg/errors"

	"go.uber.org/zap"
)

type CatalogService struct {
	store    *repository.Store
	notifier Notifier
	config   *config.CatalogConfig
}

func NewCatalogService(store *repository.Store, notifier Notifier, cfg *config.CatalogConfig) *CatalogService {
	return &CatalogService{
		store:    store,
		notifier: notifier,
		config:   cfg,
	}
}

func (s *CatalogService) AddProduct(ctx context.Context, request *CreateProductRequest) (*models.Product, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, validationError(err)
	}

	product, err := s.store.Products().Add(ctx, request.Title, request.Price,
		repository.WithImageURL(request.ImageURL),
		repository.WithImageFile(request.ImageFile),
		repository.WithNotes(request.Notes),
	)
	if err != nil {
		return nil, err
	}

	s.announce(ctx, product)

	return product, nil
}

// ImportProduct returns the product with the same title and price, creating
// it on first use. Repeated imports are safe.
func (s *CatalogService) ImportProduct(ctx context.Context, request *CreateProductRequest) (*models.Product, bool, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, false, validationError(err)
	}

	lookup := repository.ProductLookup{Title: request.Title, Price: request.Price}
	existing, err := repository.GetOrCreate[models.Product](ctx, s.store.DB, lookup, true)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, appErrors.ErrNotFound) {
		return nil, false, err
	}

	product, err := repository.GetOrCreate[models.Product](ctx, s.store.DB, lookup, false)
	if err != nil {
		return nil, false, err
	}

	s.announce(ctx, product)

	return product, true, nil
}

// ListProducts pages through the catalog. A zero limit means the configured
// default; larger limits are capped.
func (s *CatalogService) ListProducts(ctx context.Context, request *ListProductsRequest) (*ProductListResponse, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, validationError(err)
	}

	limit := request.Limit
	if limit == 0 {
		limit = s.config.DefaultPageSize
	}
	if limit <= 0 {
		limit = repository.DefaultProductLimit
	}
	if s.config.MaxPageSize > 0 && limit > s.config.MaxPageSize {
		limit = s.config.MaxPageSize
	}

	query := repository.ProductQuery{Offset: request.Offset, Limit: limit, Query: request.Query}
	products, err := s.store.Products().Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Products().Count(ctx, request.Query)
	if err != nil {
		return nil, err
	}

	return &ProductListResponse{
		Items:  products,
		Total:  total,
		Offset: request.Offset,
		Limit:  limit,
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.Products().GetByID(ctx, id)
}

func (s *CatalogService) announce(ctx context.Context, product *models.Product) {
	event := events.ProductAdded{
		ProductID:  product.ID,
		Title:      product.Title,
		Price:      product.Price,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.notifier.ProductAdded(ctx, event); err != nil {
		logger.Warn("Failed to publish product event",
			zap.Uint("product_id", product.ID),
			zap.Error(err),
		)
	}
}
