package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecommerce-backend/internal/models"
	appErrors "ecommerce-backend/pkg/errors"

	"gorm.io/gorm"
)

const DefaultProductLimit = 12

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type ProductOption func(*models.Product)

func WithImageURL(url string) ProductOption {
	return func(p *models.Product) { p.ImageURL = &url }
}

func WithImageFile(file string) ProductOption {
	return func(p *models.Product) { p.ImageFile = &file }
}

func WithNotes(notes string) ProductOption {
	return func(p *models.Product) {
		if notes != "" {
			p.Notes = &notes
		}
	}
}

// ProductQuery selects a page of products. Query matches titles as a
// case-insensitive substring; wildcard characters in it match literally.
type ProductQuery struct {
	Offset int
	Limit  int
	Query  string
}

// Add inserts a product. Image fields default to empty strings. Any
// constraint failure is rolled back and reported as ErrProductRejected.
func (r *ProductRepository) Add(ctx context.Context, title string, price float64, opts ...ProductOption) (*models.Product, error) {
	empty := ""
	product := &models.Product{
		Title:     title,
		Price:     price,
		ImageURL:  &empty,
		ImageFile: &empty,
	}
	for _, opt := range opts {
		opt(product)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrProductRejected, err)
		}
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	return product, nil
}

// Fetch returns products ordered by id. The result is never nil.
func (r *ProductRepository) Fetch(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	if q.Offset < 0 || q.Limit < 0 {
		return nil, appErrors.BadInput("offset and limit must not be negative", appErrors.ErrInvalidInput)
	}

	products := make([]models.Product, 0)
	if q.Limit == 0 {
		return products, nil
	}

	err := r.filtered(ctx, q.Query).
		Order("id").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context, query string) (int64, error) {
	var total int64
	if err := r.filtered(ctx, query).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) filtered(ctx context.Context, query string) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Product{})
	if query != "" {
		db = db.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(query)+"%")
	}
	return db
}
