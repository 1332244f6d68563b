package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-backend/internal/models"
	appErrors "ecommerce-backend/pkg/errors"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// AddLine appends a line to an order at the product's current price.
func (r *OrderRepository) AddLine(ctx context.Context, orderID uint, product *models.Product, quantity int) (*models.OrderProduct, error) {
	if quantity <= 0 {
		return nil, appErrors.BadInput("quantity must be positive", appErrors.ErrInvalidInput)
	}

	line := &models.OrderProduct{
		OrderID:   orderID,
		ProductID: product.ID,
		Price:     product.Price,
		Quantity:  quantity,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(line).Error
	})
	if err != nil {
		if isIntegrityViolation(err) {
			return nil, fmt.Errorf("%w: %v", appErrors.ErrOrderLineRejected, err)
		}
		return nil, fmt.Errorf("failed to add order line: %w", err)
	}

	line.Product = product
	return line, nil
}

// Close marks an open order closed.
func (r *OrderRepository) Close(ctx context.Context, orderID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND is_closed = ?", orderID, false).
		Update("is_closed", true)

	if result.Error != nil {
		return fmt.Errorf("failed to close order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrOrderNotFound
	}
	return nil
}

// FetchProducts returns the order's lines with their products loaded in the
// same query. An unknown order yields an empty slice, not an error.
func (r *OrderRepository) FetchProducts(ctx context.Context, orderID uint) ([]models.OrderProduct, error) {
	lines := make([]models.OrderProduct, 0)
	err := r.db.WithContext(ctx).
		Joins("Product").
		Where("order_products.order_id = ?", orderID).
		Order("order_products.id").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order products: %w", err)
	}

	return lines, nil
}
