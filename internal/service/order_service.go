package service

import (
	"context"
	"errors"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/validator"
	appErrors "ecommerce-backend/pkg/errors"
)

// OrderService manages carts. A user's cart is their single open order.
type OrderService struct {
	store *repository.Store
}

func NewOrderService(store *repository.Store) *OrderService {
	return &OrderService{store: store}
}

// AddToCart opens a cart if needed and appends a line priced at the
// product's current price.
func (s *OrderService) AddToCart(ctx context.Context, userID uint, request *AddToCartRequest) (*models.OrderProduct, error) {
	if err := validator.ValidateStruct(request); err != nil {
		return nil, validationError(err)
	}

	var line *models.OrderProduct
	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		product, err := tx.Products().GetByID(ctx, request.ProductID)
		if err != nil {
			return err
		}

		order, err := repository.GetOrCreate[models.Order](ctx, tx.DB, repository.OpenOrderLookup{UserID: userID}, false)
		if err != nil {
			return err
		}

		line, err = tx.Orders().AddLine(ctx, order.ID, product, request.Quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	return line, nil
}

// Cart returns the open order's lines. A user without a cart gets an empty one.
func (s *OrderService) Cart(ctx context.Context, userID uint) (*CartResponse, error) {
	order, err := repository.GetOrCreate[models.Order](ctx, s.store.DB, repository.OpenOrderLookup{UserID: userID}, true)
	if errors.Is(err, appErrors.ErrNotFound) {
		return newCartResponse(0, nil), nil
	}
	if err != nil {
		return nil, err
	}

	lines, err := s.store.Orders().FetchProducts(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return newCartResponse(order.ID, lines), nil
}

// Checkout closes the cart and returns what was ordered.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*CartResponse, error) {
	var cart *CartResponse
	err := s.store.WithTx(ctx, func(tx *repository.Store) error {
		order, err := repository.GetOrCreate[models.Order](ctx, tx.DB, repository.OpenOrderLookup{UserID: userID}, true)
		if errors.Is(err, appErrors.ErrNotFound) {
			return appErrors.ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		lines, err := tx.Orders().FetchProducts(ctx, order.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return appErrors.BadInput("cart is empty", appErrors.ErrInvalidInput)
		}

		if err := tx.Orders().Close(ctx, order.ID); err != nil {
			return err
		}

		cart = newCartResponse(order.ID, lines)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// OrderLines lists the lines of one of the user's orders, open or closed.
func (s *OrderService) OrderLines(ctx context.Context, userID, orderID uint) (*CartResponse, error) {
	order, err := s.store.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, appErrors.ErrOrderNotFound
	}

	lines, err := s.store.Orders().FetchProducts(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return newCartResponse(orderID, lines), nil
}
