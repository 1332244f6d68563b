package service

import (
	"context"

	"ecommerce-backend/internal/events"
)

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

// Notifier delivers domain events. Delivery failures are logged by the
// services and never fail the request that produced the event.
type Notifier interface {
	UserRegistered(ctx context.Context, event events.UserRegistered) error
	ProductAdded(ctx context.Context, event events.ProductAdded) error
}
