package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-backend/internal/models"
	appErrors "ecommerce-backend/pkg/errors"

	"gorm.io/gorm"
)

// Lookup describes a row of T by column values and builds the row to insert
// when none matches. Build must agree with Conditions.
type Lookup[T any] interface {
	Conditions() map[string]any
	Build() *T
}

// GetOrCreate returns the single row matching lookup. When nothing matches it
// returns ErrNotFound if onlyGet is set, otherwise it inserts lookup.Build().
// More than one match is reported as ErrMultipleRows.
//
// If a concurrent caller inserts the same row first and a unique index
// rejects ours, the row that won is returned.
func GetOrCreate[T any](ctx context.Context, db *gorm.DB, lookup Lookup[T], onlyGet bool) (*T, error) {
	row, err := lookupOne(ctx, db, lookup)
	if err == nil || !errors.Is(err, appErrors.ErrNotFound) || onlyGet {
		return row, err
	}

	row = lookup.Build()
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
	if err == nil {
		return row, nil
	}

	if isUniqueViolation(err) {
		if winner, lookupErr := lookupOne(ctx, db, lookup); lookupErr == nil {
			return winner, nil
		}
	}
	if isIntegrityViolation(err) {
		return nil, appErrors.Conflict("row could not be created", err)
	}
	return nil, fmt.Errorf("failed to create row: %w", err)
}

func lookupOne[T any](ctx context.Context, db *gorm.DB, lookup Lookup[T]) (*T, error) {
	var found []T
	err := db.WithContext(ctx).
		Where(lookup.Conditions()).
		Order("id").
		Limit(2).
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up row: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, appErrors.ErrNotFound
	case 1:
		return &found[0], nil
	default:
		return nil, appErrors.ErrMultipleRows
	}
}

// OpenOrderLookup finds a user's open order, the cart.
type OpenOrderLookup struct {
	UserID uint
}

func (l OpenOrderLookup) Conditions() map[string]any {
	return map[string]any{"user_id": l.UserID, "is_closed": false}
}

func (l OpenOrderLookup) Build() *models.Order {
	return &models.Order{UserID: l.UserID}
}

// ProductLookup finds a catalog entry by title and price.
type ProductLookup struct {
	Title string
	Price float64
}

func (l ProductLookup) Conditions() map[string]any {
	return map[string]any{"title": l.Title, "price": l.Price}
}

func (l ProductLookup) Build() *models.Product {
	empty := ""
	return &models.Product{Title: l.Title, Price: l.Price, ImageURL: &empty, ImageFile: &empty}
}
