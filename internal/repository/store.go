package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories bound to one gorm session. Inside WithTx the
// session is the transaction, so every repository shares it.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// WithTx commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{DB: tx})
	})
}

func (s *Store) Users() *UserRepository {
	return NewUserRepository(s.DB)
}

func (s *Store) RefreshTokens() *RefreshTokenRepository {
	return NewRefreshTokenRepository(s.DB)
}

func (s *Store) Products() *ProductRepository {
	return NewProductRepository(s.DB)
}

func (s *Store) Orders() *OrderRepository {
	return NewOrderRepository(s.DB)
}
