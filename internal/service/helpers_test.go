package service_test

import (
	"testing"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database/dbtest"
	"ecommerce-backend/internal/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PublicURL: "http://shop.test"},
		JWT: config.JWTConfig{
			Secret:             "test-secret",
			ExpiryHours:        1,
			RefreshExpiryHours: 24,
		},
		Catalog: config.CatalogConfig{DefaultPageSize: 12, MaxPageSize: 50},
	}
}

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(dbtest.New(t).DB)
}
