package repository_test

import (
	"context"
	"fmt"
	"testing"

	"ecommerce-backend/internal/database/dbtest"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"

	"gorm.io/gorm"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(dbtest.New(t).DB)
}

func createUser(t *testing.T, store *repository.Store, email string) *models.User {
	t.Helper()
	user, err := store.Users().Create(context.Background(), "Ann", email, "hashed")
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func addProduct(t *testing.T, store *repository.Store, title string, price float64) *models.Product {
	t.Helper()
	product, err := store.Products().Add(context.Background(), title, price)
	if err != nil {
		t.Fatalf("add product %s: %v", title, err)
	}
	return product
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

// countCallbacks increments n every time a statement of the given kind runs.
func countCallbacks(t *testing.T, db *gorm.DB, kind string, n *int) {
	t.Helper()
	name := fmt.Sprintf("test:count_%s", kind)
	inc := func(*gorm.DB) { *n++ }

	var err error
	switch kind {
	case "query":
		err = db.Callback().Query().After("gorm:query").Register(name, inc)
	case "update":
		err = db.Callback().Update().After("gorm:update").Register(name, inc)
	case "create":
		err = db.Callback().Create().After("gorm:create").Register(name, inc)
	default:
		t.Fatalf("unknown callback kind %s", kind)
	}
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}
