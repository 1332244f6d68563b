package repository_test

import (
	"context"
	"errors"
	"testing"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	appErrors "ecommerce-backend/pkg/errors"
)

func openOrder(t *testing.T, store *repository.Store, user *models.User) *models.Order {
	t.Helper()
	order, err := repository.GetOrCreate[models.Order](context.Background(), store.DB, repository.OpenOrderLookup{UserID: user.ID}, false)
	if err != nil {
		t.Fatalf("open order: %v", err)
	}
	return order
}

func TestFetchOrderProductsLoadsProductsInOneQuery(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	order := openOrder(t, store, createUser(t, store, "buyer@example.com"))

	for i, title := range []string{"Cup", "Plate", "Bowl"} {
		product := addProduct(t, store, title, float64(i+1))
		if _, err := store.Orders().AddLine(ctx, order.ID, product, i+1); err != nil {
			t.Fatalf("AddLine() error = %v", err)
		}
	}

	var queries int
	countCallbacks(t, store.DB, "query", &queries)

	lines, err := store.Orders().FetchProducts(ctx, order.ID)
	if err != nil {
		t.Fatalf("FetchProducts() error = %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"Cup", "Plate", "Bowl"} {
		if lines[i].Product == nil || lines[i].Product.Title != want {
			t.Fatalf("line %d: expected product %q, got %+v", i, want, lines[i].Product)
		}
		if lines[i].Quantity != i+1 {
			t.Fatalf("line %d: expected quantity %d, got %d", i, i+1, lines[i].Quantity)
		}
	}
	if queries != 1 {
		t.Fatalf("expected a single query, got %d", queries)
	}
}

func TestFetchOrderProductsUnknownOrderIsEmpty(t *testing.T) {
	store := newStore(t)

	lines, err := store.Orders().FetchProducts(context.Background(), 9999)
	if err != nil {
		t.Fatalf("FetchProducts() error = %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lines)
	}
}

func TestAddLineSnapshotsPrice(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	order := openOrder(t, store, createUser(t, store, "snap@example.com"))
	product := addProduct(t, store, "Lamp", 40)

	if _, err := store.Orders().AddLine(ctx, order.ID, product, 1); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	if err := store.DB.Model(product).Update("price", 55).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	lines, err := store.Orders().FetchProducts(ctx, order.ID)
	if err != nil {
		t.Fatalf("FetchProducts() error = %v", err)
	}
	if lines[0].Price != 40 {
		t.Fatalf("expected captured price 40, got %v", lines[0].Price)
	}
	if lines[0].Product.Price != 55 {
		t.Fatalf("expected current product price 55, got %v", lines[0].Product.Price)
	}
}

func TestAddLineRejectsBadInput(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	product := addProduct(t, store, "Chair", 80)

	if _, err := store.Orders().AddLine(ctx, 12345, product, 1); !errors.Is(err, appErrors.ErrOrderLineRejected) {
		t.Fatalf("expected ErrOrderLineRejected for missing order, got %v", err)
	}

	order := openOrder(t, store, createUser(t, store, "qty@example.com"))
	if _, err := store.Orders().AddLine(ctx, order.ID, product, 0); !appErrors.HasCode(err, appErrors.CodeBadInput) {
		t.Fatalf("expected bad input for zero quantity, got %v", err)
	}
	if n := countRows(t, store.DB, &models.OrderProduct{}); n != 0 {
		t.Fatalf("expected no lines, got %d", n)
	}
}

func TestCloseOrder(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	order := openOrder(t, store, createUser(t, store, "close@example.com"))

	if err := store.Orders().Close(ctx, order.ID); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	stored, err := store.Orders().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !stored.IsClosed {
		t.Fatalf("expected closed order")
	}
	if err := store.Orders().Close(ctx, order.ID); !errors.Is(err, appErrors.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound closing twice, got %v", err)
	}
	if _, err := store.Orders().GetByID(ctx, 777); !errors.Is(err, appErrors.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
