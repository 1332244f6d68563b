package repository_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/repository"
	appErrors "ecommerce-backend/pkg/errors"
)

func TestAddProductDefaultsImagesToEmpty(t *testing.T) {
	store := newStore(t)

	product, err := store.Products().Add(context.Background(), "Plain Shirt", 19.5)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if product.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if product.ImageURL == nil || *product.ImageURL != "" || product.ImageFile == nil || *product.ImageFile != "" {
		t.Fatalf("expected empty image fields, got %v %v", product.ImageURL, product.ImageFile)
	}
}

func TestAddProductWithOptions(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	product, err := store.Products().Add(ctx, "Hat", 7,
		repository.WithImageURL("https://cdn.example.com/hat.png"),
		repository.WithImageFile("hat.png"),
		repository.WithNotes("summer line"),
	)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	stored, err := store.Products().GetByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if *stored.ImageURL != "https://cdn.example.com/hat.png" || *stored.ImageFile != "hat.png" {
		t.Fatalf("unexpected images %q %q", *stored.ImageURL, *stored.ImageFile)
	}
	if stored.Notes == nil || *stored.Notes != "summer line" {
		t.Fatalf("expected notes to be stored")
	}
}

func TestAddProductIntegrityViolationIsRejected(t *testing.T) {
	store := newStore(t)

	_, err := store.Products().Add(context.Background(), "Broken", -1)
	if !errors.Is(err, appErrors.ErrProductRejected) {
		t.Fatalf("expected ErrProductRejected, got %v", err)
	}
	if n := countRows(t, store.DB, &models.Product{}); n != 0 {
		t.Fatalf("expected no product rows, got %d", n)
	}
}

func TestFetchProductsFiltersCaseInsensitively(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	addProduct(t, store, "Red SHIRT", 10)
	addProduct(t, store, "Blue shirt", 12)
	addProduct(t, store, "Trousers", 30)
	addProduct(t, store, "T-Shirt Pack", 25)

	products, err := store.Products().Fetch(ctx, repository.ProductQuery{Limit: 12, Query: "shirt"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 shirts, got %d", len(products))
	}
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Title), "shirt") {
			t.Fatalf("unexpected product %q", p.Title)
		}
	}

	total, err := store.Products().Count(ctx, "shirt")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 3 {
		t.Fatalf("expected count 3, got %d", total)
	}
}

func TestFetchProductsPagesDoNotOverlap(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	for i := 0; i < 30; i++ {
		addProduct(t, store, fmt.Sprintf("Item %02d", i), float64(i))
	}

	first, err := store.Products().Fetch(ctx, repository.ProductQuery{Offset: 0, Limit: repository.DefaultProductLimit})
	if err != nil {
		t.Fatalf("Fetch() first page error = %v", err)
	}
	second, err := store.Products().Fetch(ctx, repository.ProductQuery{Offset: 12, Limit: 12})
	if err != nil {
		t.Fatalf("Fetch() second page error = %v", err)
	}
	if len(first) != 12 || len(second) != 12 {
		t.Fatalf("expected two full pages, got %d and %d", len(first), len(second))
	}

	seen := make(map[uint]bool)
	for _, p := range first {
		seen[p.ID] = true
	}
	for _, p := range second {
		if seen[p.ID] {
			t.Fatalf("product %d appears on both pages", p.ID)
		}
	}
	if first[0].Title != "Item 00" || second[0].Title != "Item 12" {
		t.Fatalf("expected id order, got %q and %q", first[0].Title, second[0].Title)
	}
}

func TestFetchProductsTreatsWildcardsLiterally(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	addProduct(t, store, "100% Cotton Tee", 15)
	addProduct(t, store, "100 Cotton Tee", 15)
	addProduct(t, store, "snake_case mug", 9)
	addProduct(t, store, "snakeXcase mug", 9)

	tests := []struct {
		query string
		want  string
	}{
		{"100%", "100% Cotton Tee"},
		{"e_c", "snake_case mug"},
	}

	for _, tt := range tests {
		products, err := store.Products().Fetch(ctx, repository.ProductQuery{Limit: 12, Query: tt.query})
		if err != nil {
			t.Fatalf("Fetch(%q) error = %v", tt.query, err)
		}
		if len(products) != 1 || products[0].Title != tt.want {
			t.Fatalf("Fetch(%q) expected only %q, got %+v", tt.query, tt.want, products)
		}
	}
}

func TestFetchProductsEmptyAndInvalid(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	products, err := store.Products().Fetch(ctx, repository.ProductQuery{Limit: 12, Query: "nothing"})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}

	addProduct(t, store, "Anything", 1)
	products, err = store.Products().Fetch(ctx, repository.ProductQuery{Limit: 0})
	if err != nil || products == nil || len(products) != 0 {
		t.Fatalf("expected empty result for zero limit, got %#v, %v", products, err)
	}

	if _, err := store.Products().Fetch(ctx, repository.ProductQuery{Offset: -1, Limit: 12}); !appErrors.HasCode(err, appErrors.CodeBadInput) {
		t.Fatalf("expected bad input for negative offset, got %v", err)
	}
}

func TestGetProductNotFound(t *testing.T) {
	store := newStore(t)

	if _, err := store.Products().GetByID(context.Background(), 404); !errors.Is(err, appErrors.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
