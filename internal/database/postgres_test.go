package database_test

import (
	"testing"

	"ecommerce-backend/internal/database/dbtest"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db := dbtest.New(t)

	for _, table := range []string{"users", "refresh_tokens", "products", "orders", "order_products"} {
		if !db.DB.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}
	if !db.DB.Migrator().HasIndex("users", "ix_users_email") {
		t.Fatalf("expected unique email index")
	}
	if !db.DB.Migrator().HasIndex("users", "ix_users_name") {
		t.Fatalf("expected name index")
	}
	if !db.DB.Migrator().HasColumn("users", "verified_at") {
		t.Fatalf("expected verified_at column")
	}
}

func TestHealth(t *testing.T) {
	db := dbtest.New(t)

	if err := db.Health(); err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}
}
