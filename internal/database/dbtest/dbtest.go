// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database"

	"gorm.io/driver/sqlite"
)

var nameCleaner = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// New returns a fresh database named after the running test. Foreign keys
// are enforced and the pool holds one connection so the in-memory database
// lives until cleanup.
func New(t testing.TB) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", nameCleaner.Replace(t.Name()))
	db, err := database.Open(sqlite.Open(dsn), &config.DatabaseConfig{MaxOpenConns: 1, MaxIdleConns: 1}, "test")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}
