package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Catalog.DefaultPageSize != 12 {
		t.Fatalf("expected default page size 12, got %d", cfg.Catalog.DefaultPageSize)
	}
	if cfg.JWT.RefreshExpiryHours != 720 {
		t.Fatalf("expected refresh expiry 720h, got %d", cfg.JWT.RefreshExpiryHours)
	}
	if !cfg.Database.AutoMigrate {
		t.Fatalf("expected auto migrate enabled by default")
	}
	if cfg.MQTT.Enabled {
		t.Fatalf("expected mqtt disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PUBLIC_URL", "https://shop.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MQTT_TOPIC_PREFIX", "/shop/")
	t.Setenv("CATALOG_PAGE_SIZE", "24")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Server.PublicURL != "https://shop.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Server.PublicURL)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
	if cfg.MQTT.TopicPrefix != "shop" {
		t.Fatalf("expected topic prefix shop, got %q", cfg.MQTT.TopicPrefix)
	}
	if cfg.Server.LogLevel != "warn" {
		t.Fatalf("expected log level warn, got %q", cfg.Server.LogLevel)
	}
	if cfg.Catalog.DefaultPageSize != 24 {
		t.Fatalf("expected page size 24, got %d", cfg.Catalog.DefaultPageSize)
	}
}

func TestValidateRejectsMissingSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "missing database",
			cfg: Config{
				JWT:     JWTConfig{Secret: "secret"},
				Catalog: CatalogConfig{DefaultPageSize: 12, MaxPageSize: 100},
			},
		},
		{
			name: "missing jwt secret",
			cfg: Config{
				Database: DatabaseConfig{Host: "localhost", DBName: "shop"},
				Catalog:  CatalogConfig{DefaultPageSize: 12, MaxPageSize: 100},
			},
		},
		{
			name: "page size above max",
			cfg: Config{
				Database: DatabaseConfig{Host: "localhost", DBName: "shop"},
				JWT:      JWTConfig{Secret: "secret"},
				Catalog:  CatalogConfig{DefaultPageSize: 50, MaxPageSize: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "shop", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=shop sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
