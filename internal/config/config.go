package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	MQTT      MQTTConfig
	Catalog   CatalogConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	LogLevel        string
	StaticDir       string
	PublicURL       string
	MaxRequestBytes int64
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	AutoMigrate     bool
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        int
	RefreshExpiryHours int
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

type MQTTConfig struct {
	Enabled     bool
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

type CatalogConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

var defaults = map[string]any{
	"SERVER_PORT":       "8080",
	"SERVER_HOST":       "0.0.0.0",
	"ENVIRONMENT":       "development",
	"STATIC_DIR":        "./static",
	"PUBLIC_URL":        "http://localhost:8080",
	"REQUEST_MAX_BYTES": 10 << 20,

	"DB_PORT":                      "5432",
	"DB_SSLMODE":                   "disable",
	"DB_MAX_OPEN_CONNS":            25,
	"DB_MAX_IDLE_CONNS":            5,
	"DB_CONN_MAX_LIFETIME_MINUTES": 5,
	"DB_AUTO_MIGRATE":              true,

	"JWT_EXPIRY_HOURS":         1,
	"JWT_REFRESH_EXPIRY_HOURS": 720,

	"RATE_LIMIT_GENERAL_RPS":   10.0,
	"RATE_LIMIT_GENERAL_BURST": 20,

	"CORS_ALLOWED_ORIGINS":   "*",
	"CORS_ALLOWED_METHODS":   "GET,POST,PUT,DELETE,OPTIONS",
	"CORS_ALLOWED_HEADERS":   "Origin,Content-Type,Authorization,X-Request-ID",
	"CORS_EXPOSED_HEADERS":   "X-Request-ID",
	"CORS_ALLOW_CREDENTIALS": false,
	"CORS_MAX_AGE":           43200,

	"MQTT_ENABLED":      false,
	"MQTT_BROKER":       "tcp://localhost:1883",
	"MQTT_CLIENT_ID":    "ecommerce-backend",
	"MQTT_TOPIC_PREFIX": "ecommerce",

	"CATALOG_PAGE_SIZE":     12,
	"CATALOG_MAX_PAGE_SIZE": 100,
}

// Load reads configuration from an optional .env file in the working
// directory and from the process environment, which takes precedence.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			Environment:     v.GetString("ENVIRONMENT"),
			LogLevel:        v.GetString("LOG_LEVEL"),
			StaticDir:       v.GetString("STATIC_DIR"),
			PublicURL:       strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
			MaxRequestBytes: v.GetInt64("REQUEST_MAX_BYTES"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		JWT: JWTConfig{
			Secret:             v.GetString("JWT_SECRET"),
			ExpiryHours:        v.GetInt("JWT_EXPIRY_HOURS"),
			RefreshExpiryHours: v.GetInt("JWT_REFRESH_EXPIRY_HOURS"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   v.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: v.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			AllowedMethods:   splitList(v.GetString("CORS_ALLOWED_METHODS")),
			AllowedHeaders:   splitList(v.GetString("CORS_ALLOWED_HEADERS")),
			ExposedHeaders:   splitList(v.GetString("CORS_EXPOSED_HEADERS")),
			AllowCredentials: v.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           v.GetInt("CORS_MAX_AGE"),
		},
		MQTT: MQTTConfig{
			Enabled:     v.GetBool("MQTT_ENABLED"),
			Broker:      v.GetString("MQTT_BROKER"),
			ClientID:    v.GetString("MQTT_CLIENT_ID"),
			Username:    v.GetString("MQTT_USERNAME"),
			Password:    v.GetString("MQTT_PASSWORD"),
			TopicPrefix: strings.Trim(v.GetString("MQTT_TOPIC_PREFIX"), "/"),
		},
		Catalog: CatalogConfig{
			DefaultPageSize: v.GetInt("CATALOG_PAGE_SIZE"),
			MaxPageSize:     v.GetInt("CATALOG_MAX_PAGE_SIZE"),
		},
	}

	return config, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("database configuration is missing: set DB_HOST and DB_NAME")
	}
	if c.JWT.Secret == "" {
		return errors.New("JWT secret is missing: set JWT_SECRET")
	}
	if c.Catalog.DefaultPageSize <= 0 || c.Catalog.MaxPageSize < c.Catalog.DefaultPageSize {
		return fmt.Errorf("invalid catalog page sizes: default %d, max %d",
			c.Catalog.DefaultPageSize, c.Catalog.MaxPageSize)
	}
	return nil
}

func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// splitList parses comma separated env values; viper splits on whitespace.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
