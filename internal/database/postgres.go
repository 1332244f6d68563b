package database

import (
	"fmt"
	"time"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/logger"
	"ecommerce-backend/internal/models"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	return Open(postgres.Open(cfg.Database.DSN()), &cfg.Database, cfg.Server.Environment)
}

// Open connects through any gorm dialector and applies the pool settings.
// Driver errors are translated into gorm's ErrDuplicatedKey family.
func Open(dialector gorm.Dialector, cfg *config.DatabaseConfig, environment string) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel(environment)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("dialect", dialector.Name()),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &Database{DB: db}, nil
}

// Migrate creates or updates the users, refresh_tokens, products, orders
// and order_products tables.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func logLevel(environment string) gormlogger.LogLevel {
	switch environment {
	case "production":
		return gormlogger.Warn
	case "test":
		return gormlogger.Silent
	default:
		return gormlogger.Info
	}
}
