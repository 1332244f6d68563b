package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database"
	"ecommerce-backend/internal/events"
	"ecommerce-backend/internal/logger"
	"ecommerce-backend/internal/routes"
	"ecommerce-backend/internal/service"
	"ecommerce-backend/pkg/mqtt"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Server.Environment, cfg.Server.LogLevel); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", cfg.Server.Environment),
	)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := database.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema migrated")
	}

	notifier, closeNotifier := newNotifier(&cfg.MQTT)
	defer closeNotifier()

	router := routes.SetupRoutes(cfg, db, notifier)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
	}

	logger.Info("Server exited properly")
}

// newNotifier publishes domain events over MQTT when enabled and falls back
// to the log otherwise. A broker that cannot be reached is not fatal.
func newNotifier(cfg *config.MQTTConfig) (service.Notifier, func()) {
	if !cfg.Enabled {
		return events.LogNotifier{}, func() {}
	}

	client := mqtt.NewClient(
		mqtt.DefaultConfig(cfg.Broker, cfg.ClientID, cfg.Username, cfg.Password),
		logger.Logger,
	)
	if err := client.Connect(); err != nil {
		logger.Warn("MQTT broker unavailable, logging events instead",
			zap.String("broker", cfg.Broker),
			zap.Error(err),
		)
		return events.LogNotifier{}, func() {}
	}

	return events.NewMQTTNotifier(client, cfg.TopicPrefix), client.Disconnect
}
