package routes

import (
	"net/http"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/database"
	"ecommerce-backend/internal/handler"
	"ecommerce-backend/internal/logger"
	"ecommerce-backend/internal/metrics"
	"ecommerce-backend/internal/middleware"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "ecommerce-backend"

func SetupRoutes(cfg *config.Config, db *database.Database, notifier service.Notifier) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.MustRegister(serviceName)

	router := gin.New()

	// Order: recovery, request ID, logging, metrics, security headers, CORS, request size limit, rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestBytes))
	router.Use(middleware.RateLimitMiddleware(
		middleware.NewRateLimiter(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst),
	))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.Server.StaticDir != "" {
		router.Static("/static", cfg.Server.StaticDir)
	}

	store := repository.NewStore(db.DB)

	authHandler := handler.NewAuthHandler(service.NewAuthService(store, notifier, cfg))
	productHandler := handler.NewProductHandler(service.NewCatalogService(store, notifier, &cfg.Catalog))
	orderHandler := handler.NewOrderHandler(service.NewOrderService(store))

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		productHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			authHandler.RegisterProfileRoutes(protected)
			orderHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				authHandler.RegisterAdminRoutes(admin)
				productHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
