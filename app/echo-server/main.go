package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storeAnalytics/app/echo-server/router"
	"storeAnalytics/business/auth"
	"storeAnalytics/business/customer"
	"storeAnalytics/business/orders"
	"storeAnalytics/business/product"
	"storeAnalytics/business/reports"
	"storeAnalytics/internal/middleware"
	psqlRepo "storeAnalytics/internal/repository/postgres"
	redisRepo "storeAnalytics/internal/repository/redis"
	"storeAnalytics/internal/rest"
	"storeAnalytics/pkg/config"
	"storeAnalytics/pkg/database"
	redisdb "storeAnalytics/pkg/database/redis"
	"storeAnalytics/pkg/logger"
	"storeAnalytics/pkg/metrics"
	"storeAnalytics/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Store Analytics", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	if err := psqlRepo.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	if err := psqlRepo.Seed(db); err != nil {
		logger.Fatal("Failed to seed sample data", "error", err)
	}

	// Report cache is optional: without Redis the reports just hit Postgres.
	var reportCache *redisRepo.ReportCache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, report caching disabled", "error", err)
	} else {
		reportCache = redisRepo.NewReportCache(redisClient, cfg.Reports.CacheTTL)
		defer func() {
			_ = redisdb.CloseRedisClient(redisClient)
		}()
	}

	// Init validate
	validate := validator.New()

	// Init repo
	customerRepo := psqlRepo.NewCustomerRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	reportRepo := psqlRepo.NewReportRepository(db)

	// Init service
	authService, err := auth.NewAuthService(cfg.Admin.Email, cfg.Admin.Password, cfg.JWT.TokenTTL)
	if err != nil {
		logger.Fatal("Failed to init auth service", "error", err)
	}
	customerService := customer.NewCustomerService(customerRepo, validate)
	productService := product.NewProductService(productRepo)

	var reportsCacheIface reports.ReportCache
	var invalidator orders.ReportInvalidator
	if reportCache != nil {
		reportsCacheIface = reportCache
		invalidator = reportCache
	}

	reportsService := reports.NewReportsService(reportRepo, productRepo, reportsCacheIface)
	ordersService := orders.NewOrdersService(ordersRepo, customerRepo, productRepo, invalidator)

	// Init handler
	authHandler := rest.NewAuthHandler(authService)
	customerHandler := rest.NewCustomerHandler(customerService)
	productHandler := rest.NewProductHandler(productService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	reportsHandler := rest.NewReportsHandler(reportsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, authHandler)
	router.SetupCustomerRoutes(api, customerHandler, authRequired, adminOnly)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetOrdersRoutes(api, ordersHandler, authRequired, adminOnly)
	router.SetupReportRoutes(api, reportsHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
