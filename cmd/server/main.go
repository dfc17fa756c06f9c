package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crmdesk/internal/config"
	"crmdesk/internal/database"
	"crmdesk/internal/handlers"
	custommw "crmdesk/internal/middleware"
	"crmdesk/internal/repositories"
	"crmdesk/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Wire repositories, services and handlers
	customerRepo := repositories.NewCustomerRepository(db)
	customerLogger := services.NewCustomerLogger(slog.Default())
	metrics := services.NewPrometheusMetrics()
	customerService := services.NewCustomerService(customerRepo)
	seedService := services.NewSeedService(customerRepo)

	customerHandler := handlers.NewCustomerHandler(customerService, customerLogger, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db)
	devHandler := handlers.NewDevHandler(seedService, metrics)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitPerSec*2))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/health", healthHandler.HealthCheck)

	customers := api.Group("/customers")
	customers.GET("", customerHandler.ListCustomers)
	customers.POST("", customerHandler.CreateCustomer)
	// Registered before /:id so "search" is not parsed as a customer ID
	customers.GET("/search", customerHandler.SearchCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.PUT("/:id", customerHandler.UpdateCustomer)
	customers.DELETE("/:id", customerHandler.DeleteCustomer)

	if cfg.IsDevelopment() {
		dev := api.Group("/dev")
		dev.POST("/seed", devHandler.SeedCustomers)
	}

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}

	slog.Info("Server stopped")
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
