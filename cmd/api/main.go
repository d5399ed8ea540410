package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/okravets/kasa-api/internal/application/service"
	"github.com/okravets/kasa-api/internal/config"
	"github.com/okravets/kasa-api/internal/infrastructure/database"
	"github.com/okravets/kasa-api/internal/infrastructure/repository"
	"github.com/okravets/kasa-api/internal/logging"
	"github.com/okravets/kasa-api/internal/presentation/http/handler"
	"github.com/okravets/kasa-api/internal/presentation/http/routes"
	"github.com/okravets/kasa-api/pkg/printer"
	"github.com/okravets/kasa-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure structured logging
	logging.Setup(cfg.App.Env, cfg.App.Debug)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	receiptService := service.NewReceiptService(receiptRepo, service.Layout{
		Header:     cfg.Receipt.Header,
		Footer:     cfg.Receipt.Footer,
		LineLength: cfg.Receipt.LineLength,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		slog.Warn("Failed to initialize printer, printing disabled", "error", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, receiptService, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Receipt: handler.NewReceiptHandler(receiptService, cfg.Receipt.LineLength),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("Starting server", "service", cfg.App.Name, "port", port, "env", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
