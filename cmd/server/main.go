package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "fieldwork-backend/internal/api/http"
	"fieldwork-backend/internal/config"
	"fieldwork-backend/internal/logger"
	"fieldwork-backend/internal/repository/postgres"
	"fieldwork-backend/internal/security"
	"fieldwork-backend/internal/service"
	"fieldwork-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fieldwork Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Photo Storage
	photoStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	fuelSvc := service.NewFuelService(store.FuelRepository, store.VehicleRepository)
	workOrderSvc := service.NewWorkOrderService(store.WorkOrderRepository, store.ReportRepository)
	reportSvc := service.NewReportService(store.ReportRepository, store.UserRepository, emailSvc)

	handlers := &httpapi.Handlers{
		Auth:       httpapi.NewAuthHandler(authSvc),
		Vehicles:   httpapi.NewVehicleHandler(vehicleSvc),
		Fuel:       httpapi.NewFuelHandler(fuelSvc),
		WorkOrders: httpapi.NewWorkOrderHandler(workOrderSvc),
		Reports:    httpapi.NewReportHandler(reportSvc),
		Photos:     httpapi.NewPhotoHandler(photoStorage, cfg.Storage.MaxFileSizeMB),
	}

	router := httpapi.NewRouter(handlers, tokenManager)

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server stopped", "error", err)
		log.Fatalf("Server stopped: %v", err)
	}
}
