package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "evrental-backend/internal/api/http"
	"evrental-backend/internal/config"
	"evrental-backend/internal/jobs"
	"evrental-backend/internal/logger"
	"evrental-backend/internal/repository/postgres"
	"evrental-backend/internal/scheduler"
	"evrental-backend/internal/security"
	"evrental-backend/internal/service"
	"evrental-backend/internal/storage"
	"evrental-backend/internal/workflow"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env overrides if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EV Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize file storage
	files, err := storage.NewLocalStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	// Initialize token manager
	tokens := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.VehicleRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
	)
	contractSvc := service.NewContractService(store.BookingRepository, files)
	inspectionSvc := service.NewInspectionService(store.InspectionRepository, store.BookingRepository, files)
	damageSvc := service.NewDamageService(
		store.DamageReportRepository,
		store.FeeLedgerRepository,
		store.BookingRepository,
		files,
	)
	refundSvc := service.NewRefundService(
		store.BookingRepository,
		store.FeeLedgerRepository,
		store.VehicleRepository,
		store.UserRepository,
		emailSvc,
		files,
	)
	stationSvc := service.NewStationService(store.StationRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, store.StationRepository)
	userSvc := service.NewUserService(store.UserRepository, tokens)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Workflow sessions, one per booking
	sessions := workflow.NewManager(
		store.BookingRepository,
		contractSvc,
		inspectionSvc,
		damageSvc,
		refundSvc,
		cfg.SuccessDisplayDelay(),
	)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Bookings:      httpapi.NewBookingHandler(bookingSvc, sessions),
		Stations:      httpapi.NewStationHandler(stationSvc),
		Vehicles:      httpapi.NewVehicleHandler(vehicleSvc),
		Users:         httpapi.NewUserHandler(userSvc),
		Notifications: httpapi.NewNotificationHandler(notificationSvc),
		Files:         httpapi.NewFileHandler(files),
	}
	router := httpapi.NewRouter(handlers, tokens)

	// Start the in-process scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Email: emailSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
