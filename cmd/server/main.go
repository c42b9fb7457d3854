package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	api "openshelf-backend/internal/api/http"
	"openshelf-backend/internal/config"
	"openshelf-backend/internal/jobs"
	"openshelf-backend/internal/logger"
	"openshelf-backend/internal/repository/postgres"
	"openshelf-backend/internal/scheduler"
	"openshelf-backend/internal/security"
	"openshelf-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development; config env overrides pick it up
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting OpenShelf Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)
	authSvc := service.NewAuthService(store.MemberRepository, tokenManager)
	catalogSvc := service.NewCatalogService(store.BookRepository)
	loanSvc := service.NewLoanService(store.LoanRepository, store.MemberRepository)
	reservationSvc := service.NewReservationService(store.ReservationRepository, store.LoanRepository, store.BookRepository)
	memberSvc := service.NewMemberService(store.MemberRepository, store.LoanRepository)

	// Initialize HTTP handlers
	handlers := api.Handlers{
		Auth:        api.NewAuthHandler(authSvc),
		Catalog:     api.NewCatalogHandler(catalogSvc),
		Loan:        api.NewLoanHandler(loanSvc),
		Reservation: api.NewReservationHandler(reservationSvc),
		Member:      api.NewMemberHandler(memberSvc),
	}
	router := api.NewRouter(handlers, authMiddleware)

	// Start overdue-reminder scheduler alongside the API server
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Email: emailSvc, Loan: loanSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
