package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/infrastructure/jobs"
	"github.com/Gitau-joseph/projectz/internal/infrastructure/repositories"
	"github.com/Gitau-joseph/projectz/internal/infrastructure/storage"
	"github.com/Gitau-joseph/projectz/internal/infrastructure/wallet"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/handlers"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
	"github.com/Gitau-joseph/projectz/internal/usecases"
	"github.com/Gitau-joseph/projectz/pkg/jwt"
	"github.com/Gitau-joseph/projectz/pkg/logger"
	"github.com/Gitau-joseph/projectz/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	kycRepo := repositories.NewKYCRepository(db)
	depositRepo := repositories.NewDepositRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Document storage for KYC uploads
	docStore, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize document store: %w", err)
	}

	// Custody wallet client
	walletClient := wallet.NewClient(cfg.Wallet.ServiceURL, cfg.Wallet.APIKey, cfg.Wallet.MasterAddress)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	kycUsecase := usecases.NewKYCUsecase(kycRepo, userRepo, docStore, uow)
	depositUsecase := usecases.NewDepositUsecase(depositRepo, userRepo, uow, walletClient, cfg.Wallet)
	ledgerUsecase := usecases.NewLedgerUsecase(userRepo, kycRepo, depositRepo, cfg.Investment)
	withdrawalUsecase := usecases.NewWithdrawalUsecase(userRepo, depositRepo, walletClient, cfg.Investment, cfg.Wallet)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	dashboardHandler := handlers.NewDashboardHandler(ledgerUsecase)
	kycHandler := handlers.NewKYCHandler(kycUsecase)
	depositHandler := handlers.NewDepositHandler(depositUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase)
	adminHandler := handlers.NewAdminHandler(authUsecase, kycUsecase, depositUsecase, ledgerUsecase)

	// Auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)
	adminMiddleware := middleware.RequireAdmin(userRepo)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	earningsJob := jobs.NewEarningsRefreshJob(userRepo, depositRepo, cfg.Investment)
	go earningsJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.Metrics())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		dashboardHandler:  dashboardHandler,
		kycHandler:        kycHandler,
		depositHandler:    depositHandler,
		withdrawalHandler: withdrawalHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
		adminMiddleware:   adminMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		earningsJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
