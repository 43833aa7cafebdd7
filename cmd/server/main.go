package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hubtel-wallet.backend/internal/config"
	"hubtel-wallet.backend/internal/infrastructure/datasources/postgres"
	"hubtel-wallet.backend/internal/infrastructure/repositories"
	"hubtel-wallet.backend/internal/interfaces/http/handlers"
	"hubtel-wallet.backend/internal/interfaces/http/middleware"
	"hubtel-wallet.backend/internal/usecases"
	"hubtel-wallet.backend/pkg/crypto"
	"hubtel-wallet.backend/pkg/jwt"
	"hubtel-wallet.backend/pkg/logger"
	"hubtel-wallet.backend/pkg/metrics"
	"hubtel-wallet.backend/pkg/redis"
	"hubtel-wallet.backend/pkg/validation"
)

const (
	serviceName    = "hubtel-wallet-backend"
	serviceVersion = "0.1.0"

	shutdownTimeout = 10 * time.Second
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		sqlDB, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.NewGormDB(sqlDB)
	}
	runServer = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	ctx := context.Background()

	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := cfg.Validate(); err != nil {
		logger.Error(ctx, "Invalid configuration", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cipher, err := crypto.NewAESCipher(cfg.Cipher.Key, cfg.Cipher.IV)
	if err != nil {
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}
	sealer, err := crypto.NewCredentialSealer(cfg.Cipher.CredentialMode, cipher)
	if err != nil {
		return fmt.Errorf("failed to initialize credential sealer: %w", err)
	}

	if err := validation.RegisterBindingTags(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to PostgreSQL", zap.String("database", cfg.Database.DBName))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewWithRegistry(registry)

	jwtService := jwt.NewJWTService(
		cfg.JWT.SigningKey,
		cfg.JWT.Issuer,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	userRepo := repositories.NewUserAccessRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	walletRepo := repositories.NewWalletAccountRepository(db)
	uow := repositories.NewUnitOfWork(db)

	resolver := usecases.NewCatalogResolver(catalogRepo, cfg.Catalog.CacheTTL)
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, walletRepo, resolver, sealer, jwtService, m)
	profileUsecase := usecases.NewProfileUsecase(profileRepo, userRepo, walletRepo)
	catalogUsecase := usecases.NewCatalogUsecase(catalogRepo, resolver)
	walletAccountUsecase := usecases.NewWalletAccountUsecase(
		profileRepo, userRepo, walletRepo, resolver, uow,
		cfg.Provisioning.MaxAccountsPerProfile, m,
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	applyCORSMiddleware(r)
	registerHealthRoute(r, handlers.NewHealthHandler(serviceName, serviceVersion, map[string]handlers.Pinger{
		"database": sqlDB.PingContext,
		"redis":    redis.Ping,
	}))
	registerMetricsRoute(r, registry)
	registerAPIV1Routes(r, routeDeps{
		authHandler:          handlers.NewAuthHandler(authUsecase),
		profileHandler:       handlers.NewProfileHandler(profileUsecase),
		catalogHandler:       handlers.NewCatalogHandler(catalogUsecase),
		walletAccountHandler: handlers.NewWalletAccountHandler(walletAccountUsecase),
		phoneHandler:         handlers.NewPhoneHandler(),
		authMiddleware:       middleware.AuthMiddleware(jwtService),
		idempotency:          middleware.IdempotencyMiddleware(redis.NewResponseStore(middleware.LockDuration, middleware.RetentionDuration)),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Wallet backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "/api/v1"),
	)
	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
