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
	"go.uber.org/zap"

	_ "github.com/noah-isme/attendance-api/api/swagger"
	"github.com/noah-isme/attendance-api/internal/dto"
	"github.com/noah-isme/attendance-api/internal/handler"
	"github.com/noah-isme/attendance-api/internal/repository"
	"github.com/noah-isme/attendance-api/internal/service"
	"github.com/noah-isme/attendance-api/pkg/cache"
	"github.com/noah-isme/attendance-api/pkg/config"
	"github.com/noah-isme/attendance-api/pkg/database"
	"github.com/noah-isme/attendance-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Attendance Management API
// @version 1.0.0
// @description Accounts, classes and enrollment for the attendance system
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, logr); err != nil {
			logr.Fatal("database migration failed", zap.Error(err))
		}
	}

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.StudentCache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, student cache disabled", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(client, "attendance")
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	studentCache := service.NewCacheService(cacheRepo, metrics, cfg.StudentCache.TTL, logr, cacheRepo != nil)

	users := repository.NewUserRepository(db, metrics)
	classes := repository.NewClassRepository(db, metrics)

	validate := dto.NewValidator()
	tokens := service.NewTokenService(service.TokenConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: cfg.JWT.Issuer,
	})
	credentials := service.NewCredentialStore(users, cfg.Password.BcryptCost, logr)

	router := handler.NewRouter(handler.RouterDeps{
		Env:            cfg.Env,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logr,
		Tokens:         tokens,
		Auth:           service.NewAuthService(credentials, tokens, studentCache, validate, logr),
		Classes:        service.NewClassService(classes, users, validate, logr),
		Students:       service.NewStudentService(users, studentCache, cfg.StudentCache.TTL, logr),
		Metrics:        metrics,
		Store:          db,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
