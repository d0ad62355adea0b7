package main

import (
	"context"
	"go-hiring-portal/config"
	_ "go-hiring-portal/docs" // Important for Swagger
	v1 "go-hiring-portal/internal/delivery/http/v1"
	"go-hiring-portal/internal/repository/postgres"
	"go-hiring-portal/internal/usecase"
	"go-hiring-portal/pkg/auth"
	"go-hiring-portal/pkg/database"
	"go-hiring-portal/pkg/logger"
	"go-hiring-portal/pkg/redis"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           Hiring Portal API
// @version         1.0
// @description     Backend for recruitment management using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting hiring portal backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (sign-in rate limiting; the limiter fails open without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, sign-in rate limiting disabled", "error", err)
		}
	} else {
		logger.Log.Warn("REDIS_URL not set, sign-in rate limiting disabled")
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	hrManagerRepo := postgres.NewHrManagerRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	hiringRepo := postgres.NewHiringRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)

	// 6. Setup Token Service
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, hrManagerRepo, tokens, validate)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, hrManagerRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, vacancyRepo, validate)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, applicationRepo, hrManagerRepo, validate)
	hiringUC := usecase.NewHiringUsecase(hiringRepo, applicationRepo, hrManagerRepo, validate)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		InterviewUC:   interviewUC,
		HiringUC:      hiringUC,
		DashboardUC:   dashboardUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
