// Package main is the entry point for the FIRE Plan API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fireplan/backend/config"
	"github.com/fireplan/backend/internal/application/adapter"
	"github.com/fireplan/backend/internal/application/usecase/goal"
	"github.com/fireplan/backend/internal/application/usecase/insight"
	"github.com/fireplan/backend/internal/application/usecase/ledger"
	"github.com/fireplan/backend/internal/infra/db"
	"github.com/fireplan/backend/internal/infra/server/router"
	"github.com/fireplan/backend/internal/integration/adapters"
	"github.com/fireplan/backend/internal/integration/cache"
	"github.com/fireplan/backend/internal/integration/email"
	"github.com/fireplan/backend/internal/integration/email/templates"
	"github.com/fireplan/backend/internal/integration/entrypoint/controller"
	"github.com/fireplan/backend/internal/integration/entrypoint/middleware"
	"github.com/fireplan/backend/internal/integration/persistence"
	"github.com/fireplan/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting FIRE Plan API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.LedgerEntryModel{},
		&model.GoalModel{},
		&model.InsightModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Repositories
	ledgerRepo := persistence.NewLedgerRepository(database.DB())
	goalRepo := persistence.NewGoalRepository(database.DB())
	insightRepo := persistence.NewInsightRepository(database.DB())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

	// Adapters and services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	insightCache := cache.NewInsightCache(redisClient)

	var emailService adapter.EmailService
	if cfg.Email.ResendAPIKey != "" {
		emailService = email.NewService(emailQueueRepo)
	} else {
		slog.Warn("Email service disabled, RESEND_API_KEY not set")
	}

	// Ledger use cases
	monthlyViewUseCase := ledger.NewGetMonthlyViewUseCase(ledgerRepo)
	createEntryUseCase := ledger.NewCreateEntryUseCase(ledgerRepo)
	updateEntryUseCase := ledger.NewUpdateEntryUseCase(ledgerRepo)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(ledgerRepo)
	changeRateUseCase := ledger.NewChangeRateUseCase(ledgerRepo, emailService)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, ledgerRepo, emailService)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Insight use cases
	generateInsightsUseCase := insight.NewGenerateInsightsUseCase(ledgerRepo, insightRepo, insightCache, geminiService)
	getInsightUseCase := insight.NewGetInsightUseCase(insightRepo)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	ledgerController := controller.NewLedgerController(
		monthlyViewUseCase,
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		changeRateUseCase,
	)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)
	insightController := controller.NewInsightController(generateInsightsUseCase, getInsightUseCase)

	insightRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if emailService != nil && cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates", "error", err)
			os.Exit(1)
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
	}

	// HTTP server
	r := router.NewRouter(
		healthController,
		ledgerController,
		goalController,
		insightController,
		insightRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
