package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mamunbank/bank_trainer_app/internal/adapters/trainingapi"
	portsrepo "github.com/mamunbank/bank_trainer_app/internal/core/ports/repositories"
	"github.com/mamunbank/bank_trainer_app/internal/core/services"
	"github.com/mamunbank/bank_trainer_app/internal/handlers"
	"github.com/mamunbank/bank_trainer_app/internal/middleware"
	"github.com/mamunbank/bank_trainer_app/internal/platform/config"
	"github.com/mamunbank/bank_trainer_app/internal/repositories/state"
	"github.com/mamunbank/bank_trainer_app/internal/utils"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Session state: one JSON snapshot, loaded on boot, saved after every write
	store := state.NewStore(cfg.SnapshotPath, logger)
	logger.Info("Session state ready", slog.String("snapshot_path", cfg.SnapshotPath))

	apiClient := trainingapi.NewClient(cfg.TrainingAPIBaseURL, cfg.FetchLimit, logger)

	repos := portsrepo.RepositoryProvider{
		SessionRepo:   store,
		ClientRepo:    store,
		OperationRepo: store,
		LoanRepo:      store,
		ActivityRepo:  store,
		JournalRepo:   store,
		ScoreRepo:     store,
		AuditRepo:     store,
		ReferenceRepo: store,
		ReportRepo:    store,
		TrainingAPI:   apiClient,
	}
	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, posthogClient)

	// Warm the local mirrors; a dead training API must not block startup
	go func() {
		result := serviceContainer.Reporting.SyncAll(context.Background())
		logger.Info("Initial resource sync finished", slog.Any("result", result))
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
