package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Ompatel28102004/travel-saathi/internal/api"
	"github.com/Ompatel28102004/travel-saathi/internal/config"
	"github.com/Ompatel28102004/travel-saathi/internal/redis"
	"github.com/Ompatel28102004/travel-saathi/internal/service"
	"github.com/Ompatel28102004/travel-saathi/internal/storage/postgres"
	"github.com/Ompatel28102004/travel-saathi/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	AnalysisQ      *redis.AnalysisQueue
	AnalysisWorker *service.AnalysisWorker
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	analysisQueue := redis.NewAnalysisQueue(redisClient.Client, cfg.Analysis.QueueKey)

	zoneSvc := service.NewZoneCatalogService(storage.Zones(), logger)
	trackerSvc := service.NewLocationTrackerService(storage.Zones(), storage.Tourists(), logger)
	alertSvc := service.NewAlertLifecycleService(storage.Alerts(), storage.Tourists(), storage.Zones(), logger)
	statsSvc := service.NewStatsService(storage.Stats(), cfg.Stats.ActiveWindowDays)
	analysisSvc := service.NewAnalysisService(storage.Analyses(), storage.Tourists(), analysisQueue, logger)

	srv := service.NewService(zoneSvc, trackerSvc, alertSvc, statsSvc, analysisSvc)

	worker := service.NewAnalysisWorker(
		analysisQueue,
		storage.Analyses(),
		storage.Tourists(),
		storage.Alerts(),
		service.HeuristicScorer{},
		logger,
		cfg.Analysis.DequeueTimeout,
		cfg.Analysis.HistoryLimit,
	)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		Postgres:       storage,
		Redis:          redisClient,
		AnalysisQ:      analysisQueue,
		AnalysisWorker: worker,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
