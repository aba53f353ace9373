package components

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"rescueHub/internal/api"
	"rescueHub/internal/api/ws"
	"rescueHub/internal/config"
	"rescueHub/internal/service"
	"rescueHub/internal/storage/postgres"
	"rescueHub/internal/storage/redis"
	"rescueHub/internal/workers"
	"rescueHub/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Sweeper    *workers.Sweeper
	PushSender *workers.PushSender
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

	presence := redis.NewPresence(redisClient)
	pushQueue := redis.NewPushQueue(redisClient.Client, "push:queue")

	hub := ws.NewHub()

	notifyRouter := service.NewRouter(presence, hub, pushQueue, logger)
	geo := service.NewGeoMatcher(storage.Teams, logger)
	dispatcher := service.NewDispatcher(storage.Cases, storage.Signals, storage.Users, geo, notifyRouter, logger)
	locationSvc := service.NewLocationService(presence, storage.Users, notifyRouter, logger)

	svc := service.NewService(dispatcher, geo, notifyRouter, locationSvc)

	gateway := ws.NewGateway(hub, presence, locationSvc, logger)

	httpServer := api.NewServer(cfg, logger, svc, storage.Teams, gateway)
	logger.Info("Initialized server")

	sweeper := workers.NewSweeper(storage.Cases, storage.Signals, storage.Users, notifyRouter, cfg.Sweeper.Interval, logger)
	pushSender := workers.NewPushSender(logger, cfg.Push, pushQueue, storage.Users)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Sweeper:    sweeper,
		PushSender: pushSender,
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
	c.logger.Info("Component shutdown started")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
