package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/zivilschutz/schutzraum-api/internal/bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "starting schutzraum api",
		"dev", cfg.IsDev,
		"auth_mode", string(cfg.Auth.Mode),
		"base_url", cfg.HTTP.BaseURL,
	)

	redisClient, err := bootstrap.ConnectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				logger.Warn("close redis client", "error", closeErr)
			}
		}()
	}

	services, err := bootstrap.NewServices(bootstrap.ServiceDeps{
		Config:      cfg,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	server := bootstrap.BuildHTTPServer(cfg.HTTP, services, logger)
	return bootstrap.RunHTTPServer(ctx, server, logger)
}
