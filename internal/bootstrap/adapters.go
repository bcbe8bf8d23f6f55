package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zivilschutz/schutzraum-api/config"
)

// connectTimeout bounds the startup Redis ping.
const connectTimeout = 5 * time.Second

// ConnectRedis connects to the configured Redis instance. Returns a nil
// client when Redis is not configured; the caller then uses in-memory
// stores.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	if !cfg.Enabled() {
		if logger != nil {
			logger.InfoContext(ctx, "redis not configured, sessions will not survive restarts")
		}
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	if logger != nil {
		logger.InfoContext(ctx, "connected to redis", "addr", cfg.Addr)
	}
	return client, nil
}
