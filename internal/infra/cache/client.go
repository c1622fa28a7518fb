package cache

import (
	"context"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/pkg/config"
	"meeting-room-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Connect creates a client and pings it. The returned cleanup closes the client.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	slog.Info("Redis connection established", "addr", cfg.Addr(), "db", cfg.DB)

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
			return
		}
		slog.Info("Redis connection closed")
	}
	return client, cleanup, nil
}
