package config

import (
	"context"
	"time"

	"giftcard-shop/libs"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when redis is not configured or not reachable; callers then run without cache.
func ConnectRedis(cfg *Config, logger *libs.Logger) *redis.Client {
	if !cfg.RedisConfigured() {
		return nil
	}

	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("failed to parse redis url, running without cache", "error", err)
			return nil
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Warn("redis connection failed, running without cache", "error", err)
		_ = client.Close()
		return nil
	}

	logger.Info("redis connected", "addr", opt.Addr)
	return client
}
