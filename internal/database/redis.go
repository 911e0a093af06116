package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RockyPukar1/saasan-sub002/internal/config"
)

var Rdb *redis.Client

func InitRedis(cfg *config.Config) error {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return Rdb.Ping(ctx).Err()
}
