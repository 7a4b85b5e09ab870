package utils

import (
	"context"
	"log"
	"time"

	"playzone/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client. It stays nil when no Redis
// address is configured; callers must treat a nil client as "cache off".
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. With an empty REDIS_ADDR
// the server runs without caching.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis address not configured, list cache disabled")
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client, possibly nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
