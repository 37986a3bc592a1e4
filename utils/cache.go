package utils

import (
	"context"
	"log"
	"time"

	"commuterhub/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the Redis client holding per-conversation assistant
// state (pending bookings and cancellations).
var SessionCacheClient *redis.Client

// InitSessionCache initializes the session cache client.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for assistant sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
