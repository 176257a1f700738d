// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"resourcecal/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient holds computed availability views.
	CacheClient *redis.Client
	// LockClient holds the per-resource write locks.
	LockClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitCache initializes the Redis client for the availability cache.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
}

// GetCacheClient returns the availability cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitLockStore initializes the Redis client for resource locks.
func InitLockStore() {
	LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Locks")
}

// GetLockClient returns the resource lock client.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockStore()
	}
	return LockClient
}
