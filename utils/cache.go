// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"storefront/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient holds shopper carts.
	CartCacheClient *redis.Client
	// SessionCacheClient holds live checkout sessions.
	SessionCacheClient *redis.Client
	// LinkCacheClient holds pending guest-order link tokens.
	LinkCacheClient *redis.Client
)

// InitCartCache initializes the Redis client for cart storage.
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cart): %v", err)
	}
}

// GetCartCacheClient returns the cart storage client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}

// InitSessionCache initializes the Redis client for checkout sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the checkout session client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitLinkCache initializes the Redis client for pending-link tokens.
func InitLinkCache() {
	LinkCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLinkDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LinkCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Link): %v", err)
	}
}

// GetLinkCacheClient returns the pending-link token client.
func GetLinkCacheClient() *redis.Client {
	if LinkCacheClient == nil {
		InitLinkCache()
	}
	return LinkCacheClient
}

// InitRedis initializes all Redis clients eagerly at startup.
func InitRedis() {
	InitCartCache()
	InitSessionCache()
	InitLinkCache()
}
