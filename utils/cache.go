package utils

import (
	"context"
	"log"
	"time"

	"motorhub/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient holds session carts and wishlists.
	CartCacheClient *redis.Client
	// RewardsCacheClient holds session point balances.
	RewardsCacheClient *redis.Client
)

// InitCartCache initializes the Redis client for cart/wishlist sessions.
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cart Cache): %v", err)
	}
}

// GetCartCacheClient returns the cart session client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}

// InitRewardsCache initializes the Redis client for rewards balances.
func InitRewardsCache() {
	RewardsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRewardsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RewardsCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Rewards Cache): %v", err)
	}
}

// GetRewardsCacheClient returns the rewards balance client.
func GetRewardsCacheClient() *redis.Client {
	if RewardsCacheClient == nil {
		InitRewardsCache()
	}
	return RewardsCacheClient
}

// InitRedis initializes all Redis clients at startup.
func InitRedis() {
	InitCartCache()
	InitRewardsCache()
}
