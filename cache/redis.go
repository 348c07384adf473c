package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes Redis connection
func InitRedis(addr, password string) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// CloseRedis closes Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

// ==================== CACHE KEYS ====================

const (
	GameCachePrefix    = "game:"      // game:123
	GamesCacheKey      = "games:all"  // full catalog
	GamesByCategoryKey = "games:cat:" // games:cat:rpg

	CategoryCacheKey = "categories:all"

	CartCachePrefix    = "cart:user:"    // cart:user:123
	LibraryCachePrefix = "library:user:" // library:user:123

	RateLimitPrefix = "ratelimit:" // ratelimit:<client>
)

// ==================== GENERIC CACHE OPERATIONS ====================

// Set stores any value in cache with TTL
func Set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// Get retrieves value from cache
func Get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}

	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes key from cache
func Delete(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// DeletePattern removes all keys matching pattern
func DeletePattern(pattern string) error {
	if !IsRedisAvailable() {
		return nil
	}

	iter := RedisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// ==================== DOMAIN HELPERS ====================

// SetGame caches a game for 1 hour
func SetGame(gameID uint, game interface{}) error {
	return Set(fmt.Sprintf("%s%d", GameCachePrefix, gameID), game, time.Hour)
}

// InvalidateGame removes game from cache
func InvalidateGame(gameID uint) error {
	return Delete(fmt.Sprintf("%s%d", GameCachePrefix, gameID))
}

// SetGames caches the full catalog for 5 minutes
func SetGames(games interface{}) error {
	return Set(GamesCacheKey, games, 5*time.Minute)
}

// InvalidateGamesList invalidates the catalog and per-category lists
func InvalidateGamesList() error {
	if err := Delete(GamesCacheKey); err != nil {
		return err
	}
	return DeletePattern(GamesByCategoryKey + "*")
}

// SetCategories caches categories for 1 hour
func SetCategories(categories interface{}) error {
	return Set(CategoryCacheKey, categories, time.Hour)
}

// InvalidateCategories removes categories cache
func InvalidateCategories() error {
	return Delete(CategoryCacheKey)
}

// SetUserCart caches a user's cart for 5 minutes
func SetUserCart(userID uint, cart interface{}) error {
	return Set(fmt.Sprintf("%s%d", CartCachePrefix, userID), cart, 5*time.Minute)
}

// InvalidateUserCart removes a user's cart from cache
func InvalidateUserCart(userID uint) error {
	return Delete(fmt.Sprintf("%s%d", CartCachePrefix, userID))
}

// SetUserLibrary caches a user's library for 5 minutes
func SetUserLibrary(userID uint, library interface{}) error {
	return Set(fmt.Sprintf("%s%d", LibraryCachePrefix, userID), library, 5*time.Minute)
}

// InvalidateUserLibrary removes a user's library from cache
func InvalidateUserLibrary(userID uint) error {
	return Delete(fmt.Sprintf("%s%d", LibraryCachePrefix, userID))
}

// ==================== RATE LIMITING ====================

// CheckRateLimit implements a fixed-window counter per client key
func CheckRateLimit(client string, maxRequests int, window time.Duration) (bool, int, error) {
	if !IsRedisAvailable() {
		return true, maxRequests, nil // allow if Redis unavailable
	}

	key := RateLimitPrefix + client

	count, err := RedisClient.Get(ctx, key).Int()
	if err == redis.Nil {
		if err := RedisClient.Set(ctx, key, 1, window).Err(); err != nil {
			return false, 0, err
		}
		return true, maxRequests - 1, nil
	}
	if err != nil {
		return false, 0, err
	}

	if count >= maxRequests {
		return false, 0, nil
	}

	newCount, err := RedisClient.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	return true, maxRequests - int(newCount), nil
}
