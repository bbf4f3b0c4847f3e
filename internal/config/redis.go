package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the Redis client backing the catalog response
// cache and the rate limiter.  Both features are conveniences around an
// otherwise self-contained embedded store, so an unreachable Redis is
// not an error: the function returns nil and the middleware degrades to
// pass-through, leaving browsing and checkout fully functional.
//
// Variables: REDIS_ADDR (host:port, or REDIS_HOST + REDIS_PORT),
// REDIS_PASSWORD, REDIS_DB.
func NewRedisClient() *redis.Client {
	addr := envStr("REDIS_ADDR", "")
	if host := envStr("REDIS_HOST", ""); host != "" {
		addr = host + ":" + envStr("REDIS_PORT", "6379")
	}
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
