package database

import (
	"context"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConnectRedis creates the Redis client backing the configurator session
// slots and verifies connectivity before handing it out.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *goredis.Client {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        getenvDefault("REDIS_ADDR", "localhost:6379"),
		Password:    getenvDefault("REDIS_PASSWORD", ""),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return rdb
}
