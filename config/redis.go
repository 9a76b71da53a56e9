package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the optional snapshot-cache client from REDIS_ADDR
// (or REDIS_HOST/REDIS_PORT), REDIS_PASSWORD and REDIS_DB. Returns nil when
// no address is configured or the server is unreachable; the caller then
// runs without caching.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		host := os.Getenv("REDIS_HOST")
		port := os.Getenv("REDIS_PORT")
		if host != "" && port != "" {
			addr = host + ":" + port
		}
	}
	if addr == "" {
		return nil
	}

	dbNum := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			dbNum = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable at %s, snapshot cache disabled: %v", addr, err)
		_ = client.Close()
		return nil
	}
	return client
}
